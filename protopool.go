// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseProtoIDs reads the fixed 12-byte-stride proto_id_item array:
// shorty_idx, return_type_idx, parameters_off (0 means no parameters).
// A Shorty/parameter-count mismatch is a warning, not a fatal error, per
// spec §7 ShortyMismatch.
func (f *File) parseProtoIDs(item MapItem, strs []string, types []Type, typeLists map[uint32]TypeList) ([]*Proto, error) {
	protos := make([]*Proto, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		base := item.Offset + i*12
		shortyIdx, err := f.ReadUint32(base)
		if err != nil {
			return nil, err
		}
		retIdx, err := f.ReadUint32(base + 4)
		if err != nil {
			return nil, err
		}
		paramsOff, err := f.ReadUint32(base + 8)
		if err != nil {
			return nil, err
		}
		if shortyIdx >= uint32(len(strs)) || retIdx >= uint32(len(types)) {
			return nil, ErrInvalidPoolIndex
		}
		var params TypeList
		if paramsOff != 0 {
			params = typeLists[paramsOff]
		}
		p := &Proto{
			Shorty:     strs[shortyIdx],
			ReturnType: types[retIdx],
			Parameters: params,
		}
		if len(p.Shorty)-1 != len(p.Parameters) {
			f.warn(WarnShortyMismatch)
		}
		protos[i] = p
	}
	return protos, nil
}
