// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseMethodIDs reads the fixed 8-byte-stride method_id_item array:
// class_idx (u16), proto_idx (u16), name_idx (u32). InsnsOff is left 0
// here and filled in later while walking encoded_method entries.
func (f *File) parseMethodIDs(item MapItem, strs []string, types []Type, protos []*Proto) ([]Method, error) {
	methods := make([]Method, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		base := item.Offset + i*8
		classIdx, err := f.ReadUint16(base)
		if err != nil {
			return nil, err
		}
		protoIdx, err := f.ReadUint16(base + 2)
		if err != nil {
			return nil, err
		}
		nameIdx, err := f.ReadUint32(base + 4)
		if err != nil {
			return nil, err
		}
		if uint32(classIdx) >= uint32(len(types)) || uint32(protoIdx) >= uint32(len(protos)) || nameIdx >= uint32(len(strs)) {
			return nil, ErrInvalidPoolIndex
		}
		methods[i] = Method{
			Class: types[classIdx],
			Proto: protos[protoIdx],
			Name:  strs[nameIdx],
		}
	}
	return methods, nil
}
