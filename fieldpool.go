// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseFieldIDs reads the fixed 8-byte-stride field_id_item array:
// class_idx (u16), type_idx (u16), name_idx (u32).
func (f *File) parseFieldIDs(item MapItem, strs []string, types []Type) ([]Field, error) {
	fields := make([]Field, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		base := item.Offset + i*8
		classIdx, err := f.ReadUint16(base)
		if err != nil {
			return nil, err
		}
		typeIdx, err := f.ReadUint16(base + 2)
		if err != nil {
			return nil, err
		}
		nameIdx, err := f.ReadUint32(base + 4)
		if err != nil {
			return nil, err
		}
		if uint32(classIdx) >= uint32(len(types)) || uint32(typeIdx) >= uint32(len(types)) || nameIdx >= uint32(len(strs)) {
			return nil, ErrInvalidPoolIndex
		}
		fields[i] = Field{
			Class: types[classIdx],
			Type:  types[typeIdx],
			Name:  strs[nameIdx],
		}
	}
	return fields, nil
}
