// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseTypeIDs reads the type_id_item array: each entry is a uint32
// index into the already-resolved string pool, per dex.py's
// parse_type_ids.
func (f *File) parseTypeIDs(item MapItem, strs []string) ([]Type, error) {
	types := make([]Type, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		idx, err := f.ReadUint32(item.Offset + i*4)
		if err != nil {
			return nil, err
		}
		if idx >= uint32(len(strs)) {
			return nil, ErrInvalidPoolIndex
		}
		types[i] = Type(strs[idx])
	}
	return types, nil
}

// Type returns the pool type at idx, erroring if idx is out of range.
func (f *File) Type(idx uint32) (Type, error) {
	if idx >= uint32(len(f.types)) {
		return "", ErrInvalidPoolIndex
	}
	return f.types[idx], nil
}
