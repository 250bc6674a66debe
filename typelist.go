// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseTypeLists walks the map's run of type_list items sequentially
// (they are variable-stride, so item.Count counts items, not a fixed
// array the way type_id_item does), recording each one keyed by its own
// file offset since protos and class_defs reference type lists by
// offset rather than by index. Each type_list is 4-byte aligned, per the
// i_offset trick in dex.py's DexFile.__init__.
func (f *File) parseTypeLists(item MapItem, types []Type) (map[uint32]TypeList, error) {
	out := make(map[uint32]TypeList, item.Count)
	off := item.Offset
	for i := uint32(0); i < item.Count; i++ {
		if pad := (4 - off%4) % 4; pad != 0 {
			off += pad
		}
		start := off
		size, err := f.ReadUint32(off)
		if err != nil {
			return nil, err
		}
		off += 4
		list := make(TypeList, size)
		for j := uint32(0); j < size; j++ {
			idx, err := f.ReadUint16(off)
			if err != nil {
				return nil, err
			}
			if uint32(idx) >= uint32(len(types)) {
				return nil, ErrInvalidPoolIndex
			}
			list[j] = types[idx]
			off += 2
		}
		out[start] = list
	}
	return out, nil
}
