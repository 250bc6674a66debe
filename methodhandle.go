// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseMethodHandles reads the fixed 8-byte-stride method_handle_item
// array: method_handle_type (u16), unused (u16), field_or_method_id
// (u16), unused (u16). Kinds 0x00-0x03 index field_ids, 0x04-0x08 index
// method_ids, per dex.py's parse_method_handles.
func (f *File) parseMethodHandles(item MapItem) ([]MethodHandle, error) {
	handles := make([]MethodHandle, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		base := item.Offset + i*8
		kind, err := f.ReadUint16(base)
		if err != nil {
			return nil, err
		}
		idx, err := f.ReadUint16(base + 4)
		if err != nil {
			return nil, err
		}
		mh := MethodHandle{Kind: MethodHandleType(kind)}
		if kind <= 0x03 {
			if uint32(idx) >= uint32(len(f.fields)) {
				return nil, ErrInvalidPoolIndex
			}
			mh.Field = &f.fields[idx]
		} else {
			if uint32(idx) >= uint32(len(f.methods)) {
				return nil, ErrInvalidPoolIndex
			}
			mh.Method = &f.methods[idx]
		}
		handles[i] = mh
	}
	return handles, nil
}

func (f *File) methodHandleAt(idx uint32) (*MethodHandle, error) {
	if idx >= uint32(len(f.methodHandles)) {
		return nil, ErrInvalidPoolIndex
	}
	return &f.methodHandles[idx], nil
}

func (f *File) protoAt(idx uint32) (*Proto, error) {
	if idx >= uint32(len(f.protos)) {
		return nil, ErrInvalidPoolIndex
	}
	return f.protos[idx], nil
}

func (f *File) fieldAt(idx uint32) (*Field, error) {
	if idx >= uint32(len(f.fields)) {
		return nil, ErrInvalidPoolIndex
	}
	return &f.fields[idx], nil
}

func (f *File) methodAt(idx uint32) (*Method, error) {
	if idx >= uint32(len(f.methods)) {
		return nil, ErrInvalidPoolIndex
	}
	return &f.methods[idx], nil
}
