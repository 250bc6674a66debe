// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseClassDataItems walks the map's run of class_data_item entries
// sequentially, each variable-length, recording the result keyed by its
// own file offset since class_def references class_data by offset. Field
// and method indices inside a class_data_item are delta-encoded
// (cumulative diff from the previous entry in the same list, reset per
// list), per dex.py's _parse_encoded_fields/_parse_encoded_methods.
//
// As a side effect, this binds each encoded_method's code offset onto
// the shared Method pool entry's InsnsOff; a second, conflicting
// binding for the same method_id is a DuplicateCodeBinding warning and
// the first binding is kept (spec §3, §9 open question).
func (f *File) parseClassDataItems(item MapItem, codeItems map[uint32]*CodeItem) (map[uint32]*ClassData, error) {
	out := make(map[uint32]*ClassData, item.Count)
	off := item.Offset
	for i := uint32(0); i < item.Count; i++ {
		start := off
		cd, consumed, err := f.parseOneClassData(off, codeItems)
		if err != nil {
			return nil, err
		}
		out[start] = cd
		off += consumed
	}
	return out, nil
}

func (f *File) parseOneClassData(off uint32, codeItems map[uint32]*CodeItem) (*ClassData, uint32, error) {
	start := off
	staticCount, n, err := f.ReadULEB128At(off)
	if err != nil {
		return nil, 0, err
	}
	off += uint32(n)
	instanceCount, n, err := f.ReadULEB128At(off)
	if err != nil {
		return nil, 0, err
	}
	off += uint32(n)
	directCount, n, err := f.ReadULEB128At(off)
	if err != nil {
		return nil, 0, err
	}
	off += uint32(n)
	virtualCount, n, err := f.ReadULEB128At(off)
	if err != nil {
		return nil, 0, err
	}
	off += uint32(n)

	staticFields, off2, err := f.parseEncodedFields(off, staticCount)
	if err != nil {
		return nil, 0, err
	}
	off = off2
	instanceFields, off2, err := f.parseEncodedFields(off, instanceCount)
	if err != nil {
		return nil, 0, err
	}
	off = off2
	directMethods, off2, err := f.parseEncodedMethods(off, directCount, codeItems)
	if err != nil {
		return nil, 0, err
	}
	off = off2
	virtualMethods, off2, err := f.parseEncodedMethods(off, virtualCount, codeItems)
	if err != nil {
		return nil, 0, err
	}
	off = off2

	return &ClassData{
		StaticFields:   staticFields,
		InstanceFields: instanceFields,
		DirectMethods:  directMethods,
		VirtualMethods: virtualMethods,
	}, off - start, nil
}

func (f *File) parseEncodedFields(off uint32, count uint32) ([]EncodedField, uint32, error) {
	fields := make([]EncodedField, count)
	var idx uint32
	for i := uint32(0); i < count; i++ {
		diff, n, err := f.ReadULEB128At(off)
		if err != nil {
			return nil, 0, err
		}
		off += uint32(n)
		idx += diff
		flags, n, err := f.ReadULEB128At(off)
		if err != nil {
			return nil, 0, err
		}
		off += uint32(n)
		if idx >= uint32(len(f.fields)) {
			return nil, 0, ErrInvalidPoolIndex
		}
		fields[i] = EncodedField{Field: f.fields[idx], AccessFlags: AccessFlags(flags)}
	}
	return fields, off, nil
}

func (f *File) parseEncodedMethods(off uint32, count uint32, codeItems map[uint32]*CodeItem) ([]EncodedMethod, uint32, error) {
	methods := make([]EncodedMethod, count)
	var idx uint32
	for i := uint32(0); i < count; i++ {
		diff, n, err := f.ReadULEB128At(off)
		if err != nil {
			return nil, 0, err
		}
		off += uint32(n)
		idx += diff
		flags, n, err := f.ReadULEB128At(off)
		if err != nil {
			return nil, 0, err
		}
		off += uint32(n)
		codeOff, n, err := f.ReadULEB128At(off)
		if err != nil {
			return nil, 0, err
		}
		off += uint32(n)

		if idx >= uint32(len(f.methods)) {
			return nil, 0, ErrInvalidPoolIndex
		}
		m := f.methods[idx]
		var code *CodeItem
		if codeOff != 0 {
			code = codeItems[codeOff]
			if f.methods[idx].InsnsOff == 0 {
				f.methods[idx].InsnsOff = code.InsnsOff
				m.InsnsOff = code.InsnsOff
			} else if f.methods[idx].InsnsOff != code.InsnsOff {
				f.warn(WarnDuplicateCodeBinding)
				// Keep the first binding: resolve against the method's
				// already-bound code rather than this later one.
				code = codeItems[f.methods[idx].InsnsOff-codeItemHeaderSize]
			}
		}
		methods[i] = EncodedMethod{Method: m, AccessFlags: AccessFlags(flags), Code: code}
	}
	return methods, off, nil
}
