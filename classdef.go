// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// classDefStride is the fixed size, in bytes, of one class_def_item.
const classDefStride = 32

// parseClassDefs reads the fixed-stride class_def_item array and cross-
// links each entry against the already-parsed type_lists, class_data,
// and encoded_array maps. A superclass_idx/source_file_idx of NoIndex
// means "absent"; an interfaces_off/class_data_off/static_values_off of
// 0 means "absent" — two different sentinels for offset- vs
// index-valued fields, per dex.py's parse_class_defs.
func (f *File) parseClassDefs(item MapItem, types []Type, strs []string, typeLists map[uint32]TypeList, classData map[uint32]*ClassData, encodedArrays map[uint32]EncodedArray) ([]ClassDef, error) {
	defs := make([]ClassDef, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		base := item.Offset + i*classDefStride
		classIdx, err := f.ReadUint32(base)
		if err != nil {
			return nil, err
		}
		accessFlags, err := f.ReadUint32(base + 4)
		if err != nil {
			return nil, err
		}
		superIdx, err := f.ReadUint32(base + 8)
		if err != nil {
			return nil, err
		}
		interfacesOff, err := f.ReadUint32(base + 12)
		if err != nil {
			return nil, err
		}
		sourceFileIdx, err := f.ReadUint32(base + 16)
		if err != nil {
			return nil, err
		}
		// annotations_off at base+20 is accepted and skipped (spec §1,
		// §4.E step 3: annotations are accepted but currently skipped).
		classDataOff, err := f.ReadUint32(base + 24)
		if err != nil {
			return nil, err
		}
		staticValuesOff, err := f.ReadUint32(base + 28)
		if err != nil {
			return nil, err
		}

		if classIdx >= uint32(len(types)) {
			return nil, ErrInvalidPoolIndex
		}
		def := ClassDef{
			Class:       types[classIdx],
			AccessFlags: AccessFlags(accessFlags),
		}
		if superIdx != NoIndex {
			if superIdx >= uint32(len(types)) {
				return nil, ErrInvalidPoolIndex
			}
			def.Superclass = types[superIdx]
			def.HasSuper = true
		}
		if interfacesOff != 0 {
			def.Interfaces = typeLists[interfacesOff]
		}
		if sourceFileIdx != NoIndex {
			if sourceFileIdx >= uint32(len(strs)) {
				return nil, ErrInvalidPoolIndex
			}
			def.SourceFile = strs[sourceFileIdx]
			def.HasSource = true
		}
		if classDataOff != 0 {
			def.Data = classData[classDataOff]
		}
		if staticValuesOff != 0 {
			def.StaticValues = encodedArrays[staticValuesOff]
		}
		defs[i] = def
	}
	return defs, nil
}
