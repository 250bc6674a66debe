// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "math"

// parseEncodedValue decodes one encoded_value starting at b[0], returning
// the value and the number of bytes consumed. The header byte packs
// value_arg (upper 3 bits) and value_type (lower 5 bits); for most scalar
// kinds value_arg+1 is the number of trailing bytes, sign- or
// zero-extended depending on the kind, per the original's
// _parse_encoded_value.
func (f *File) parseEncodedValue(b []byte) (EncodedValue, int, error) {
	if len(b) < 1 {
		return EncodedValue{}, 0, ErrTruncatedInput
	}
	header := b[0]
	tag := ValueType(header & 0x1f)
	arg := int(header >> 5)
	pos := 1

	readIntBytes := func(n int) (uint64, error) {
		if len(b) < pos+n {
			return 0, ErrTruncatedInput
		}
		var v uint64
		for i := 0; i < n; i++ {
			v |= uint64(b[pos+i]) << (8 * uint(i))
		}
		pos += n
		return v, nil
	}

	switch tag {
	case ValueByte:
		v, err := readIntBytes(1)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Int: int64(int8(v))}, pos, nil
	case ValueShort:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Int: signExtend(v, n)}, pos, nil
	case ValueChar:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Int: int64(v)}, pos, nil
	case ValueInt:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Int: signExtend(v, n)}, pos, nil
	case ValueLong:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Int: signExtend(v, n)}, pos, nil
	case ValueFloat:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		bits := v << (8 * uint(4-n))
		return EncodedValue{Tag: tag, Float: float64(math.Float32frombits(uint32(bits)))}, pos, nil
	case ValueDouble:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		bits := v << (8 * uint(8-n))
		return EncodedValue{Tag: tag, Float: math.Float64frombits(bits)}, pos, nil
	case ValueMethodType:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		p, err := f.protoAt(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, ProtoVal: p}, pos, nil
	case ValueMethodHandle:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		mh, err := f.methodHandleAt(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, MethodHandle: mh}, pos, nil
	case ValueString:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		s, err := f.String(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, Str: s}, pos, nil
	case ValueType_:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		t, err := f.Type(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, TypeVal: t}, pos, nil
	case ValueField, ValueEnum:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		fl, err := f.fieldAt(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, FieldVal: fl}, pos, nil
	case ValueMethod:
		n := arg + 1
		v, err := readIntBytes(n)
		if err != nil {
			return EncodedValue{}, 0, err
		}
		m, err := f.methodAt(uint32(v))
		if err != nil {
			return EncodedValue{}, 0, err
		}
		return EncodedValue{Tag: tag, MethodVal: m}, pos, nil
	case ValueArray:
		arr, n, err := f.parseEncodedArray(b[pos:])
		if err != nil {
			return EncodedValue{}, 0, err
		}
		pos += n
		return EncodedValue{Tag: tag, Array: arr}, pos, nil
	case ValueAnnotation:
		ann, n, err := f.parseEncodedAnnotation(b[pos:])
		if err != nil {
			return EncodedValue{}, 0, err
		}
		pos += n
		return EncodedValue{Tag: tag, Annotation: ann}, pos, nil
	case ValueNull:
		return EncodedValue{Tag: tag}, pos, nil
	case ValueBoolean:
		return EncodedValue{Tag: tag, Bool: arg != 0}, pos, nil
	default:
		return EncodedValue{}, 0, ErrInvalidEncodedValueType
	}
}

// signExtend sign-extends the low n bytes of v (as an n-byte little-
// endian integer) to a full int64.
func signExtend(v uint64, n int) int64 {
	bits := uint(n * 8)
	if bits >= 64 {
		return int64(v)
	}
	signBit := uint64(1) << (bits - 1)
	if v&signBit != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

// parseEncodedArray decodes an encoded_array: uleb128 size followed by
// size encoded_value entries.
func (f *File) parseEncodedArray(b []byte) (EncodedArray, int, error) {
	size, n, err := ParseULEB128(b)
	if err != nil {
		return nil, 0, err
	}
	pos := n
	arr := make(EncodedArray, size)
	for i := uint32(0); i < size; i++ {
		v, n, err := f.parseEncodedValue(b[pos:])
		if err != nil {
			return nil, 0, err
		}
		arr[i] = v
		pos += n
	}
	return arr, pos, nil
}

// parseEncodedAnnotation decodes an encoded_annotation: uleb128 type_idx,
// uleb128 size, then size name_idx/value pairs.
func (f *File) parseEncodedAnnotation(b []byte) (*Annotation, int, error) {
	typeIdx, n, err := ParseULEB128(b)
	if err != nil {
		return nil, 0, err
	}
	pos := n
	t, err := f.Type(typeIdx)
	if err != nil {
		return nil, 0, err
	}
	size, n, err := ParseULEB128(b[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += n
	elems := make([]AnnotationElement, size)
	for i := uint32(0); i < size; i++ {
		nameIdx, n, err := ParseULEB128(b[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		name, err := f.String(nameIdx)
		if err != nil {
			return nil, 0, err
		}
		v, n, err := f.parseEncodedValue(b[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		elems[i] = AnnotationElement{Name: name, Value: v}
	}
	return &Annotation{Type: t, Elements: elems}, pos, nil
}

// parseEncodedArrayItems resolves the standalone encoded_array_item
// section, keyed by file offset (referenced by class_def's
// static_values_off).
func (f *File) parseEncodedArrayItems(item MapItem) (map[uint32]EncodedArray, error) {
	out := make(map[uint32]EncodedArray, item.Count)
	off := item.Offset
	for i := uint32(0); i < item.Count; i++ {
		start := off
		buf, err := f.ReadBytesAtOffset(off, uint32(len(f.data))-off)
		if err != nil {
			return nil, err
		}
		arr, n, err := f.parseEncodedArray(buf)
		if err != nil {
			return nil, err
		}
		out[start] = arr
		off += uint32(n)
	}
	return out, nil
}
