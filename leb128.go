// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// ParseULEB128 decodes an unsigned LEB128 value from the start of b,
// returning the value and the number of bytes consumed. Each group
// contributes 7 bits, little-endian; bit 7 of a group marks "more
// follows". Legal Dex input never needs more than 5 groups for a 32-bit
// value.
func ParseULEB128(b []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < len(b); i++ {
		if i >= 5 {
			return 0, 0, ErrInvalidLeb128
		}
		cur := b[i]
		result |= uint32(cur&0x7f) << shift
		if cur&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncatedInput
}

// ParseULEB128p1 decodes a uleb128p1 value: the on-disk uleb128 encodes
// v+1, so the result is uleb128-1, letting -1 be represented by a single
// 0x00 byte.
func ParseULEB128p1(b []byte) (int32, int, error) {
	v, n, err := ParseULEB128(b)
	if err != nil {
		return 0, 0, err
	}
	return int32(v) - 1, n, nil
}

// ParseSLEB128 decodes a signed LEB128 value. Extraction is identical to
// ParseULEB128; if the sign bit of the final group (bit 6) is set, the
// result is sign-extended from the bit position one past the last group
// consumed.
func ParseSLEB128(b []byte) (int32, int, error) {
	var result uint32
	var shift uint
	var cur byte
	i := 0
	for {
		if i >= len(b) {
			return 0, 0, ErrTruncatedInput
		}
		if i >= 5 {
			return 0, 0, ErrInvalidLeb128
		}
		cur = b[i]
		result |= uint32(cur&0x7f) << shift
		shift += 7
		i++
		if cur&0x80 == 0 {
			break
		}
	}
	if shift < 32 && cur&0x40 != 0 {
		result |= ^uint32(0) << shift
	}
	return int32(result), i, nil
}
