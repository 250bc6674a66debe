// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "strings"

// Fields is the {letter: value} binding produced by ParseWithFormat.
// Values are unsigned bit patterns; callers apply Sign using the
// field's total nibble width when a signed interpretation is needed.
type Fields map[byte]uint64

// Width returns the number of nibbles a given letter occupies across the
// whole format string, the same count smali.py uses to decide a field's
// signed width (format_.count('A')).
func Width(format string, letter byte) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] == letter {
			n++
		}
	}
	return n
}

// ParseWithFormat extracts named fields from an instruction's code
// units against a format string drawn from the instruction table (spec
// §4.B). data must already be pair-swapped so each 16-bit code unit's
// two bytes read MSB-first; the format string is a sequence of
// whitespace-separated groups, one per code unit, each group a
// pipe-separated sequence of sub-tokens read left-to-right as that
// code unit's nibbles from most to least significant. `op` and `ØØ`/`00`
// sub-tokens occupy nibble positions but are not captured. Letters A..Z
// repeated k times within one sub-token form a k-nibble chunk; a
// letter's chunks, in the order encountered, are concatenated
// least-significant-chunk-first into its final bound value (this is how
// `lo`/mid/`hi`-suffixed multi-code-unit fields assemble, per spec
// §4.B's worked example).
func ParseWithFormat(data []byte, format string) (Fields, error) {
	groups := strings.Fields(format)
	fields := make(Fields)
	shift := make(map[byte]uint)

	for gi, group := range groups {
		if 2*gi+1 >= len(data) {
			return nil, ErrShortInstruction
		}
		hiByte, loByte := data[2*gi], data[2*gi+1]
		nibbles := [4]byte{hiByte >> 4, hiByte & 0xF, loByte >> 4, loByte & 0xF}

		pos := 0
		for _, raw := range strings.Split(group, "|") {
			sub := strings.TrimSuffix(raw, "lo")
			sub = strings.TrimSuffix(sub, "hi")
			n := len(sub)
			if n == 0 {
				n = len(raw)
				sub = raw
			}
			if n == 0 || pos+n > 4 {
				continue
			}
			if !isOpToken(sub) && !isZeroToken(sub) {
				letter := sub[0]
				var chunk uint64
				for k := 0; k < n; k++ {
					chunk = (chunk << 4) | uint64(nibbles[pos+k])
				}
				fields[letter] |= chunk << shift[letter]
				shift[letter] += uint(4 * n)
			}
			pos += n
		}
	}
	return fields, nil
}

func isOpToken(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != 'o' && c != 'p' {
			return false
		}
	}
	return true
}

func isZeroToken(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != 'Ø' && c != '0' {
			return false
		}
	}
	return true
}

// Sign reinterprets an unsigned nibble-width field as signed, per spec
// §4.B: (v & ~sign_bit) - (v & sign_bit), sign_bit = 1 << (4*width-1).
func Sign(v uint64, widthNibbles int) int64 {
	if widthNibbles <= 0 || widthNibbles >= 16 {
		return int64(v)
	}
	signBit := uint64(1) << uint(4*widthNibbles-1)
	return int64(v&^signBit) - int64(v&signBit)
}
