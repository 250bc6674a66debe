// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "strings"

// ParseMUTF8 decodes a null-terminated Modified UTF-8 string starting at
// the beginning of b, returning the decoded text and the number of bytes
// consumed including the terminator. U+0000 is encoded as the two-byte
// sequence C0 80, never as a raw 00 byte; a raw 00 terminates the string.
// Adjacent high/low surrogate halves (each encoded as their own 3-byte
// unit) are combined into a single supplementary code point; an unpaired
// surrogate is emitted as-is.
func ParseMUTF8(b []byte) (string, int, error) {
	var sb strings.Builder
	i := 0
	for {
		if i >= len(b) {
			return "", 0, ErrTruncatedInput
		}
		c0 := b[i]
		if c0 == 0x00 {
			return sb.String(), i + 1, nil
		}
		if c0&0x80 == 0 {
			sb.WriteByte(c0)
			i++
			continue
		}
		if c0&0xE0 == 0xC0 {
			if i+1 >= len(b) {
				return "", 0, ErrInvalidMutf8
			}
			c1 := b[i+1]
			if c1&0xC0 != 0x80 {
				return "", 0, ErrInvalidMutf8
			}
			r := (rune(c0&0x1F) << 6) | rune(c1&0x3F)
			sb.WriteRune(r)
			i += 2
			continue
		}
		if c0&0xF0 == 0xE0 {
			if i+2 >= len(b) {
				return "", 0, ErrInvalidMutf8
			}
			c1, c2 := b[i+1], b[i+2]
			if c1&0xC0 != 0x80 || c2&0xC0 != 0x80 {
				return "", 0, ErrInvalidMutf8
			}
			r := (rune(c0&0x0F) << 12) | (rune(c1&0x3F) << 6) | rune(c2&0x3F)
			i += 3
			if isHighSurrogate(r) && i+2 < len(b) && b[i] == 0xED {
				c1b, c2b := b[i+1], b[i+2]
				if c1b&0xC0 == 0x80 && c2b&0xC0 == 0x80 {
					lo := (rune(b[i]&0x0F) << 12) | (rune(c1b&0x3F) << 6) | rune(c2b&0x3F)
					if isLowSurrogate(lo) {
						supplementary := 0x10000 + (r-0xD800)<<10 + (lo - 0xDC00)
						sb.WriteRune(supplementary)
						i += 3
						continue
					}
				}
			}
			sb.WriteRune(r)
			continue
		}
		return "", 0, ErrInvalidMutf8
	}
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// EncodeMUTF8 re-encodes text using the same rules ParseMUTF8 decodes,
// including the C0 80 encoding for U+0000 and 3-byte surrogate halves for
// supplementary code points, so that EncodeMUTF8(first-return-value-of(
// ParseMUTF8(b))) reproduces b byte for byte (minus the terminator, which
// callers append themselves).
func EncodeMUTF8(s string) []byte {
	var out []byte
	for _, r := range s {
		switch {
		case r == 0x0000:
			out = append(out, 0xC0, 0x80)
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
		case r < 0x10000:
			out = append(out, byte(0xE0|(r>>12)), byte(0x80|((r>>6)&0x3F)), byte(0x80|(r&0x3F)))
		default:
			v := r - 0x10000
			hi := 0xD800 + (v >> 10)
			lo := 0xDC00 + (v & 0x3FF)
			out = append(out,
				byte(0xE0|(hi>>12)), byte(0x80|((hi>>6)&0x3F)), byte(0x80|(hi&0x3F)),
				byte(0xE0|(lo>>12)), byte(0x80|((lo>>6)&0x3F)), byte(0x80|(lo&0x3F)),
			)
		}
	}
	return out
}
