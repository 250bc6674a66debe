// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "testing"

func TestParseMUTF8(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantStr  string
		wantSize int
	}{
		{"empty", []byte{0x00}, "", 1},
		{"ascii", []byte("hi\x00"), "hi", 3},
		{"embedded nul as C0 80", []byte{0x68, 0xC0, 0x80, 0x69, 0x00}, "h\x00i", 5},
		{"surrogate pair to supplementary", []byte{0xed, 0xae, 0x80, 0xed, 0xb0, 0x80, 0x00}, "\U000F0000", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, n, err := ParseMUTF8(tt.in)
			if err != nil {
				t.Fatalf("ParseMUTF8: unexpected error %v", err)
			}
			if s != tt.wantStr || n != tt.wantSize {
				t.Errorf("ParseMUTF8(%v) = (%q, %d), want (%q, %d)", tt.in, s, n, tt.wantStr, tt.wantSize)
			}
		})
	}
}

func TestEncodeMUTF8RoundTrip(t *testing.T) {
	inputs := []string{"hello", "h\x00i", "\U000F0000", "café"}
	for _, s := range inputs {
		encoded := append(EncodeMUTF8(s), 0x00)
		got, _, err := ParseMUTF8(encoded)
		if err != nil {
			t.Fatalf("ParseMUTF8(EncodeMUTF8(%q)): unexpected error %v", s, err)
		}
		if got != s {
			t.Errorf("round trip for %q produced %q", s, got)
		}
	}
}
