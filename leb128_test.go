// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "testing"

func TestParseULEB128(t *testing.T) {
	tests := []struct {
		in       []byte
		wantVal  uint32
		wantSize int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0xe5, 0x8e, 0x26}, 624485, 3},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF, 5},
	}
	for _, tt := range tests {
		v, n, err := ParseULEB128(tt.in)
		if err != nil {
			t.Fatalf("ParseULEB128(%v): unexpected error %v", tt.in, err)
		}
		if v != tt.wantVal || n != tt.wantSize {
			t.Errorf("ParseULEB128(%v) = (%d, %d), want (%d, %d)", tt.in, v, n, tt.wantVal, tt.wantSize)
		}
	}
}

func TestParseULEB128p1(t *testing.T) {
	v, n, err := ParseULEB128p1([]byte{0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 || n != 1 {
		t.Errorf("ParseULEB128p1([0x00]) = (%d, %d), want (-1, 1)", v, n)
	}
}

func TestParseSLEB128(t *testing.T) {
	tests := []struct {
		in       []byte
		wantVal  int32
		wantSize int
	}{
		{[]byte{0x7f}, -1, 1},
		{[]byte{0x80, 0x7f}, -128, 2},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, -1, 5},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, -0x80000000, 5},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, 0x7FFFFFFF, 5},
		{[]byte{0x9b, 0xf1, 0x59}, -624485, 3},
	}
	for _, tt := range tests {
		v, n, err := ParseSLEB128(tt.in)
		if err != nil {
			t.Fatalf("ParseSLEB128(%v): unexpected error %v", tt.in, err)
		}
		if v != tt.wantVal || n != tt.wantSize {
			t.Errorf("ParseSLEB128(%v) = (%d, %d), want (%d, %d)", tt.in, v, n, tt.wantVal, tt.wantSize)
		}
	}
}
