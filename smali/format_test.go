// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "testing"

func TestParseWithFormatWorkedExample(t *testing.T) {
	// op AA BBBBlo BBBB BBBB BBBBhi, bytes 01 18 01 02 03 04 05 06 07 08.
	data := []byte{0x01, 0x18, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	format := "AA|op BBBBlo BBBB BBBB BBBBhi"
	fields, err := ParseWithFormat(data, format)
	if err != nil {
		t.Fatalf("ParseWithFormat: unexpected error %v", err)
	}
	if fields['A'] != 1 {
		t.Errorf("A = %#x, want 1", fields['A'])
	}
	if fields['B'] != 0x0708050603040102 {
		t.Errorf("B = %#x, want 0x0708050603040102", fields['B'])
	}
}

func TestParseWithFormatRegisterPair(t *testing.T) {
	// 12x: B|A|op, a single code unit carrying two 4-bit registers; the
	// first nibble of the (already pair-swapped) code unit is B, the
	// second is A.
	data := []byte{0x12, 0x21}
	fields, err := ParseWithFormat(data, "B|A|op")
	if err != nil {
		t.Fatalf("ParseWithFormat: unexpected error %v", err)
	}
	if fields['A'] != 0x2 || fields['B'] != 0x1 {
		t.Errorf("A=%#x B=%#x, want A=0x2 B=0x1", fields['A'], fields['B'])
	}
}

func TestParseWithFormatShortInput(t *testing.T) {
	if _, err := ParseWithFormat([]byte{0x00}, "AA|op BBBB"); err != ErrShortInstruction {
		t.Errorf("expected ErrShortInstruction, got %v", err)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		v      uint64
		width  int
		want   int64
	}{
		{0xF, 1, -1},
		{0x7, 1, 7},
		{0xFF, 2, -1},
		{0x7F, 2, 0x7F},
	}
	for _, tt := range tests {
		if got := Sign(tt.v, tt.width); got != tt.want {
			t.Errorf("Sign(%#x, %d) = %d, want %d", tt.v, tt.width, got, tt.want)
		}
	}
}
