// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import (
	"encoding/binary"
	"testing"
)

func le32Bytes(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func TestParsePackedSwitch(t *testing.T) {
	var data []byte
	data = append(data, 0x00, 0x01)
	data = append(data, 0x02, 0x00)
	data = append(data, le32Bytes(10)...)
	data = append(data, le32Bytes(100)...)
	data = append(data, le32Bytes(200)...)

	p, size := parsePackedSwitch(data)
	if size != 2*4+8 {
		t.Errorf("size = %d, want %d", size, 2*4+8)
	}
	if p.FirstKey != 10 {
		t.Errorf("FirstKey = %d, want 10", p.FirstKey)
	}
	if len(p.Targets) != 2 || p.Targets[0] != 100 || p.Targets[1] != 200 {
		t.Errorf("Targets = %v, want [100 200]", p.Targets)
	}
}

func TestEndianSwapShortsInvolution(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	swapped := EndianSwapShorts(data)
	back := EndianSwapShorts(swapped)
	for i := range data {
		if back[i] != data[i] {
			t.Fatalf("EndianSwapShorts is not its own inverse: got %v from %v", back, data)
		}
	}
	if swapped[0] != 0x02 || swapped[1] != 0x01 {
		t.Errorf("swapped = %v, want [2 1 4 3]", swapped)
	}
}

func TestExtractPseudoInstructionsUnknownTag(t *testing.T) {
	insns := []byte{0x00, 0x09, 0x00, 0x00}
	var warned bool
	logger := warnerFunc(func(format string, args ...interface{}) { warned = true })
	out := ExtractPseudoInstructions(insns, 0, logger)
	if len(out) != 0 {
		t.Errorf("expected no recognized pseudo-instructions, got %d", len(out))
	}
	if !warned {
		t.Errorf("expected a warning for the unknown pseudo-instruction tag")
	}
}

type warnerFunc func(format string, args ...interface{})

func (w warnerFunc) Warnf(format string, args ...interface{}) { w(format, args...) }
