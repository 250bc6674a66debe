// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "testing"

func TestDisassemblePackedSwitchPseudo(t *testing.T) {
	payload := &PackedSwitchPayload{FirstKey: 5, Targets: []int32{10, 20}}
	pseudos := map[uint32]PseudoInstruction{
		100: {TotalSize: 2*4 + 8, PackedSwitch: payload},
	}
	tokens, size := Disassemble(stubPool{}, []byte{0x00, 0x01, 0x00, 0x00}, 100, pseudos, nil)
	if size != 2*4+8 {
		t.Fatalf("size = %d, want %d", size, 2*4+8)
	}
	var addrCount int
	for _, tok := range tokens {
		if tok.Kind == PossibleAddressToken {
			addrCount++
		}
	}
	if addrCount != 2 {
		t.Errorf("got %d address tokens, want 2: %v", addrCount, tokens)
	}
	if tokens[0].Text != ".packed-switch " {
		t.Errorf("tokens[0] = %q, want the .packed-switch directive", tokens[0].Text)
	}
}

func TestDisassembleSparseSwitchPseudo(t *testing.T) {
	payload := &SparseSwitchPayload{Keys: []int32{1, 2}, Targets: []int32{30, 40}}
	pseudos := map[uint32]PseudoInstruction{
		200: {TotalSize: 2*8 + 4, SparseSwitch: payload},
	}
	tokens, size := Disassemble(stubPool{}, []byte{0x00, 0x02, 0x00, 0x00}, 200, pseudos, nil)
	if size != 2*8+4 {
		t.Fatalf("size = %d, want %d", size, 2*8+4)
	}
	var intCount, addrCount int
	for _, tok := range tokens {
		switch tok.Kind {
		case IntegerToken:
			intCount++
		case PossibleAddressToken:
			addrCount++
		}
	}
	if intCount != 2 || addrCount != 2 {
		t.Errorf("got %d integer and %d address tokens, want 2 and 2: %v", intCount, addrCount, tokens)
	}
}

func TestDisassembleFillArrayDataPseudo(t *testing.T) {
	payload := &FillArrayDataPayload{ElementWidth: 1, Size: 3, Data: []byte{0x01, 0x02, 0x03, 0x00}}
	pseudos := map[uint32]PseudoInstruction{
		300: {TotalSize: len(payload.Data) + 8, FillArrayData: payload},
	}
	tokens, size := Disassemble(stubPool{}, []byte{0x00, 0x03, 0x00, 0x00}, 300, pseudos, nil)
	if size != len(payload.Data)+8 {
		t.Fatalf("size = %d, want %d", size, len(payload.Data)+8)
	}
	var values []int64
	for _, tok := range tokens {
		if tok.Kind == IntegerToken {
			values = append(values, tok.Value)
		}
	}
	// The first IntegerToken is the element-width header; the rest are
	// one per byte of payload.Data.
	if len(values) != 1+len(payload.Data) {
		t.Fatalf("got %d integer tokens, want %d: %v", len(values), 1+len(payload.Data), tokens)
	}
	if values[0] != 1 {
		t.Errorf("element width token = %d, want 1", values[0])
	}
	if values[1] != 0x01 || values[2] != 0x02 || values[3] != 0x03 || values[4] != 0x00 {
		t.Errorf("element tokens = %v, want [1 2 3 0]", values[1:])
	}
}

func TestDisassemblePseudoMissingFromMap(t *testing.T) {
	tokens, size := Disassemble(stubPool{}, []byte{0x00, 0x01, 0x00, 0x00}, 400, nil, nil)
	if tokens != nil {
		t.Errorf("tokens = %v, want nil when address is absent from the pseudo map", tokens)
	}
	if size != 2 {
		t.Errorf("size = %d, want 2 (fallback advance)", size)
	}
}
