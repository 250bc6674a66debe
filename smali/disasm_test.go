// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "testing"

type stubPool struct{}

func (stubPool) String(idx uint32) (string, error) { return "a string", nil }
func (stubPool) TypeName(idx uint32) (string, error) { return "Ltest/Type;", nil }
func (stubPool) FieldRef(idx uint32) (string, string, string, error) {
	return "Ltest/Type;", "field", "I", nil
}
func (stubPool) MethodRef(idx uint32) (string, string, []string, string, uint32, error) {
	return "Ltest/Type;", "method", nil, "V", 0, nil
}

func TestDisassembleNop(t *testing.T) {
	data := []byte{0x00, 0x00}
	tokens, size := Disassemble(stubPool{}, data, 0, nil, nil)
	if size != 2 {
		t.Fatalf("size = %d, want 2", size)
	}
	if len(tokens) == 0 || tokens[0].Kind != InstructionToken || tokens[0].Text != "nop" {
		t.Errorf("tokens = %v, want first token to be the nop instruction", tokens)
	}
}

func TestDisassembleReturnVoid(t *testing.T) {
	data := []byte{0x0e, 0x00}
	tokens, size := Disassemble(stubPool{}, data, 0, nil, nil)
	if size != 2 {
		t.Fatalf("size = %d, want 2", size)
	}
	if tokens[0].Text != "return-void" {
		t.Errorf("mnemonic = %q, want return-void", tokens[0].Text)
	}
}

func TestDisassembleMove(t *testing.T) {
	// move vA, vB: format 12x "B|A|op", opcode 0x01.
	data := []byte{0x01, 0x21}
	tokens, size := Disassemble(stubPool{}, data, 0, nil, nil)
	if size != 2 {
		t.Fatalf("size = %d, want 2", size)
	}
	var regs []int64
	for _, tok := range tokens {
		if tok.Kind == RegisterToken {
			regs = append(regs, tok.Value)
		}
	}
	if len(regs) != 2 {
		t.Fatalf("got %d register tokens, want 2: %v", len(regs), tokens)
	}
}

func TestDisassembleShortRead(t *testing.T) {
	tokens, size := Disassemble(stubPool{}, []byte{0x01}, 0, nil, nil)
	if size != 0 || tokens != nil {
		t.Errorf("short read should consume 0 bytes and produce no tokens, got size=%d tokens=%v", size, tokens)
	}
}

func TestInstructionInfoReturnVoid(t *testing.T) {
	info := InstructionInfoAt([]byte{0x0e, 0x00}, 0, nil)
	if info.Length != 2 {
		t.Fatalf("Length = %d, want 2", info.Length)
	}
	if len(info.Branches) != 1 || info.Branches[0].Kind != FunctionReturn {
		t.Errorf("Branches = %v, want a single FunctionReturn", info.Branches)
	}
}

func TestInstructionInfoGoto(t *testing.T) {
	// goto +2 (in code units): format 10t "AA|op", opcode 0x28.
	info := InstructionInfoAt([]byte{0x28, 0x02}, 100, nil)
	if len(info.Branches) != 1 || info.Branches[0].Kind != UnconditionalBranch {
		t.Fatalf("Branches = %v, want a single UnconditionalBranch", info.Branches)
	}
	if info.Branches[0].Target != 104 {
		t.Errorf("Target = %d, want 104", info.Branches[0].Target)
	}
}
