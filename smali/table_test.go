// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "testing"

func TestInstructionLengthsAreWithinBudget(t *testing.T) {
	allowed := map[int]bool{1: true, 2: true, 3: true, 5: true}
	for op, row := range Table {
		if !allowed[row.InsnLen] {
			t.Errorf("opcode 0x%02x (%s) has insn_len %d, want one of {1,2,3,5}", op, row.Mnemonic, row.InsnLen)
		}
	}
}

func TestTableCoversAllOpcodes(t *testing.T) {
	if len(Table) != 256 {
		t.Errorf("Table has %d entries, want 256", len(Table))
	}
}
