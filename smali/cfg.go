// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "strings"

// BranchKind classifies how control flow may leave an instruction,
// mirroring architecture.py's get_instruction_info (spec §4.H).
type BranchKind int

// Branch kinds.
const (
	FunctionReturn BranchKind = iota
	ExceptionBranch
	UnconditionalBranch
	UnresolvedBranch
	TrueBranch
	FalseBranch
	CallDestination
)

// Branch is one edge leaving an instruction: its kind, and for the
// kinds that name a concrete destination, the target address.
type Branch struct {
	Kind   BranchKind
	Target uint32
	HasTarget bool
}

// InstructionInfo is the per-instruction control-flow summary: its
// length in bytes and the branches it may take.
type InstructionInfo struct {
	Length   int
	Branches []Branch
}

// InstructionInfoAt computes the control-flow summary for the
// instruction (or pseudo-instruction) at address, without re-rendering
// its tokens. Mnemonic dispatch follows architecture.py's prefix rules;
// unlike the host, this never caps instruction length or register
// count, per spec §4.H.
func InstructionInfoAt(data []byte, address uint32, pseudos map[uint32]PseudoInstruction) InstructionInfo {
	if len(data) >= 2 && data[0] == 0x00 && data[1] != 0x00 {
		if p, ok := pseudos[address]; ok {
			return InstructionInfo{Length: p.TotalSize}
		}
		return InstructionInfo{Length: 2}
	}
	if len(data) < 1 {
		return InstructionInfo{Length: 0}
	}
	row, ok := Table[data[0]]
	if !ok {
		return InstructionInfo{Length: 2}
	}
	byteLen := row.InsnLen * 2
	if len(data) < byteLen {
		return InstructionInfo{Length: 0}
	}

	info := InstructionInfo{Length: byteLen}
	swapped := EndianSwapShorts(data[:byteLen])
	fields, err := ParseWithFormat(swapped, row.Format)
	if err != nil {
		return info
	}

	m := row.Mnemonic
	next := address + uint32(byteLen)

	switch {
	case strings.HasPrefix(m, "return"):
		info.Branches = []Branch{{Kind: FunctionReturn}}
	case m == "throw":
		info.Branches = []Branch{{Kind: ExceptionBranch}}
	case strings.HasPrefix(m, "goto"):
		target := branchTarget(row, fields, address)
		info.Branches = []Branch{{Kind: UnconditionalBranch, Target: target, HasTarget: true}}
	case m == "packed-switch" || m == "sparse-switch":
		info.Branches = []Branch{{Kind: UnresolvedBranch}}
	case m == "fill-array-data":
		info.Branches = []Branch{
			{Kind: TrueBranch, Target: next, HasTarget: true},
			{Kind: FalseBranch, Target: next, HasTarget: true},
		}
	case strings.HasPrefix(m, "if-"):
		target := branchTarget(row, fields, address)
		info.Branches = []Branch{
			{Kind: TrueBranch, Target: target, HasTarget: true},
			{Kind: FalseBranch, Target: next, HasTarget: true},
		}
	case m == "invoke-custom" || m == "invoke-custom/range":
		info.Branches = []Branch{{Kind: UnresolvedBranch}}
	case strings.HasPrefix(m, "invoke-"):
		info.Branches = []Branch{{Kind: CallDestination}}
	}
	return info
}

// branchTarget resolves a goto/if-* instruction's signed code-unit
// offset field (A for 10t, B for 21t, C for 22t, or AAAA/AAAAAAAA for
// the wider goto forms) into an absolute byte address.
func branchTarget(row Row, fields Fields, address uint32) uint32 {
	var letter byte
	switch row.FormatID {
	case "10t":
		letter = 'A'
	case "20t", "30t":
		letter = 'A'
	case "21t":
		letter = 'B'
	case "22t":
		letter = 'C'
	default:
		letter = 'A'
	}
	width := Width(row.Format, letter)
	offset := Sign(fields[letter], width)
	return uint32(int64(address) + offset*2)
}
