// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "encoding/binary"

// PackedSwitchPayload is the packed-switch pseudo-instruction payload.
type PackedSwitchPayload struct {
	FirstKey int32
	Targets  []int32
}

// SparseSwitchPayload is the sparse-switch pseudo-instruction payload.
type SparseSwitchPayload struct {
	Keys    []int32
	Targets []int32
}

// FillArrayDataPayload is the fill-array-data pseudo-instruction
// payload: a table of fixed-width elements.
type FillArrayDataPayload struct {
	ElementWidth uint16
	Size         uint32
	Data         []byte
}

// PseudoInstruction is a payload located by ExtractPseudoInstructions,
// tagged with its total size in bytes and exactly one non-nil payload.
type PseudoInstruction struct {
	TotalSize     int
	PackedSwitch  *PackedSwitchPayload
	SparseSwitch  *SparseSwitchPayload
	FillArrayData *FillArrayDataPayload
}

// unknownPseudoWarner is implemented by callers that want to be told
// about UnknownPseudoInstruction conditions (first code unit 0x00 0xNN
// with NN > 3); it is optional, nil is a valid "don't care" caller.
type unknownPseudoWarner interface {
	Warnf(format string, args ...interface{})
}

// ExtractPseudoInstructions walks a code unit stream linearly from its
// start, locating every embedded packed-switch, sparse-switch and
// fill-array-data payload, returning them keyed by their address
// (baseAddr plus the payload's byte offset within insns).
// insns must be in the code_item's on-disk (pre-endian-swap) order;
// payload fields are read little-endian straight from that order, with
// no EndianSwapShorts pass.
//
// An unrecognized payload tag (first code unit 0x00 0xNN, NN>3) is a
// warning, not a fatal error: the walk simply advances 2 bytes and
// continues, per spec §4.F / §7 UnknownPseudoInstruction.
func ExtractPseudoInstructions(insns []byte, baseAddr uint32, logger unknownPseudoWarner) map[uint32]PseudoInstruction {
	out := make(map[uint32]PseudoInstruction)
	i := 0
	for i+1 < len(insns) {
		if insns[i] == 0x00 && insns[i+1] != 0x00 {
			addr := baseAddr + uint32(i)
			switch insns[i+1] {
			case 0x01:
				p, size := parsePackedSwitch(insns[i:])
				out[addr] = PseudoInstruction{TotalSize: size, PackedSwitch: p}
				i += size
			case 0x02:
				p, size := parseSparseSwitch(insns[i:])
				out[addr] = PseudoInstruction{TotalSize: size, SparseSwitch: p}
				i += size
			case 0x03:
				p, size := parseFillArrayData(insns[i:])
				out[addr] = PseudoInstruction{TotalSize: size, FillArrayData: p}
				i += size
			default:
				if logger != nil {
					logger.Warnf("unknown pseudo-instruction tag 0x%02x at %d", insns[i+1], addr)
				}
				i += 2
			}
			continue
		}
		length := instructionLength(insns[i])
		i += length
	}
	return out
}

// instructionLength returns a normal instruction's length in bytes from
// the static table, falling back to 2 (one code unit) for any opcode
// whose table entry is somehow absent, so the linear walk always makes
// forward progress.
func instructionLength(opcode byte) int {
	row, ok := Table[opcode]
	if !ok {
		return 2
	}
	return row.InsnLen * 2
}

func le32(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }

func parsePackedSwitch(b []byte) (*PackedSwitchPayload, int) {
	size := int(binary.LittleEndian.Uint16(b[2:4]))
	firstKey := le32(b[4:8])
	targets := make([]int32, size)
	for i := 0; i < size; i++ {
		targets[i] = le32(b[8+i*4 : 12+i*4])
	}
	return &PackedSwitchPayload{FirstKey: firstKey, Targets: targets}, size*4 + 8
}

func parseSparseSwitch(b []byte) (*SparseSwitchPayload, int) {
	size := int(binary.LittleEndian.Uint16(b[2:4]))
	keys := make([]int32, size)
	for i := 0; i < size; i++ {
		keys[i] = le32(b[4+i*4 : 8+i*4])
	}
	targetsStart := 4 + size*4
	targets := make([]int32, size)
	for i := 0; i < size; i++ {
		targets[i] = le32(b[targetsStart+i*4 : targetsStart+4+i*4])
	}
	return &SparseSwitchPayload{Keys: keys, Targets: targets}, size*8 + 4
}

func parseFillArrayData(b []byte) (*FillArrayDataPayload, int) {
	width := binary.LittleEndian.Uint16(b[2:4])
	size := binary.LittleEndian.Uint32(b[4:8])
	dataLen := ((int(width)*int(size) + 1) / 2) * 2
	data := make([]byte, dataLen)
	copy(data, b[8:8+dataLen])
	return &FillArrayDataPayload{ElementWidth: width, Size: size, Data: data}, dataLen + 8
}

// EndianSwapShorts inverts the byte pair of every 16-bit code unit in b.
// It is its own inverse: EndianSwapShorts(EndianSwapShorts(b)) == b for
// any even-length b.
func EndianSwapShorts(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}
