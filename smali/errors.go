// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import "errors"

// Errors of the format engine and disassembler. ParseWithFormat returns
// ErrShortInstruction; no function in this package returns
// ErrUnknownOpcode, since Table has a row for every opcode byte.
var (
	ErrShortInstruction = errors.New("smali: fewer bytes remain than the instruction requires")
	ErrUnknownOpcode    = errors.New("smali: opcode has no instruction table entry")
)
