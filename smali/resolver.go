// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package smali implements the Dalvik bytecode disassembler: the
// nibble/format engine, the static instruction table, the pseudo-
// instruction extractor, the symbolic token renderer, and the
// control-flow summarizer (spec components B, C, F, G, H).
//
// This package intentionally does not import the root dex package, the
// same way the original Python smali module never imports its dex
// module — callers pass a Pool implementation (dex.File satisfies it
// structurally) so the dependency runs one way, dex -> smali, avoiding
// an import cycle between the container model and the disassembler.
package smali

// Pool is the minimal read-only view of a parsed container the
// disassembler needs to resolve operand placeholders into symbolic
// text. *dex.File implements this interface; smali does not import dex.
type Pool interface {
	// String returns the pool string at idx.
	String(idx uint32) (string, error)
	// TypeName returns the pool type descriptor at idx.
	TypeName(idx uint32) (string, error)
	// FieldRef returns "class", "name", "type" for the field at idx.
	FieldRef(idx uint32) (class, name, typ string, err error)
	// MethodRef returns the defining class, name, resolved parameter
	// and return type descriptors, and the known instruction-stream
	// byte offset (0 if none) for the method at idx.
	MethodRef(idx uint32) (class, name string, params []string, ret string, insnsOff uint32, err error)
}
