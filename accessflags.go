// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "strings"

// AccessFlags is a raw 32-bit Dex access-flag bit-set.
type AccessFlags uint32

// AccessContext selects how overloaded bits (0x20, 0x40, 0x80) render.
type AccessContext int

// The three contexts access flags are rendered in.
const (
	ContextClass AccessContext = iota
	ContextMethod
	ContextField
)

const (
	accPublic              AccessFlags = 0x1
	accPrivate             AccessFlags = 0x2
	accProtected           AccessFlags = 0x4
	accStatic              AccessFlags = 0x8
	accFinal               AccessFlags = 0x10
	accSynchronizedOrSuper AccessFlags = 0x20
	accVolatileOrBridge    AccessFlags = 0x40
	accTransientOrVarargs  AccessFlags = 0x80
	accNative              AccessFlags = 0x100
	accInterface           AccessFlags = 0x200
	accAbstract            AccessFlags = 0x400
	accStrictFp            AccessFlags = 0x800
	accSynthetic           AccessFlags = 0x1000
	accAnnotation          AccessFlags = 0x2000
	accEnum                AccessFlags = 0x4000
	accUnused              AccessFlags = 0x8000
	accConstructor         AccessFlags = 0x10000
	accDeclaredSync        AccessFlags = 0x20000

	accKnownMask = accPublic | accPrivate | accProtected | accStatic |
		accFinal | accSynchronizedOrSuper | accVolatileOrBridge |
		accTransientOrVarargs | accNative | accInterface | accAbstract |
		accStrictFp | accSynthetic | accAnnotation | accEnum |
		accConstructor | accDeclaredSync
)

// String renders the flags, space-separated and in the fixed order
// required by the container format, using the names appropriate to ctx.
// Bits outside the documented set are skipped without any error;
// Validate should be called before String if the caller needs to
// distinguish an unknown bit from a legitimately empty rendering.
func (a AccessFlags) String(ctx AccessContext) string {
	var sb strings.Builder
	if a&accPublic != 0 {
		sb.WriteString("public ")
	}
	if a&accPrivate != 0 {
		sb.WriteString("private ")
	}
	if a&accProtected != 0 {
		sb.WriteString("protected ")
	}
	if a&accStatic != 0 {
		sb.WriteString("static ")
	}
	if a&accFinal != 0 {
		sb.WriteString("final ")
	}
	if a&accSynchronizedOrSuper != 0 {
		if ctx == ContextClass {
			sb.WriteString("super ")
		} else {
			sb.WriteString("synchronized ")
		}
	}
	if a&accVolatileOrBridge != 0 {
		if ctx == ContextMethod {
			sb.WriteString("bridge ")
		} else {
			sb.WriteString("volatile ")
		}
	}
	if a&accTransientOrVarargs != 0 {
		if ctx == ContextMethod {
			sb.WriteString("varargs ")
		} else {
			sb.WriteString("transient ")
		}
	}
	if a&accNative != 0 {
		sb.WriteString("native ")
	}
	if a&accInterface != 0 {
		sb.WriteString("interface ")
	}
	if a&accAbstract != 0 {
		sb.WriteString("abstract ")
	}
	if a&accStrictFp != 0 {
		sb.WriteString("strictfp ")
	}
	if a&accSynthetic != 0 {
		sb.WriteString("synthetic ")
	}
	if a&accAnnotation != 0 {
		sb.WriteString("annotation ")
	}
	if a&accEnum != 0 {
		sb.WriteString("enum ")
	}
	if a&accConstructor != 0 {
		sb.WriteString("constructor ")
	}
	if a&accDeclaredSync != 0 {
		sb.WriteString("declared_synchronized ")
	}
	return sb.String()
}

// Validate reports ErrUnknownAccessFlag if a contains bits outside the
// documented set. Bit 0x8000 ("unused") is tolerated unless strict is
// true, per the Open Question recorded in DESIGN.md.
func (a AccessFlags) Validate(strict bool) error {
	known := accKnownMask
	if !strict {
		known |= accUnused
	}
	if a&^known != 0 {
		return ErrUnknownAccessFlag
	}
	return nil
}
