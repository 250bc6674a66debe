// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "testing"

func TestAccessFlagsStringMethodContext(t *testing.T) {
	flags := AccessFlags(accPublic | accStatic)
	got := flags.String(ContextMethod)
	want := "public static "
	if got != want {
		t.Errorf("String(ContextMethod) = %q, want %q", got, want)
	}
}

func TestAccessFlagsStringOverloadedBits(t *testing.T) {
	tests := []struct {
		ctx  AccessContext
		bits AccessFlags
		want string
	}{
		{ContextClass, accSynchronizedOrSuper, "super "},
		{ContextMethod, accSynchronizedOrSuper, "synchronized "},
		{ContextMethod, accVolatileOrBridge, "bridge "},
		{ContextField, accVolatileOrBridge, "volatile "},
		{ContextMethod, accTransientOrVarargs, "varargs "},
		{ContextField, accTransientOrVarargs, "transient "},
	}
	for _, tt := range tests {
		if got := tt.bits.String(tt.ctx); got != tt.want {
			t.Errorf("flags %#x in context %d = %q, want %q", tt.bits, tt.ctx, got, tt.want)
		}
	}
}

func TestAccessFlagsValidate(t *testing.T) {
	unused := AccessFlags(accUnused)
	if err := unused.Validate(false); err != nil {
		t.Errorf("Validate(false) on the unused bit: unexpected error %v", err)
	}
	if err := unused.Validate(true); err == nil {
		t.Errorf("Validate(true) on the unused bit: expected an error, got nil")
	}

	reallyUnknown := AccessFlags(1 << 24)
	if err := reallyUnknown.Validate(false); err == nil {
		t.Errorf("Validate(false) on a genuinely unknown bit: expected an error, got nil")
	}
}
