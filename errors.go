// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "errors"

// Errors returned by the container driver and its sub-decoders. Each one
// corresponds to a fatal kind in the error taxonomy; non-fatal conditions
// are reported through Warnings instead, see warnings.go.
var (
	ErrInvalidEndianTag        = errors.New("dex: invalid endian tag")
	ErrTruncatedInput          = errors.New("dex: truncated input")
	ErrInvalidLeb128           = errors.New("dex: invalid leb128 sequence")
	ErrInvalidMutf8            = errors.New("dex: invalid mutf-8 sequence")
	ErrUnknownAccessFlag       = errors.New("dex: unknown access flag bit")
	ErrInvalidEncodedValueType = errors.New("dex: invalid encoded value type")
	ErrMissingRequiredSection  = errors.New("dex: missing required section")
	ErrInvalidPoolIndex        = errors.New("dex: pool index out of range")
)
