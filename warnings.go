// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// Non-fatal anomaly messages. Parse records WarnShortyMismatch,
// WarnMissingOptionalSection and WarnDuplicateCodeBinding on
// File.Warnings and mirrors them to the configured logger, the same way
// pe.File collects Anomalies while still returning a usable container.
// No code uses the last three constants: the smali package reports
// unknown pseudo-instruction tags, short reads and unresolved pool
// references only through the logger, with its own messages, and they
// are not added to File.Warnings.
const (
	WarnShortyMismatch         = "shorty length does not match parameter count"
	WarnMissingOptionalSection = "optional section absent from map list"
	WarnDuplicateCodeBinding   = "method_id bound to a second, different code offset; keeping the first"
	WarnUnknownPseudoInstr     = "unknown pseudo-instruction tag, advancing 2 bytes"
	WarnDisassemblyShortRead   = "fewer bytes remain than the instruction length requires"
	WarnUnresolvedPoolRef      = "pool reference not implemented for this kind"
)
