// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "github.com/saferwall/dex/log"

// Options configures how a File is parsed, mirroring pe.Options.
type Options struct {
	// Logger receives Debugf/Infof/Warnf/Errorf calls made while parsing.
	// A os.Stderr-backed logger is used when nil.
	Logger log.Logger

	// StrictAccessFlags records whether access-flag bit 0x8000 ("unused",
	// never observed in the wild) should count as an unknown bit; pass it
	// as AccessFlags.Validate's strict argument to get that check. Neither
	// Parse nor WriteSmaliTree reads this field or calls Validate, so
	// unknown bits are never an error there and String skips them.
	StrictAccessFlags bool

	// RegisterCap, when non-zero, is a display-time truncation for
	// consumers that cannot represent Dex's full 65,536-register range.
	// Nothing in this module reads it: the core never truncates, and the
	// dexdump CLI leaves it at 0.
	RegisterCap int
}
