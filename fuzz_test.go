// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "testing"

// FuzzParse is the stdlib testing/fuzz equivalent of the legacy Fuzz
// entrypoint: NewBytes+Parse must never panic on arbitrary input,
// regardless of how malformed.
func FuzzParse(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, HeaderSize))
	f.Add([]byte("dex\n035\x00"))

	f.Fuzz(func(t *testing.T, data []byte) {
		df, err := NewBytes(data, &Options{})
		if err != nil {
			return
		}
		defer df.Close()
		_ = df.Parse()
	})
}
