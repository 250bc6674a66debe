// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// Fuzz is the legacy go-fuzz entrypoint, kept for harnesses that still
// drive it directly; FuzzParse in fuzz_test.go is the stdlib
// testing/fuzz equivalent used by `go test -fuzz`.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	if err := f.Parse(); err != nil {
		return 0
	}
	return 1
}
