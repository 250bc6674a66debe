// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// FileInfo summarizes which optional sections a container actually had,
// mirroring pe.FileInfo's Has* bool summary.
type FileInfo struct {
	HasFieldIDs      bool
	HasTypeLists     bool
	HasCallSites     bool
	HasMethodHandles bool
	HasClassData     bool
}
