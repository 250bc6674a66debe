// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "encoding/binary"

// ReadUint8 reads a single byte at offset, bounds-checked against the
// backing buffer, the same way pe.File.ReadUint8 is used throughout the
// teacher's section decoders.
func (f *File) ReadUint8(offset uint32) (uint8, error) {
	if uint64(offset)+1 > uint64(len(f.data)) {
		return 0, ErrTruncatedInput
	}
	return f.data[offset], nil
}

// ReadUint16 reads a little-endian uint16 at offset.
func (f *File) ReadUint16(offset uint32) (uint16, error) {
	if uint64(offset)+2 > uint64(len(f.data)) {
		return 0, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint16(f.data[offset : offset+2]), nil
}

// ReadUint32 reads a little-endian uint32 at offset.
func (f *File) ReadUint32(offset uint32) (uint32, error) {
	if uint64(offset)+4 > uint64(len(f.data)) {
		return 0, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint32(f.data[offset : offset+4]), nil
}

// ReadUint64 reads a little-endian uint64 at offset.
func (f *File) ReadUint64(offset uint32) (uint64, error) {
	if uint64(offset)+8 > uint64(len(f.data)) {
		return 0, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint64(f.data[offset : offset+8]), nil
}

// ReadBytesAtOffset returns a size-byte slice of the backing buffer
// starting at offset, bounds-checked, mirroring
// pe.File.ReadBytesAtOffset.
func (f *File) ReadBytesAtOffset(offset, size uint32) ([]byte, error) {
	if uint64(offset)+uint64(size) > uint64(len(f.data)) {
		return nil, ErrTruncatedInput
	}
	return f.data[offset : offset+size], nil
}
