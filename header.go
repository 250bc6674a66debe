// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import "encoding/binary"

// HeaderSize is the fixed size, in bytes, of the Dex header.
const HeaderSize = 112

// Endian-tag values at header offset 40.
const (
	endianConstant        = 0x12345678
	reverseEndianConstant = 0x78563412
)

// Header is the fixed 112-byte Dex header.
type Header struct {
	Magic           [8]byte
	Checksum        uint32
	Signature       [20]byte
	FileSize        uint32
	HeaderSize      uint32
	EndianTag       uint32
	LinkSize        uint32
	LinkOff         uint32
	MapOff          uint32
	StringIdsSize   uint32
	StringIdsOff    uint32
	TypeIdsSize     uint32
	TypeIdsOff      uint32
	ProtoIdsSize    uint32
	ProtoIdsOff     uint32
	FieldIdsSize    uint32
	FieldIdsOff     uint32
	MethodIdsSize   uint32
	MethodIdsOff    uint32
	ClassDefsSize   uint32
	ClassDefsOff    uint32
	DataSize        uint32
	DataOff         uint32
	BigEndian       bool
}

// headerByteOrder returns the byte order implied by the endian tag at offset 40,
// per spec §4.E step 1.
func headerByteOrder(tag uint32) (binary.ByteOrder, bool, error) {
	switch tag {
	case endianConstant:
		return binary.LittleEndian, false, nil
	case reverseEndianConstant:
		return binary.BigEndian, true, nil
	default:
		return nil, false, ErrInvalidEndianTag
	}
}

// parseHeader reads and validates the fixed Dex header.
func (f *File) parseHeader() error {
	if len(f.data) < HeaderSize {
		return ErrTruncatedInput
	}
	tagBytes, err := f.ReadBytesAtOffset(40, 4)
	if err != nil {
		return err
	}
	tag := binary.LittleEndian.Uint32(tagBytes)
	order, isBig, err := headerByteOrder(tag)
	if err != nil {
		return err
	}
	f.byteOrder = order
	f.bigEndian = isBig

	h := &Header{EndianTag: tag, BigEndian: isBig}
	copy(h.Magic[:], f.data[0:8])
	h.Checksum = order.Uint32(f.data[8:12])
	copy(h.Signature[:], f.data[12:32])
	h.FileSize = order.Uint32(f.data[32:36])
	h.HeaderSize = order.Uint32(f.data[36:40])
	h.LinkSize = order.Uint32(f.data[44:48])
	h.LinkOff = order.Uint32(f.data[48:52])
	h.MapOff = order.Uint32(f.data[52:56])
	h.StringIdsSize = order.Uint32(f.data[56:60])
	h.StringIdsOff = order.Uint32(f.data[60:64])
	h.TypeIdsSize = order.Uint32(f.data[64:68])
	h.TypeIdsOff = order.Uint32(f.data[68:72])
	h.ProtoIdsSize = order.Uint32(f.data[72:76])
	h.ProtoIdsOff = order.Uint32(f.data[76:80])
	h.FieldIdsSize = order.Uint32(f.data[80:84])
	h.FieldIdsOff = order.Uint32(f.data[84:88])
	h.MethodIdsSize = order.Uint32(f.data[88:92])
	h.MethodIdsOff = order.Uint32(f.data[92:96])
	h.ClassDefsSize = order.Uint32(f.data[96:100])
	h.ClassDefsOff = order.Uint32(f.data[100:104])
	h.DataSize = order.Uint32(f.data[104:108])
	h.DataOff = order.Uint32(f.data[108:112])

	f.Header = h
	return nil
}
