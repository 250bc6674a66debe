// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseStringIDs reads the string_id_item array (an array of uint32
// offsets into string_data_item) and decodes each target MUTF-8 blob, in
// the same two-step process as dex.py's parse_string_ids/make_strings.
func (f *File) parseStringIDs(item MapItem) ([]string, error) {
	strs := make([]string, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		dataOff, err := f.ReadUint32(item.Offset + i*4)
		if err != nil {
			return nil, err
		}
		// string_data_item begins with a uleb128 utf16_size (the decoded
		// length in UTF-16 code units), which this core does not need
		// beyond skipping it to reach the MUTF-8 payload.
		buf, err := f.ReadBytesAtOffset(dataOff, min32(uint32(len(f.data))-dataOff, 5))
		if err != nil {
			return nil, err
		}
		_, n, err := ParseULEB128(buf)
		if err != nil {
			return nil, err
		}
		payloadOff := dataOff + uint32(n)
		rest, err := f.ReadBytesAtOffset(payloadOff, uint32(len(f.data))-payloadOff)
		if err != nil {
			return nil, err
		}
		s, _, err := ParseMUTF8(rest)
		if err != nil {
			return nil, err
		}
		strs[i] = s
	}
	return strs, nil
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// String returns the pool string at idx, erroring if idx is out of
// range. External lookups are bounds-checked per spec §6.
func (f *File) String(idx uint32) (string, error) {
	if idx >= uint32(len(f.strings)) {
		return "", ErrInvalidPoolIndex
	}
	return f.strings[idx], nil
}
