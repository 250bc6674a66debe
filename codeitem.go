// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// codeItemHeaderSize is the fixed-size prefix of a code_item, before the
// instruction stream: registers_size, ins_size, outs_size, tries_size
// (each u16) and debug_info_off, insns_size (each u32).
const codeItemHeaderSize = 16

// parseCodeItems walks the map's run of code_item entries sequentially,
// each one 4-byte aligned, recording the result keyed by its own file
// offset since encoded_method references code by offset. The instruction
// stream offset recorded on the resulting CodeItem is codeOff+16, the
// convention dex.py uses for Method.InsnsOff.
func (f *File) parseCodeItems(item MapItem, types []Type) (map[uint32]*CodeItem, error) {
	out := make(map[uint32]*CodeItem, item.Count)
	off := item.Offset
	for i := uint32(0); i < item.Count; i++ {
		if pad := (4 - off%4) % 4; pad != 0 {
			off += pad
		}
		start := off

		regSize, err := f.ReadUint16(off)
		if err != nil {
			return nil, err
		}
		insSize, err := f.ReadUint16(off + 2)
		if err != nil {
			return nil, err
		}
		outsSize, err := f.ReadUint16(off + 4)
		if err != nil {
			return nil, err
		}
		triesSize, err := f.ReadUint16(off + 6)
		if err != nil {
			return nil, err
		}
		debugOff, err := f.ReadUint32(off + 8)
		if err != nil {
			return nil, err
		}
		insnsSize, err := f.ReadUint32(off + 12)
		if err != nil {
			return nil, err
		}
		off += codeItemHeaderSize

		insns, err := f.ReadBytesAtOffset(off, insnsSize*2)
		if err != nil {
			return nil, err
		}
		off += insnsSize * 2

		var tries []TryItem
		if triesSize != 0 {
			if insnsSize%2 == 1 {
				off += 2
			}
			type rawTry struct {
				startAddr  uint32
				insnCount  uint16
				handlerOff uint16
			}
			raws := make([]rawTry, triesSize)
			for t := uint16(0); t < triesSize; t++ {
				sa, err := f.ReadUint32(off)
				if err != nil {
					return nil, err
				}
				ic, err := f.ReadUint16(off + 4)
				if err != nil {
					return nil, err
				}
				ho, err := f.ReadUint16(off + 6)
				if err != nil {
					return nil, err
				}
				raws[t] = rawTry{sa, ic, ho}
				off += 8
			}

			handlerListOff := off
			handlersCount, n, err := f.ReadULEB128At(off)
			if err != nil {
				return nil, err
			}
			off += uint32(n)

			handlersByRelOff := make(map[uint32]EncodedCatchHandler, handlersCount)
			for h := uint32(0); h < handlersCount; h++ {
				relOff := off - handlerListOff
				handler, consumed, err := f.parseEncodedCatchHandler(off, types)
				if err != nil {
					return nil, err
				}
				handlersByRelOff[relOff] = handler
				off += consumed
			}

			tries = make([]TryItem, triesSize)
			for t, r := range raws {
				tries[t] = TryItem{
					StartAddr: r.startAddr,
					InsnCount: r.insnCount,
					Handler:   handlersByRelOff[uint32(r.handlerOff)],
				}
			}
		}

		out[start] = &CodeItem{
			RegistersSize: regSize,
			InsSize:       insSize,
			OutsSize:      outsSize,
			DebugInfoOff:  debugOff,
			InsnsOff:      start + codeItemHeaderSize,
			Insns:         insns,
			Tries:         tries,
		}
	}
	return out, nil
}

// ReadULEB128At decodes a uleb128 at a file offset, returning the value
// and bytes consumed.
func (f *File) ReadULEB128At(offset uint32) (uint32, int, error) {
	end := offset + 5
	if end > uint32(len(f.data)) {
		end = uint32(len(f.data))
	}
	buf, err := f.ReadBytesAtOffset(offset, end-offset)
	if err != nil {
		return 0, 0, err
	}
	return ParseULEB128(buf)
}

// ReadSLEB128At decodes a sleb128 at a file offset, returning the value
// and bytes consumed.
func (f *File) ReadSLEB128At(offset uint32) (int32, int, error) {
	end := offset + 5
	if end > uint32(len(f.data)) {
		end = uint32(len(f.data))
	}
	buf, err := f.ReadBytesAtOffset(offset, end-offset)
	if err != nil {
		return 0, 0, err
	}
	return ParseSLEB128(buf)
}

// parseEncodedCatchHandler decodes one encoded_catch_handler at offset:
// a signed count S, |S| typed (type, address) pairs, and — when S <= 0 —
// a trailing catch-all address.
func (f *File) parseEncodedCatchHandler(offset uint32, types []Type) (EncodedCatchHandler, uint32, error) {
	size, n, err := f.ReadSLEB128At(offset)
	if err != nil {
		return EncodedCatchHandler{}, 0, err
	}
	pos := offset + uint32(n)
	count := size
	if count < 0 {
		count = -count
	}
	h := EncodedCatchHandler{Handlers: make([]CatchHandlerEntry, count)}
	for i := int32(0); i < count; i++ {
		typeIdx, n, err := f.ReadULEB128At(pos)
		if err != nil {
			return EncodedCatchHandler{}, 0, err
		}
		pos += uint32(n)
		addr, n, err := f.ReadULEB128At(pos)
		if err != nil {
			return EncodedCatchHandler{}, 0, err
		}
		pos += uint32(n)
		if typeIdx >= uint32(len(types)) {
			return EncodedCatchHandler{}, 0, ErrInvalidPoolIndex
		}
		h.Handlers[i] = CatchHandlerEntry{Type: types[typeIdx], Addr: addr}
	}
	if size <= 0 {
		addr, n, err := f.ReadULEB128At(pos)
		if err != nil {
			return EncodedCatchHandler{}, 0, err
		}
		pos += uint32(n)
		h.HasCatchAll = true
		h.CatchAll = addr
	}
	return h, pos - offset, nil
}
