// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// MapType identifies the kind of item a map_list entry describes.
type MapType uint16

// The full set of map_list item type codes.
const (
	TypeHeaderItem              MapType = 0x0000
	TypeStringIDItem            MapType = 0x0001
	TypeTypeIDItem              MapType = 0x0002
	TypeProtoIDItem             MapType = 0x0003
	TypeFieldIDItem             MapType = 0x0004
	TypeMethodIDItem            MapType = 0x0005
	TypeClassDefItem            MapType = 0x0006
	TypeCallSiteIDItem          MapType = 0x0007
	TypeMethodHandleItem        MapType = 0x0008
	TypeMapList                 MapType = 0x1000
	TypeTypeList                MapType = 0x1001
	TypeAnnotationSetRefList    MapType = 0x1002
	TypeAnnotationSetItem       MapType = 0x1003
	TypeClassDataItem           MapType = 0x2000
	TypeCodeItem                MapType = 0x2001
	TypeStringDataItem          MapType = 0x2002
	TypeDebugInfoItem           MapType = 0x2003
	TypeAnnotationItem          MapType = 0x2004
	TypeEncodedArrayItem        MapType = 0x2005
	TypeAnnotationsDirectoryItem MapType = 0x2006
)

// MapItem is one entry of the map list: a section's type, element count,
// and starting file offset.
type MapItem struct {
	Type   MapType
	Count  uint32
	Offset uint32
}

// parseMapList reads the map_size-prefixed list of MapItem entries at
// header.MapOff, per spec §4.E step 2.
func (f *File) parseMapList() ([]MapItem, error) {
	off := f.Header.MapOff
	size, err := f.ReadUint32(off)
	if err != nil {
		return nil, err
	}
	items := make([]MapItem, 0, size)
	cur := off + 4
	for i := uint32(0); i < size; i++ {
		typ, err := f.ReadUint16(cur)
		if err != nil {
			return nil, err
		}
		count, err := f.ReadUint32(cur + 4)
		if err != nil {
			return nil, err
		}
		itemOff, err := f.ReadUint32(cur + 8)
		if err != nil {
			return nil, err
		}
		items = append(items, MapItem{Type: MapType(typ), Count: count, Offset: itemOff})
		cur += 12
	}
	return items, nil
}

// mapByType indexes map entries by type for the container driver's fixed
// dependency-ordered walk.
func mapByType(items []MapItem) map[MapType]MapItem {
	m := make(map[MapType]MapItem, len(items))
	for _, it := range items {
		m[it.Type] = it
	}
	return m
}
