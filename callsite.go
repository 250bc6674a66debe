// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// parseCallSiteIDs reads the fixed 4-byte-stride call_site_id_item
// array; each entry is an offset into an encoded_array_item carrying the
// call site's bootstrap arguments. Resolution of the method handle those
// arguments name is accepted and carried but not further interpreted
// (spec §1 lists call-site resolution as acknowledged-but-not-required).
func (f *File) parseCallSiteIDs(item MapItem) ([]CallSite, error) {
	sites := make([]CallSite, item.Count)
	for i := uint32(0); i < item.Count; i++ {
		off, err := f.ReadUint32(item.Offset + i*4)
		if err != nil {
			return nil, err
		}
		buf, err := f.ReadBytesAtOffset(off, uint32(len(f.data))-off)
		if err != nil {
			return nil, err
		}
		arr, _, err := f.parseEncodedArray(buf)
		if err != nil {
			return nil, err
		}
		sites[i] = CallSite{Values: arr}
	}
	return sites, nil
}
