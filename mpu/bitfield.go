// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

// bitGet reports whether bit pos of v is set.
func bitGet(v uint32, pos int) bool {
	return (v>>uint(pos))&1 == 1
}

// bitGetN extracts the mask-wide field at bit pos of v.
func bitGetN(v uint32, pos, mask int) uint32 {
	return (v >> uint(pos)) & uint32(mask)
}

// bitSetTo sets or clears bit pos of *addr.
func bitSetTo(addr *uint32, pos int, val bool) {
	if val {
		*addr |= 1 << uint(pos)
	} else {
		*addr &^= 1 << uint(pos)
	}
}

// bitSetN writes val into the mask-wide field at bit pos of *addr.
func bitSetN(addr *uint32, pos, mask int, val uint32) {
	*addr = (*addr &^ (uint32(mask) << uint(pos))) | (val << uint(pos))
}
