// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

// PMSAv8 (ARMv8-M) MPU region translation.
//
// PMSAv8 drops PMSAv7's power-of-two sizing and sub-region-disable mask
// entirely: a region is an arbitrary [base, limit] pair, both only
// required to be 32-byte aligned, and memory attributes are indirected
// through the MAIR0/MAIR1 registers, each holding four 8-bit attribute
// encodings, rather than encoded inline. This backend was not distilled from an existing
// reference translator (none was retrieved for this architecture
// variant); its alignment and MAIR-indexing scheme follow directly from
// the PMSAv8 register layout in regs/mpu/mpu_v8.rs. See DESIGN.md.

package mpu

// mpuAlign is the PMSAv8 base/limit alignment granule.
const mpuAlign = 32

// MAIR attribute slot indices this backend programs into MAIR0. Only two
// distinct attribute encodings are needed: every Device region shares
// one Device-nGnRE encoding, and every normal memory kind shares one
// Normal Write-Back Read/Write-Allocate encoding — PMSAv8's per-region
// cacheability is picked via AttrIndx, not per-field bits, so kinds that
// only differ in access permission or executability reuse the same MAIR
// slot.
const (
	attrIndxDevice = 0
	attrIndxNormal = 1
)

// mairAttrDevice and mairAttrNormal are the MAIR encoding bytes for
// attrIndxDevice and attrIndxNormal, per the Device/Normal memory layouts
// documented in regs/mpu/mpu_v8.rs.
const (
	mairAttrDevice = 0b0000_0100 // Device-nGnRE
	mairAttrNormal = 0b1111_1111 // Normal, outer & inner Write-Back, R/W Non-transient
)

// alignRegionV8 aligns [start, end) out to PMSAv8's 32-byte granule: the
// base rounds down, the limit rounds up. Unlike PMSAv7 there is no
// power-of-two size constraint, so this never needs to grow past what
// alignment alone requires.
func alignRegionV8(start, end uint32) (base, limit uint32, err error) {
	if uint64(end)-uint64(start) > maxRegionSizeV8 {
		return 0, 0, ErrRegionTooLarge
	}

	base = start &^ (mpuAlign - 1)

	last := uint64(end) - 1
	limit64 := (last &^ (mpuAlign - 1)) | (mpuAlign - 1)
	if limit64 > 0xFFFF_FFFF {
		return 0, 0, ErrRegionTooLarge
	}

	return base, uint32(limit64), nil
}

// maxRegionSizeV8 bounds a PMSAv8 request the same way maxRegionSize
// bounds a PMSAv7 one, for a consistent ErrRegionTooLarge contract
// between the two backends.
const maxRegionSizeV8 = 1 << 31

func v8AttributesFor(kind Kind) (xn bool, ap RbarAp, sh RbarSh, attrIndx uint8, pxn bool) {
	switch kind {
	case ReadOnlyData:
		return true, RbarRoAny, ShOuterShareable, attrIndxNormal, true
	case ReadWriteData:
		return true, RbarRwAny, ShOuterShareable, attrIndxNormal, true
	case ReadOnlyExecutable:
		return false, RbarRoAny, ShOuterShareable, attrIndxNormal, false
	case ReadWriteExecutable:
		return false, RbarRwAny, ShOuterShareable, attrIndxNormal, false
	case Device:
		return true, RbarRwAny, ShOuterShareable, attrIndxDevice, true
	default:
		panic("mpu: unknown region kind")
	}
}

// TranslateV8 converts one MemoryRegion into the PMSAv8 (RBAR, RLAR) pair
// that, written to an MPU region slot alongside the fixed MAIR0 encoding
// this package installs, represents [region.Start, region.End) subject
// only to PMSAv8's 32-byte alignment constraint.
func TranslateV8(region MemoryRegion) (HwRegion, error) {
	base, limit, err := alignRegionV8(region.Start, region.End)
	if err != nil {
		return HwRegion{}, err
	}

	xn, ap, sh, attrIndx, pxn := v8AttributesFor(region.Kind)

	return HwRegion{
		RBAR: newRbarV8(base, xn, ap, sh),
		RLAR: newRlarV8(limit, attrIndx, pxn),
	}, nil
}
