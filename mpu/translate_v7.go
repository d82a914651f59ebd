// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !mpuv8

// PMSAv7 (ARMv7-M) MPU region translation.
//
// PMSAv7 requires power-of-two sized regions (32 B to 2 GiB for this
// implementation), a base aligned to the region size, and encodes all
// memory attributes inline in RASR rather than through MAIR indirection.
// Non-power-of-two ranges are approximated with the 8-bit sub-region
// disable (SRD) mask: a sub-region is enabled whenever it overlaps the
// requested range at all, which can expose up to (region size / 8) - 1
// bytes beyond either end of the request. See DESIGN.md.

package mpu

// maxRegionSize is the largest PMSAv7 region this translator will build:
// 2 GiB (SIZE field 30). PMSAv7 technically supports up to 4 GiB regions,
// but this translator caps at 2^31 so that a half-open [start, end)
// range always fits in a signed 32-bit size comparison, and so the
// kernel-wide fallback region (0, 2 GiB) remains the largest legal input.
const maxRegionSize = 1 << 31

// minRegionSize is the smallest region PMSAv7 hardware supports (SIZE
// field 4).
const minRegionSize = 32

// AlignedRegion is the intermediate result of fitting a requested
// [start, end) range to PMSAv7's power-of-two, size-aligned region
// constraints.
type AlignedRegion struct {
	Base      uint32
	SizeField uint8
	SRDMask   uint8
}

// calculateSizeField converts a power-of-two region size in bytes to the
// PMSAv7 RASR.SIZE encoding: SIZE = log2(size) - 1, computed by repeated
// right-shift (no floating point, no math.Log2) so it stays usable in the
// same restricted arithmetic a const-eval context would allow. The
// minimum emitted value is 4 (32 bytes), even if size is smaller.
func calculateSizeField(size uint64) uint8 {
	bits := 0

	for size > 1 {
		size >>= 1
		bits++
	}

	if bits < 5 {
		return 4
	}

	return uint8(bits - 1)
}

// calculateAlignedRegion finds the smallest power-of-two, size-aligned
// hardware region that covers [start, end), and the SRD mask that
// disables every one of its 8 equal sub-regions not overlapping
// [start, end).
func calculateAlignedRegion(start, end uint32) (AlignedRegion, error) {
	requested := uint64(end) - uint64(start)

	if requested > maxRegionSize {
		return AlignedRegion{}, ErrRegionTooLarge
	}

	size := uint64(minRegionSize)
	for size < requested {
		size *= 2
		if size > maxRegionSize {
			return AlignedRegion{}, ErrRegionTooLarge
		}
	}

	base := uint64(start) &^ (size - 1)

	for base+size < uint64(end) {
		size *= 2
		if size > maxRegionSize {
			return AlignedRegion{}, ErrRegionTooLarge
		}
		base = uint64(start) &^ (size - 1)
	}

	sizeField := calculateSizeField(size)
	srdMask := subRegionDisableMask(base, size, uint64(start), uint64(end))

	return AlignedRegion{
		Base:      uint32(base),
		SizeField: sizeField,
		SRDMask:   srdMask,
	}, nil
}

// subRegionDisableMask sets bit i of the returned mask whenever
// sub-region i of an 8-way split of [base, base+size) does not overlap
// the originally requested [start, end) range.
func subRegionDisableMask(base, size, start, end uint64) uint8 {
	stride := size / 8

	var mask uint8
	for i := uint64(0); i < 8; i++ {
		subStart := base + i*stride
		subEnd := subStart + stride

		overlaps := subStart < end && subEnd > start
		if !overlaps {
			mask |= 1 << i
		}
	}

	return mask
}

// attributesV7 returns the (xn, tex, s, c, b, ap) tuple assigned to each
// Kind.
func attributesV7(kind Kind) rasrAttrs {
	switch kind {
	case ReadOnlyData:
		return rasrAttrs{xn: true, tex: 0b001, s: true, c: true, b: true, ap: RasrRoAny}
	case ReadWriteData:
		return rasrAttrs{xn: true, tex: 0b001, s: false, c: true, b: true, ap: RasrRwAny}
	case ReadOnlyExecutable:
		return rasrAttrs{xn: false, tex: 0b001, s: true, c: true, b: true, ap: RasrRoAny}
	case ReadWriteExecutable:
		return rasrAttrs{xn: false, tex: 0b001, s: true, c: true, b: true, ap: RasrRwAny}
	case Device:
		return rasrAttrs{xn: true, tex: 0b000, s: true, c: false, b: true, ap: RasrRoAny}
	default:
		panic("mpu: unknown region kind")
	}
}

// TranslateV7 converts one MemoryRegion into the PMSAv7 (RBAR, RASR) pair
// that, written to an MPU region slot, approximates
// [region.Start, region.End) subject to PMSAv7's power-of-two and
// alignment constraints. It returns ErrRegionTooLarge if no legal region
// can cover the request.
func TranslateV7(region MemoryRegion) (HwRegion, error) {
	aligned, err := calculateAlignedRegion(region.Start, region.End)
	if err != nil {
		return HwRegion{}, err
	}

	attrs := attributesV7(region.Kind)

	return HwRegion{
		RBAR: newRbarV7(aligned.Base),
		RASR: newRasrV7(aligned.SizeField, aligned.SRDMask, attrs),
	}, nil
}
