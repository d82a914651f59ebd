// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mpu translates a statically declared, architecture-neutral
// description of a task's memory map into a concrete ARM PMSAv7 (and,
// under the mpuv8 build tag, PMSAv8) Memory Protection Unit configuration,
// and programs that configuration atomically on context switches or
// privilege transitions.
package mpu

// MemoryRegion is an architecture-neutral description of one contiguous
// logical region of address space: a Kind and a byte-addressed half-open
// range [Start, End). It is the input to the region translators and the
// unit the software-side access checks reason about.
type MemoryRegion struct {
	Kind  Kind
	Start uint32
	End   uint32
}

// NewMemoryRegion constructs a MemoryRegion. It does not validate start <=
// end; malformed ranges surface as ErrRegionTooLarge (or simply fail to
// cover anything) when translated; empty or inverted ranges are an
// upper-layer invariant the translator does not police.
func NewMemoryRegion(kind Kind, start, end uint32) MemoryRegion {
	return MemoryRegion{Kind: kind, Start: start, End: end}
}

// covers reports whether the receiver region wholly contains probe: same
// or wider address range, and a Kind at least as permissive under the
// permission lattice.
func (r MemoryRegion) covers(probe MemoryRegion) bool {
	return r.Start <= probe.Start && r.End >= probe.End && r.Kind.Permits(probe.Kind)
}

// RegionsHaveAccess reports whether some region in list wholly covers
// probe: start/end contained, and a Kind at least as permissive as
// probe.Kind under the permission lattice. It is the query the syscall
// layer uses to validate user-supplied pointer ranges without reading the
// MPU hardware.
func RegionsHaveAccess(list []MemoryRegion, probe MemoryRegion) bool {
	for _, r := range list {
		if r.covers(probe) {
			return true
		}
	}

	return false
}
