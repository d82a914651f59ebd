// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

// Kind classifies what a MemoryRegion is used for, and drives both the
// hardware attribute bits a translator emits and the software access-check
// permission lattice.
type Kind int

const (
	// ReadOnlyData is non-executable memory a thread may only read (for
	// example .rodata or another thread's shared read-only buffer).
	ReadOnlyData Kind = iota
	// ReadWriteData is non-executable, readable and writable memory
	// (stack, heap, .data/.bss).
	ReadWriteData
	// ReadOnlyExecutable is executable, read-only memory (.text, flash).
	ReadOnlyExecutable
	// ReadWriteExecutable is executable and writable memory. Used
	// sparingly — chiefly for the kernel-wide fallback region — since
	// it collapses the W^X property.
	ReadWriteExecutable
	// Device is memory-mapped I/O: non-executable, non-cacheable, and
	// incomparable with normal memory kinds in the permission lattice
	// except by exact match.
	Device
)

func (k Kind) String() string {
	switch k {
	case ReadOnlyData:
		return "ReadOnlyData"
	case ReadWriteData:
		return "ReadWriteData"
	case ReadOnlyExecutable:
		return "ReadOnlyExecutable"
	case ReadWriteExecutable:
		return "ReadWriteExecutable"
	case Device:
		return "Device"
	default:
		return "Kind(?)"
	}
}

// writable reports whether kind grants write access.
func (k Kind) writable() bool {
	return k == ReadWriteData || k == ReadWriteExecutable
}

// executable reports whether kind grants execute access.
func (k Kind) executable() bool {
	return k == ReadOnlyExecutable || k == ReadWriteExecutable
}

// Permits reports whether the receiver kind is at least as permissive as
// want under the permission lattice:
// NoAccess < ReadOnly < ReadWrite, NonExecutable < Executable, and Device
// is incomparable with normal memory kinds except by exact match.
func (have Kind) Permits(want Kind) bool {
	if have == Device || want == Device {
		return have == want
	}

	if want.writable() && !have.writable() {
		return false
	}

	if want.executable() && !have.executable() {
		return false
	}

	return true
}
