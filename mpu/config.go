// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !mpuv8

package mpu

import (
	"fmt"

	"github.com/coreguard/mpukernel/board/ast1030"
	"github.com/coreguard/mpukernel/klog"
)

// MemoryConfig is the complete, translated memory map of one thread or
// privilege domain: a fixed-size array of hardware region descriptors
// ready to be written to the MPU, plus the MemoryRegion list they were
// translated from (kept for RangeHasAccess and Dump). Its storage is
// meant to be embedded directly in a thread control block or held in
// static program memory; it allocates nothing beyond construction.
type MemoryConfig struct {
	regions [ast1030.NumMPURegions]HwRegion
	source  []MemoryRegion
}

// NewMemoryConfig translates each entry of list into a hardware region
// and returns the resulting MemoryConfig. It fails with ErrTooManyRegions
// if list is longer than the target MPU's region count, or with the
// translator's error if any entry cannot be represented as a legal
// PMSAv7 region.
func NewMemoryConfig(list []MemoryRegion) (MemoryConfig, error) {
	if len(list) > ast1030.NumMPURegions {
		return MemoryConfig{}, ErrTooManyRegions
	}

	var cfg MemoryConfig
	cfg.source = list

	for i, region := range list {
		hw, err := TranslateV7(region)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("region %d [%#x, %#x): %w", i, region.Start, region.End, err)
		}
		cfg.regions[i] = hw
	}

	return cfg, nil
}

// MustNewMemoryConfig is NewMemoryConfig for call sites building a
// statically known configuration, where a translation failure is a
// programming error rather than something to recover from — the closest
// Go analogue to a const-evaluated construction that fails to compile.
func MustNewMemoryConfig(list []MemoryRegion) MemoryConfig {
	cfg, err := NewMemoryConfig(list)
	if err != nil {
		panic("mpu: " + err.Error())
	}
	return cfg
}

// KernelThreadMemoryConfig is the fallback configuration the kernel
// thread runs under: a single ReadWriteExecutable region spanning the
// bottom 2 GiB of the address space. It exists because the kernel thread
// itself is trusted and does not benefit from sub-region isolation.
var KernelThreadMemoryConfig = MustNewMemoryConfig([]MemoryRegion{
	NewMemoryRegion(ReadWriteExecutable, 0, 0x8000_0000),
})

// RangeHasAccess reports whether this configuration's source region list
// grants kind-level access to [start, end). It consults the
// architecture-neutral MemoryRegion list, not the translated hardware
// descriptors, so it reflects the caller's intent even where PMSAv7
// alignment made the hardware region strictly larger.
func (c MemoryConfig) RangeHasAccess(kind Kind, start, end uint32) bool {
	return RegionsHaveAccess(c.source, NewMemoryRegion(kind, start, end))
}

// Dump logs each populated slot's translated register values at debug
// level, and each untranslated source region's kind and range at info
// level, as a single best-effort diagnostic dump rather than a structured
// introspection API.
func (c MemoryConfig) Dump(log *klog.Logger) {
	for i, hw := range c.regions {
		if !hw.RASR.Enable() {
			continue
		}
		log.Debugf("region %d base=%#08x size=%d srd=%#02x ap=%d xn=%v",
			i, hw.RBAR.Addr(), hw.RASR.Size(), hw.RASR.SRD(), hw.RASR.AP(), hw.RASR.XN())
	}

	for _, r := range c.source {
		log.Infof("source region kind=%s start=%#08x end=%#08x", r.Kind, r.Start, r.End)
	}
}
