// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

import (
	"fmt"

	"github.com/coreguard/mpukernel/board/ast1030"
	"github.com/coreguard/mpukernel/klog"
)

// MemoryConfig is the complete, translated memory map of one thread or
// privilege domain. See the PMSAv7 variant of this type for the full
// description; the PMSAv8 backend differs only in which HwRegion it
// stores per slot.
type MemoryConfig struct {
	regions [ast1030.NumMPURegions]HwRegion
	source  []MemoryRegion
}

// NewMemoryConfig translates each entry of list into a PMSAv8 hardware
// region and returns the resulting MemoryConfig.
func NewMemoryConfig(list []MemoryRegion) (MemoryConfig, error) {
	if len(list) > ast1030.NumMPURegions {
		return MemoryConfig{}, ErrTooManyRegions
	}

	var cfg MemoryConfig
	cfg.source = list

	for i, region := range list {
		hw, err := TranslateV8(region)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("region %d [%#x, %#x): %w", i, region.Start, region.End, err)
		}
		cfg.regions[i] = hw
	}

	return cfg, nil
}

// MustNewMemoryConfig is NewMemoryConfig for statically known
// configurations, where a translation failure is a programming error.
func MustNewMemoryConfig(list []MemoryRegion) MemoryConfig {
	cfg, err := NewMemoryConfig(list)
	if err != nil {
		panic("mpu: " + err.Error())
	}
	return cfg
}

// KernelThreadMemoryConfig is the fallback configuration the kernel
// thread runs under: a single ReadWriteExecutable region spanning the
// bottom 2 GiB of the address space.
var KernelThreadMemoryConfig = MustNewMemoryConfig([]MemoryRegion{
	NewMemoryRegion(ReadWriteExecutable, 0, 0x8000_0000),
})

// RangeHasAccess reports whether this configuration's source region list
// grants kind-level access to [start, end).
func (c MemoryConfig) RangeHasAccess(kind Kind, start, end uint32) bool {
	return RegionsHaveAccess(c.source, NewMemoryRegion(kind, start, end))
}

// Dump logs each populated slot's translated register values at debug
// level, and each untranslated source region at info level.
func (c MemoryConfig) Dump(log *klog.Logger) {
	for i, hw := range c.regions {
		if !hw.RLAR.Enable() {
			continue
		}
		log.Debugf("region %d base=%#08x limit=%#08x attrindx=%d xn=%v",
			i, hw.RBAR.Addr(), hw.RLAR.Limit(), hw.RLAR.AttrIndx(), hw.RBAR.XN())
	}

	for _, r := range c.source {
		log.Infof("source region kind=%s start=%#08x end=%#08x", r.Kind, r.Start, r.End)
	}
}
