// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !mpuv8

package mpu

import (
	"github.com/coreguard/mpukernel/internal/exception"
	"github.com/coreguard/mpukernel/klog"
)

// Init prepares bank for its first Install. PMSAv7 encodes memory
// attributes (TEX/C/B/S) directly in each region's RASR rather than
// through a shared attribute table, so there is nothing to program up
// front; Init exists only so callers can sequence Init-then-Install
// uniformly across both MPU architectures.
func Init(bank Bank) {}

// Install writes cfg's regions to bank: disable
// the MPU (with hfnmiena cleared and privdefena set so privileged code
// keeps running against the default map while regions are rewritten),
// write every slot in order with RBAR.VALID left clear, then re-enable.
//
// The caller must hold exclusive access to bank and must mask interrupts
// at a level that cannot itself take a memory fault for the duration of
// the call; Install has no way to enforce either requirement and simply
// trusts its caller, the way privileged register drivers generally trust
// their callers to serialize access.
func Install(bank Bank, cfg MemoryConfig, log *klog.Logger) {
	bank.Disable()

	n := bank.NumRegions()
	if n == 0 {
		exception.Throw("install against a register bank reporting zero MPU regions")
	}
	if n > len(cfg.regions) {
		n = len(cfg.regions)
	}

	for i := 0; i < n; i++ {
		hw := cfg.regions[i]
		bank.WriteRegion(i, hw)
		log.Debugf("mpu: wrote region %d base=%#08x size=%d enable=%v", i, hw.RBAR.Addr(), hw.RASR.Size(), hw.RASR.Enable())
	}

	bank.Enable()
	log.Infof("mpu: installed %d regions", n)
}
