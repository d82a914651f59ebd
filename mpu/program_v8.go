// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

import (
	"github.com/coreguard/mpukernel/internal/exception"
	"github.com/coreguard/mpukernel/klog"
)

// Init programs bank's MAIR0 with the fixed attribute encodings every
// RLAR.AttrIndx in a MemoryConfig refers into. It must run once before
// the first Install against bank; PMSAv8 region descriptors carry only
// an index into MAIR, never the attributes themselves, so a region
// enabled before MAIR is programmed would fault against whatever
// attributes happened to be left in the register.
func Init(bank Bank) {
	bank.WriteMair()
}

// Install writes cfg's regions to bank: disable the MPU, write every
// slot in order, then re-enable. See the PMSAv7 variant of this
// function for the full rationale. The caller must have called Init
// against bank first so that MAIR is already programmed; Install does
// not repeat that work on every call.
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
		log.Debugf("mpu: wrote region %d base=%#08x limit=%#08x enable=%v", i, hw.RBAR.Addr(), hw.RLAR.Limit(), hw.RLAR.Enable())
	}

	bank.Enable()
	log.Infof("mpu: installed %d regions", n)
}
