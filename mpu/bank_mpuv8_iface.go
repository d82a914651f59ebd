// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

// PMSAv8 MPU register addresses, fixed by the ARMv8-M System Control
// Space layout.
const (
	mpuTypeAddr  = 0xE000_ED90
	mpuCtrlAddr  = 0xE000_ED94
	mpuRnrAddr   = 0xE000_ED98
	mpuRbarAddr  = 0xE000_ED9C
	mpuRlarAddr  = 0xE000_EDA0
	mpuMair0Addr = 0xE000_EDC0
	mpuMair1Addr = 0xE000_EDC4
)

// MPU_CTRL bit positions, shared with PMSAv7.
const (
	ctrlEnable     = 0
	ctrlHfnmiena   = 1
	ctrlPrivdefena = 2
)

// Bank is the privileged handle a Programmer uses to write region
// descriptors, and the fixed MAIR attribute encodings, to the MPU.
// HardwareBank is the only production implementation; tests supply their
// own in-memory fake.
type Bank interface {
	// NumRegions reports MPU_TYPE.dregion.
	NumRegions() int

	// Disable clears CTRL.enable, sets CTRL.hfnmiena = 0 and
	// CTRL.privdefena = 1.
	Disable()

	// WriteMair programs MAIR0 with this backend's fixed attribute
	// encodings. Init calls it once per bank; Install does not call it.
	WriteMair()

	// WriteRegion selects region i via RNR and writes its RBAR/RLAR pair.
	WriteRegion(i int, hw HwRegion)

	// Enable sets CTRL.enable = 1.
	Enable()
}
