// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !mpuv8

package mpu

// PMSAv7 MPU register addresses, fixed by the ARMv7-M System Control
// Space layout. These are part of the architecture's ABI, not a board
// choice, so they live alongside the translator rather than in
// board/ast1030.
const (
	mpuTypeAddr = 0xE000_ED90
	mpuCtrlAddr = 0xE000_ED94
	mpuRnrAddr  = 0xE000_ED98
	mpuRbarAddr = 0xE000_ED9C
	mpuRasrAddr = 0xE000_EDA0
)

// MPU_CTRL bit positions.
const (
	ctrlEnable     = 0
	ctrlHfnmiena   = 1
	ctrlPrivdefena = 2
)

// Bank is the privileged handle a Programmer uses to write region
// descriptors to the MPU. Its methods correspond one-to-one to the
// register writes Install performs; nothing outside this package holds
// one. HardwareBank is the only production implementation; tests supply
// their own in-memory fake.
type Bank interface {
	// NumRegions reports MPU_TYPE.dregion: the number of hardware region
	// slots this MPU implements.
	NumRegions() int

	// Disable clears CTRL.enable, sets CTRL.hfnmiena = 0 and
	// CTRL.privdefena = 1.
	Disable()

	// WriteRegion selects region i via RNR and writes its RBAR/RASR pair,
	// with RBAR.VALID left clear.
	WriteRegion(i int, hw HwRegion)

	// Enable sets CTRL.enable = 1.
	Enable()
}
