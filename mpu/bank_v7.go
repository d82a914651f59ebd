// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm && !mpuv8

package mpu

import (
	"github.com/coreguard/mpukernel/internal/reg"
)

// HardwareBank is the live PMSAv7 MPU register bank, addressed through
// internal/reg the same way the board's other SoC driver code addresses
// peripheral registers.
type HardwareBank struct{}

// NumRegions reads MPU_TYPE.dregion.
func (HardwareBank) NumRegions() int {
	return int(reg.Get(mpuTypeAddr, 8, 0xff))
}

// Disable implements Bank.
func (HardwareBank) Disable() {
	reg.Clear(mpuCtrlAddr, ctrlEnable)
	reg.Clear(mpuCtrlAddr, ctrlHfnmiena)
	reg.Set(mpuCtrlAddr, ctrlPrivdefena)
}

// WriteRegion implements Bank.
func (HardwareBank) WriteRegion(i int, hw HwRegion) {
	reg.SetN(mpuRnrAddr, 0, 0xff, uint32(i))
	reg.Write(mpuRbarAddr, hw.RBAR.Addr())
	reg.Write(mpuRasrAddr, uint32(hw.RASR))
}

// Enable implements Bank.
func (HardwareBank) Enable() {
	reg.Set(mpuCtrlAddr, ctrlEnable)
}
