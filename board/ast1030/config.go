// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package ast1030 provides the static target configuration for the ASPEED
// AST1030 Cortex-M4 BMC SoC, the reference target for the PMSAv7 memory
// protection core.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=arm` as
// supported by a TamaGo-derived framework for bare metal Go on Cortex-M
// SoCs.
package ast1030

const (
	// NumMPURegions is the number of regions supported by the AST1030's
	// Cortex-M4 MPU (PMSAv7, 8 regions).
	NumMPURegions = 8

	// SysTickHz is the SysTick clock frequency in Hz used for QEMU
	// emulation of the ast1030-evb machine (LM3S6965EVB compatible
	// clock). Real AST1030 hardware runs its SysTick at 200 MHz; this
	// core never reads this constant, it is carried only because the
	// build-time target configuration struct bundles it alongside
	// NumMPURegions.
	SysTickHz = 12_000_000
)
