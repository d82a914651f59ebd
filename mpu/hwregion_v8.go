// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

// RbarAp is the PMSAv8 RBAR access-permission (AP) field.
type RbarAp uint8

const (
	RbarRwPrivileged RbarAp = 0b00
	RbarRwAny        RbarAp = 0b01
	RbarRoPrivileged RbarAp = 0b10
	RbarRoAny        RbarAp = 0b11
)

// RbarSh is the PMSAv8 RBAR shareability (SH) field.
type RbarSh uint8

const (
	ShNonShareable   RbarSh = 0b00
	ShOuterShareable RbarSh = 0b10
	ShInnerShareable RbarSh = 0b11
)

// RbarVal is the PMSAv8 MPU Region Base Address Register value.
type RbarVal uint32

// XN reports the RBAR.XN (execute-never) bit.
func (v RbarVal) XN() bool { return bitGet(uint32(v), 0) }

// AP returns the RBAR.AP access-permission field.
func (v RbarVal) AP() RbarAp { return RbarAp(bitGetN(uint32(v), 1, 0x3)) }

// SH returns the RBAR.SH shareability field.
func (v RbarVal) SH() RbarSh { return RbarSh(bitGetN(uint32(v), 3, 0x3)) }

// Addr returns the 32-byte-aligned base address field.
func (v RbarVal) Addr() uint32 { return uint32(v) &^ 0x1f }

func newRbarV8(base uint32, xn bool, ap RbarAp, sh RbarSh) RbarVal {
	var raw uint32
	bitSetTo(&raw, 0, xn)
	bitSetN(&raw, 1, 0x3, uint32(ap))
	bitSetN(&raw, 3, 0x3, uint32(sh))
	raw = (raw & 0x1f) | (base &^ 0x1f)
	return RbarVal(raw)
}

// RlarVal is the PMSAv8 MPU Region Limit Address Register value.
type RlarVal uint32

// Enable reports the RLAR.EN bit.
func (v RlarVal) Enable() bool { return bitGet(uint32(v), 0) }

// AttrIndx returns the RLAR.AttrIndx field, an index into MAIR0/MAIR1.
func (v RlarVal) AttrIndx() uint8 { return uint8(bitGetN(uint32(v), 1, 0x7)) }

// PXN reports the RLAR.PXN (privileged execute-never) bit.
func (v RlarVal) PXN() bool { return bitGet(uint32(v), 4) }

// Limit returns the 32-byte-aligned limit field. The addressed region
// extends through Limit()|0x1f inclusive.
func (v RlarVal) Limit() uint32 { return uint32(v) &^ 0x1f }

func newRlarV8(limit uint32, attrIndx uint8, pxn bool) RlarVal {
	var raw uint32
	bitSetTo(&raw, 0, true) // enable
	bitSetN(&raw, 1, 0x7, uint32(attrIndx))
	bitSetTo(&raw, 4, pxn)
	raw = (raw & 0x1f) | (limit &^ 0x1f)
	return RlarVal(raw)
}

// HwRegion is one PMSAv8 hardware region descriptor: the RBAR/RLAR pair
// the Programmer writes to the MPU for a single region slot. The zero
// value is the inert descriptor (RLAR.EN clear) an unused MemoryConfig
// slot holds.
type HwRegion struct {
	RBAR RbarVal
	RLAR RlarVal
}
