// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !mpuv8

package mpu

// RasrAp is the PMSAv7 RASR access-permission (AP) field.
type RasrAp uint8

// RASR AP encodings (Table B3-8, ARMv7-M Architecture Reference Manual).
const (
	RasrNoAccess RasrAp = 0b000
	RasrRwPriv   RasrAp = 0b001
	RasrRoPriv   RasrAp = 0b010
	RasrRwAny    RasrAp = 0b011
	RasrRoAny    RasrAp = 0b110
)

// RbarVal is the PMSAv7 MPU Region Base Address Register value.
type RbarVal uint32

// Valid reports the RBAR.VALID bit (region selected by RBAR.REGION rather
// than the previously written RNR).
func (v RbarVal) Valid() bool { return bitGet(uint32(v), 4) }

// Region returns the RBAR.REGION field, meaningful only when Valid().
func (v RbarVal) Region() uint8 { return uint8(bitGetN(uint32(v), 0, 0xf)) }

// Addr returns the 27-bit region base address field (bits [31:5]).
func (v RbarVal) Addr() uint32 { return uint32(v) &^ 0x1f }

func newRbarV7(addr uint32) RbarVal {
	var raw uint32
	bitSetTo(&raw, 4, false) // region selected by RNR, not RBAR.REGION
	raw = (raw &^ 0x1f) | (addr &^ 0x1f)
	return RbarVal(raw)
}

// RasrVal is the PMSAv7 MPU Region Attribute and Size Register value.
type RasrVal uint32

// Enable reports the RASR.ENABLE bit.
func (v RasrVal) Enable() bool { return bitGet(uint32(v), 0) }

// Size returns the RASR.SIZE field. Region size is 2^(SIZE+1) bytes.
func (v RasrVal) Size() uint8 { return uint8(bitGetN(uint32(v), 1, 0x1f)) }

// SRD returns the RASR.SRD sub-region-disable field.
func (v RasrVal) SRD() uint8 { return uint8(bitGetN(uint32(v), 8, 0xff)) }

// B reports the RASR.B (bufferable) bit.
func (v RasrVal) B() bool { return bitGet(uint32(v), 16) }

// C reports the RASR.C (cacheable) bit.
func (v RasrVal) C() bool { return bitGet(uint32(v), 17) }

// S reports the RASR.S (shareable) bit.
func (v RasrVal) S() bool { return bitGet(uint32(v), 18) }

// TEX returns the RASR.TEX (type extension) field.
func (v RasrVal) TEX() uint8 { return uint8(bitGetN(uint32(v), 19, 0x7)) }

// AP returns the RASR.AP access-permission field.
func (v RasrVal) AP() RasrAp { return RasrAp(bitGetN(uint32(v), 24, 0x7)) }

// XN reports the RASR.XN (execute-never) bit.
func (v RasrVal) XN() bool { return bitGet(uint32(v), 28) }

type rasrAttrs struct {
	xn      bool
	tex     uint8
	s, c, b bool
	ap      RasrAp
}

func newRasrV7(sizeField, srd uint8, a rasrAttrs) RasrVal {
	var raw uint32

	bitSetTo(&raw, 0, true) // enable
	bitSetN(&raw, 1, 0x1f, uint32(sizeField))
	bitSetN(&raw, 8, 0xff, uint32(srd))
	bitSetTo(&raw, 16, a.b)
	bitSetTo(&raw, 17, a.c)
	bitSetTo(&raw, 18, a.s)
	bitSetN(&raw, 19, 0x7, uint32(a.tex))
	bitSetN(&raw, 24, 0x7, uint32(a.ap))
	bitSetTo(&raw, 28, a.xn)

	return RasrVal(raw)
}

// HwRegion is one PMSAv7 hardware region descriptor: the RBAR/RASR pair
// the Programmer writes to the MPU for a single region slot. The zero
// value is the inert descriptor (ENABLE clear) an unused MemoryConfig slot
// holds.
type HwRegion struct {
	RBAR RbarVal
	RASR RasrVal
}
