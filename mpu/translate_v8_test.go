// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

import "testing"

func TestAlignRegionV8(t *testing.T) {
	cases := []struct {
		name       string
		start, end uint32
		base       uint32
		limit      uint32
	}{
		{"already aligned", 0x2000_0000, 0x2000_0020, 0x2000_0000, 0x2000_001F},
		{"unaligned start and end", 0x2000_0001, 0x2000_0021, 0x2000_0000, 0x2000_003F},
		{"end one byte short of a granule boundary", 0x2000_0000, 0x2000_001F, 0x2000_0000, 0x2000_001F},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			base, limit, err := alignRegionV8(c.start, c.end)
			if err != nil {
				t.Fatalf("alignRegionV8(%#x, %#x): unexpected error: %v", c.start, c.end, err)
			}
			if base != c.base {
				t.Errorf("base = %#x, want %#x", base, c.base)
			}
			if limit != c.limit {
				t.Errorf("limit = %#x, want %#x", limit, c.limit)
			}
			if base > c.start {
				t.Errorf("base %#x must not exceed start %#x", base, c.start)
			}
			if uint64(limit)+1 < uint64(c.end) {
				t.Errorf("limit %#x does not cover end %#x", limit, c.end)
			}
		})
	}
}

func TestAlignRegionV8TooLarge(t *testing.T) {
	if _, _, err := alignRegionV8(0, 0x8000_0001); err != ErrRegionTooLarge {
		t.Fatalf("got err = %v, want ErrRegionTooLarge", err)
	}
}

func TestTranslateV8(t *testing.T) {
	region := NewMemoryRegion(ReadWriteData, 0x2000_0001, 0x2000_0021)

	hw, err := TranslateV8(region)
	if err != nil {
		t.Fatalf("TranslateV8: unexpected error: %v", err)
	}

	if !hw.RLAR.Enable() {
		t.Error("RLAR.Enable() = false, want true")
	}
	if hw.RBAR.Addr() != 0x2000_0000 {
		t.Errorf("RBAR.Addr() = %#x, want %#x", hw.RBAR.Addr(), 0x2000_0000)
	}
	if hw.RLAR.AttrIndx() != attrIndxNormal {
		t.Errorf("RLAR.AttrIndx() = %d, want %d", hw.RLAR.AttrIndx(), attrIndxNormal)
	}
	if hw.RBAR.AP() != RbarRwAny {
		t.Errorf("RBAR.AP() = %v, want RbarRwAny", hw.RBAR.AP())
	}
}

func TestTranslateV8DeviceRegion(t *testing.T) {
	region := NewMemoryRegion(Device, 0x4000_0000, 0x4000_1000)

	hw, err := TranslateV8(region)
	if err != nil {
		t.Fatalf("TranslateV8: unexpected error: %v", err)
	}

	if hw.RLAR.AttrIndx() != attrIndxDevice {
		t.Errorf("RLAR.AttrIndx() = %d, want %d", hw.RLAR.AttrIndx(), attrIndxDevice)
	}
	if !hw.RBAR.XN() {
		t.Error("Device region must be execute-never")
	}
}
