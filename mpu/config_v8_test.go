// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build mpuv8

package mpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coreguard/mpukernel/board/ast1030"
	"github.com/coreguard/mpukernel/klog"
)

func TestNewMemoryConfigTooManyRegionsV8(t *testing.T) {
	list := make([]MemoryRegion, ast1030.NumMPURegions+1)
	for i := range list {
		list[i] = NewMemoryRegion(ReadOnlyData, uint32(i*0x1000), uint32(i*0x1000+0x100))
	}

	if _, err := NewMemoryConfig(list); err != ErrTooManyRegions {
		t.Fatalf("got err = %v, want ErrTooManyRegions", err)
	}
}

func TestMemoryConfigRangeHasAccessV8(t *testing.T) {
	cfg, err := NewMemoryConfig([]MemoryRegion{
		NewMemoryRegion(ReadWriteData, 0x2000_0000, 0x2000_1000),
		NewMemoryRegion(ReadOnlyExecutable, 0x0800_0000, 0x0800_4000),
	})
	if err != nil {
		t.Fatalf("NewMemoryConfig: %v", err)
	}

	if !cfg.RangeHasAccess(ReadWriteData, 0x2000_0100, 0x2000_0200) {
		t.Error("expected write access within the RAM region")
	}
	if cfg.RangeHasAccess(ReadWriteData, 0x0800_0100, 0x0800_0200) {
		t.Error("expected no write access within the read-only flash region")
	}
}

func TestMemoryConfigDumpV8(t *testing.T) {
	cfg, err := NewMemoryConfig([]MemoryRegion{
		NewMemoryRegion(ReadWriteData, 0x2000_0000, 0x2000_0100),
	})
	if err != nil {
		t.Fatalf("NewMemoryConfig: %v", err)
	}

	var buf bytes.Buffer
	cfg.Dump(klog.New(&buf))

	out := buf.String()
	if !strings.Contains(out, "region 0") {
		t.Errorf("Dump output missing translated region line: %q", out)
	}
	if !strings.Contains(out, "ReadWriteData") {
		t.Errorf("Dump output missing source region line: %q", out)
	}
}
