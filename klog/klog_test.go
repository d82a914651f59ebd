// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package klog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debugf("region %d base=%#x", 0, 0x2000_0000)
	l.Infof("programming %d regions", 8)
	l.Errorf("translate failed: %v", "too large")

	out := buf.String()

	for _, want := range []string{"DEBUG", "INFO", "ERROR", "region 0 base=0x20000000", "programming 8 regions", "translate failed: too large"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got:\n%s", want, out)
		}
	}
}

func TestNilSinkDiscards(t *testing.T) {
	l := New(nil)
	// must not panic
	l.Debugf("dropped")
	l.Infof("dropped")
	l.Errorf("dropped")
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	// must not panic, falls back to Discard
	l.Debugf("dropped")
	l.Infof("dropped")
	l.Errorf("dropped")
}
