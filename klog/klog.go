// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package klog provides a minimal, write-only, line-oriented logging sink
// for kernel code, with explicit debug/info/error levels. It exists so
// that the memory-protection core can report what it is doing (which
// regions it translated, which descriptors it wrote to hardware) without
// taking a hard dependency on any particular console or transport — the
// transport is an external collaborator, supplied as any io.Writer.
package klog

import (
	"io"
	"log"
)

// Sink is anything that can receive formatted log lines. A board's UART
// console driver, a ring buffer, or io.Discard all satisfy it.
type Sink = io.Writer

// Logger formats leveled, single-line records and writes them to a Sink.
type Logger struct {
	debug *log.Logger
	info  *log.Logger
	err   *log.Logger
}

// New returns a Logger that writes to sink. A nil sink discards all
// output, so callers that have no console attached yet can still obtain a
// usable Logger.
func New(sink Sink) *Logger {
	if sink == nil {
		sink = io.Discard
	}

	return &Logger{
		debug: log.New(sink, "DEBUG ", 0),
		info:  log.New(sink, "INFO  ", 0),
		err:   log.New(sink, "ERROR ", 0),
	}
}

// Discard is a Logger that drops every record, for callers that must pass
// a Logger but have nothing to attach it to yet.
var Discard = New(nil)

// Debugf emits a debug-level line.
func (l *Logger) Debugf(format string, args ...any) {
	l.safe().debug.Printf(format, args...)
}

// Infof emits an info-level line.
func (l *Logger) Infof(format string, args ...any) {
	l.safe().info.Printf(format, args...)
}

// Errorf emits an error-level line.
func (l *Logger) Errorf(format string, args ...any) {
	l.safe().err.Printf(format, args...)
}

func (l *Logger) safe() *Logger {
	if l == nil {
		return Discard
	}
	return l
}
