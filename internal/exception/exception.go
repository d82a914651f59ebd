// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package exception reports contract violations detected at runtime — MPU
// register-bank misuse treated as a programming error rather
// than a recoverable condition (installing against hardware that reports
// zero region slots). It prints
// the call site before panicking, since on bare metal there is no
// debugger attached by default to recover that information after the
// fact.
package exception

import "runtime"

// Throw panics after printing the file and line of its caller, so the
// reported location is the site that detected the violation
// rather than Throw itself.
func Throw(reason string) {
	pc, _, _, ok := runtime.Caller(1)
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			file, line := fn.FileLine(pc)
			print("\t", file, ":", line, ": ", reason, "\n")
		}
	}

	panic("mpu: contract violation: " + reason)
}
