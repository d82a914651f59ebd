// https://github.com/coreguard/mpukernel
//
// Copyright (c) The Coreguard Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mpu

import "errors"

// ErrRegionTooLarge is returned when a requested range exceeds the 2 GiB
// upper bound a PMSAv7/v8 region can be built to cover, or otherwise
// cannot be represented by any legal aligned hardware region.
var ErrRegionTooLarge = errors.New("mpu: requested region exceeds translator limits")

// ErrTooManyRegions is returned when a source MemoryRegion list is longer
// than the number of hardware regions the target MPU supports.
var ErrTooManyRegions = errors.New("mpu: region list exceeds available MPU regions")
