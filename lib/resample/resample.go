// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package resample scales images to exact pixel dimensions.
//
// The filter is the three-lobed Lanczos windowed sinc, the usual choice for
// downscaling photographic or anti-aliased artwork such as logos. Aspect
// ratio is not preserved: the caller asks for a width and height and gets
// exactly that.
package resample

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
)

var ErrBadArgument = errors.New("resample: bad argument")

// Lanczos3 is a draw.Kernel for the Lanczos filter with a support of 3.
var Lanczos3 = &draw.Kernel{
	Support: 3,
	At:      lanczos3,
}

func lanczos3(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t >= 3 {
		return 0
	}
	return sinc(t) * sinc(t/3)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// Resize returns src scaled to exactly w×h pixels. The result's bounds start
// at the origin.
func Resize(src image.Image, w int, h int) (*image.RGBA, error) {
	if (w <= 0) || (h <= 0) || (src == nil) {
		return nil, ErrBadArgument
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, ErrBadArgument
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Lanczos3.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}

// Square is Resize with equal width and height.
func Square(src image.Image, size int) (*image.RGBA, error) {
	return Resize(src, size, size)
}
