// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package sample draws a synthetic logo: a filled disc with a "P" glyph on
// it. Tests use it instead of checked-in fixture files, and res/gen-logo.go
// writes it out for trying the pwaicons command by hand.
package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var ErrBadArgument = errors.New("sample: bad argument")

// Disc is the fill colour of the logo's disc.
var Disc = color.RGBA{0xE0, 0x3E, 0x52, 0xFF}

// Logo returns a size×size logo. If transparent is false, the area outside
// the disc is opaque white instead of fully transparent.
func Logo(size int, transparent bool) (*image.RGBA, error) {
	if size < 8 {
		return nil, ErrBadArgument
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("opentype.Parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size) * 0.6,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype.NewFace: %w", err)
	}
	defer face.Close()

	m := image.NewRGBA(image.Rect(0, 0, size, size))
	if !transparent {
		draw.Draw(m, m.Bounds(), image.White, image.Point{}, draw.Src)
	}

	// The disc leaves a one-pixel-wide margin so that the corners stay
	// background-coloured.
	r := (size / 2) - 1
	r2 := r * r
	c := size / 2
	for y := 0; y < size; y++ {
		dy := y - c
		for x := 0; x < size; x++ {
			dx := x - c
			if (dx*dx)+(dy*dy) <= r2 {
				m.SetRGBA(x, y, Disc)
			}
		}
	}

	d := font.Drawer{
		Dst:  m,
		Src:  image.White,
		Face: face,
	}
	adv := d.MeasureString("P")
	d.Dot = fixed.Point26_6{
		X: fixed.I(c) - (adv / 2),
		Y: fixed.I((size * 72) / 100),
	}
	d.DrawString("P")

	return m, nil
}
