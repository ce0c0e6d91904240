// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package pwaicon renders the icon and splash screen images that a
// Progressive Web App manifest refers to, all derived from a single logo.
//
// There are three kinds of output:
//   - plain icons: the logo resized to a square,
//   - the maskable icon: the logo inset within a padded, filled square, so
//     that a platform's mask shape (circle, squircle, etc) does not clip it,
//   - splash screens: the logo centered (and nudged upwards) on a dark
//     vertical gradient, one per target device resolution.
//
// None of them preserve the logo's aspect ratio. Every resize is to exact
// target dimensions.
package pwaicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/pwakit/pwaicons/lib/resample"
	"golang.org/x/image/draw"
)

var ErrBadArgument = errors.New("pwaicon: bad argument")

// IconSizes are the edge lengths, in pixels, of the plain icons.
var IconSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// MaskableSize is the edge length of the maskable icon.
const MaskableSize = 512

// SplashSpec is a splash screen's target resolution and device label. The
// label becomes part of the output filename.
type SplashSpec struct {
	Width  int
	Height int
	Name   string
}

// Splashes are the iOS device resolutions that get a splash screen.
var Splashes = []SplashSpec{
	{640, 1136, "iphone5"},
	{750, 1334, "iphone6"},
	{1242, 2208, "iphone6plus"},
	{1125, 2436, "iphonex"},
	{1242, 2688, "iphonexsmax"},
	{828, 1792, "iphonexr"},
	{1170, 2532, "iphone12"},
	{1284, 2778, "iphone12promax"},
}

// IconName returns the output filename of the size×size plain icon.
func IconName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// MaskableName returns the output filename of the size×size maskable icon.
func MaskableName(size int) string {
	return fmt.Sprintf("icon-maskable-%dx%d.png", size, size)
}

// Filename returns the output filename of the splash screen.
func (s SplashSpec) Filename() string {
	return "splash-" + s.Name + ".png"
}

// Icon returns the logo resized to size×size.
func Icon(logo image.Image, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrBadArgument
	}
	return resample.Square(logo, size)
}

// MaskablePadding returns the per-side padding of a size×size maskable icon:
// 20% of size, rounded down.
func MaskablePadding(size int) int {
	return int(float64(size) * 0.2)
}

// Maskable returns a size×size opaque square of bg with the logo resized to
// fill everything inside MaskablePadding(size). A nil bg means black.
func Maskable(logo image.Image, size int, bg color.Color) (*image.RGBA, error) {
	pad := MaskablePadding(size)
	inner := size - (2 * pad)
	if (size <= 0) || (inner <= 0) {
		return nil, ErrBadArgument
	}
	if bg == nil {
		bg = color.Black
	}

	m := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(m, m.Bounds(), image.NewUniform(opaque(bg)), image.Point{}, draw.Src)

	resized, err := resample.Square(logo, inner)
	if err != nil {
		return nil, err
	}
	paste(m, resized, image.Pt(pad, pad))
	return m, nil
}

// GradientGray returns the gray level of row y of a splash screen of height
// h. It fades from 26 (0x1A) at the top towards 70% of that at the bottom.
func GradientGray(y int, h int) uint8 {
	return uint8(26 * (1 - (float64(y)/float64(h))*0.3))
}

// SplashLogoRect returns where the logo goes on a w×h splash screen: a square
// a quarter of the shorter side, horizontally centered and vertically
// centered then raised by a quarter of its own size.
func SplashLogoRect(w int, h int) image.Rectangle {
	s := min(w, h) / 4
	x := (w - s) / 2
	y := ((h - s) / 2) - (s / 4)
	return image.Rect(x, y, x+s, y+s)
}

// Splash returns the splash screen for spec.
func Splash(logo image.Image, spec SplashSpec) (*image.RGBA, error) {
	w, h := spec.Width, spec.Height
	if (min(w, h) < 4) || (spec.Name == "") {
		return nil, ErrBadArgument
	}

	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		g := GradientGray(y, h)
		row := m.Pix[y*m.Stride : (y*m.Stride)+(4*w)]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = g
			row[i+1] = g
			row[i+2] = g
			row[i+3] = 0xFF
		}
	}

	r := SplashLogoRect(w, h)
	resized, err := resample.Square(logo, r.Dx())
	if err != nil {
		return nil, err
	}
	paste(m, resized, r.Min)
	return m, nil
}

// paste composites src over dst with src's top-left corner at p. src's alpha
// channel is the mask; an opaque src simply replaces the covered pixels.
func paste(dst *image.RGBA, src image.Image, p image.Point) {
	sb := src.Bounds()
	draw.Draw(dst, sb.Sub(sb.Min).Add(p), src, sb.Min, draw.Over)
}

func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xFF
	return n
}
