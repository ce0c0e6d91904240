// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBackground(tt *testing.T) {
	testCases := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"#1a1a1a", color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}},
		{"#FF8000", color.RGBA{0xFF, 0x80, 0x00, 0xFF}},
		{"#fff", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range testCases {
		got, err := parseBackground(tc.in)
		if err != nil {
			tt.Errorf("in=%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			tt.Errorf("in=%q: got %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "black", "#gggggg", "1a1a1a"} {
		if _, err := parseBackground(in); !errors.Is(err, ErrBadBackgroundFlag) {
			tt.Errorf("in=%q: got %v, want %v", in, err, ErrBadBackgroundFlag)
		}
	}
}

const greenCircleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<circle cx="50" cy="50" r="40" fill="#00ff00"/>
</svg>`

func TestRunSVG(tt *testing.T) {
	dir := tt.TempDir()
	input := filepath.Join(dir, "logo.svg")
	if err := os.WriteFile(input, []byte(greenCircleSVG), 0666); err != nil {
		tt.Fatalf("os.WriteFile: %v", err)
	}
	output := filepath.Join(dir, "icons")

	stdout := &bytes.Buffer{}
	if err := run(stdout, input, output, "#204060", 256); err != nil {
		tt.Fatalf("run: %v", err)
	}
	if n := strings.Count(stdout.String(), "Generated: "); n != 17 {
		tt.Errorf("progress lines: got %d, want 17", n)
	}

	f, err := os.Open(filepath.Join(output, "icon-maskable-512x512.png"))
	if err != nil {
		tt.Fatalf("os.Open: %v", err)
	}
	defer f.Close()
	m, err := png.Decode(f)
	if err != nil {
		tt.Fatalf("png.Decode: %v", err)
	}
	if got, want := m.Bounds(), image.Rect(0, 0, 512, 512); got != want {
		tt.Fatalf("bounds: got %v, want %v", got, want)
	}
	bg := color.NRGBA{0x20, 0x40, 0x60, 0xFF}
	if got := color.NRGBAModel.Convert(m.At(5, 5)); got != bg {
		tt.Errorf("padding: got %v, want %v", got, bg)
	}
	if got := color.NRGBAModel.Convert(m.At(256, 256)).(color.NRGBA); (got.G != 0xFF) || (got.R != 0x00) {
		tt.Errorf("center: got %v, want green", got)
	}
}

func TestRunBadBackground(tt *testing.T) {
	dir := tt.TempDir()
	err := run(&bytes.Buffer{}, filepath.Join(dir, "logo.png"), dir, "nope", 0)
	if !errors.Is(err, ErrBadBackgroundFlag) {
		tt.Errorf("got %v, want %v", err, ErrBadBackgroundFlag)
	}
}
