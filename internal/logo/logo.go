// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package logo loads the source logo that every generated asset is derived
// from.
//
// Raster formats are sniffed from the file contents: BMP, GIF, JPEG, PNG,
// TIFF and WEBP. A path ending in ".svg" is parsed as SVG and rasterized to
// a square of a caller-chosen size.
package logo

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultSVGSize is the rasterization size for SVG logos. It is at least as
// large as the largest generated icon.
const DefaultSVGSize = 1024

var (
	ErrBadArgument = errors.New("logo: bad argument")
	ErrEmptyImage  = errors.New("logo: empty image")
)

// Load reads and decodes the logo at path. svgSize is only used for SVG
// input; zero means DefaultSVGSize.
func Load(path string, svgSize int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m image.Image
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		m, err = DecodeSVG(f, svgSize)
	} else {
		m, err = Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode decodes a raster logo from r.
func Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if m.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return m, nil
}

// DecodeSVG parses an SVG document from r and rasterizes it to a size×size
// image with a transparent background. Zero size means DefaultSVGSize.
func DecodeSVG(r io.Reader, size int) (*image.RGBA, error) {
	if size == 0 {
		size = DefaultSVGSize
	} else if size < 0 {
		return nil, ErrBadArgument
	}

	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	m := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, m, m.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return m, nil
}
