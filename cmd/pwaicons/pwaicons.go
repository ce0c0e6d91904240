// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// pwaicons generates Progressive Web App icons and splash screens from a
// single logo image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pwakit/pwaicons/internal/logo"
	"github.com/pwakit/pwaicons/lib/pwaicon"
)

var (
	inputFlag      = flag.String("input", pwaicon.DefaultInput, "path to the source logo")
	outputFlag     = flag.String("output", pwaicon.DefaultOutDir, "output directory")
	backgroundFlag = flag.String("maskable-background", "#000000", "maskable icon background color")
	svgSizeFlag    = flag.Int("svg-size", logo.DefaultSVGSize, "rasterization size for SVG logos")
)

const usageStr = `pwaicons generates Progressive Web App icons and splash screens.

Usage:

    pwaicons [flags]

With no flags, it reads client/public/logo.png and writes into
client/public/icons (created if absent, existing files overwritten):

    icon-{size}x{size}.png       for size in 72 96 128 144 152 192 384 512
    icon-maskable-512x512.png    the logo inset 20% on a filled square
    splash-{device}.png          for device in iphone5 iphone6 iphone6plus
                                 iphonex iphonexsmax iphonexr iphone12
                                 iphone12promax

Flags:

    -input=path                  the source logo (BMP, GIF, JPEG, PNG, SVG,
                                 TIFF or WEBP)
    -output=dir                  the output directory
    -maskable-background=#rrggbb the maskable icon's background color
    -svg-size=n                  the size to rasterize an SVG logo at
`

var ErrBadBackgroundFlag = errors.New("main: bad -maskable-background flag")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	if flag.NArg() != 0 {
		return errors.New("unexpected arguments; pwaicons takes only flags")
	}
	return run(os.Stdout, *inputFlag, *outputFlag, *backgroundFlag, *svgSizeFlag)
}

func run(w io.Writer, input string, output string, background string, svgSize int) error {
	bg, err := parseBackground(background)
	if err != nil {
		return err
	}
	g := &pwaicon.Generator{
		Input:              input,
		OutDir:             output,
		SVGSize:            svgSize,
		MaskableBackground: bg,
		Progress:           w,
	}
	return g.Run()
}

func parseBackground(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadBackgroundFlag, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}, nil
}
