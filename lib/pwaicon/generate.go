// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package pwaicon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pwakit/pwaicons/internal/logo"
)

const (
	DefaultInput  = "client/public/logo.png"
	DefaultOutDir = "client/public/icons"
)

// DoneMessage is printed after the last file has been written.
const DoneMessage = "\n✅ All PWA icons and splash screens generated successfully!"

// Generator writes every icon and splash screen for one logo. The zero value
// is valid and means to use the defaults: the package-level IconSizes,
// MaskableSize and Splashes, DefaultInput and DefaultOutDir, a black
// maskable background and no progress output.
//
// Generation stops at the first error. Files written before it stay in
// place.
type Generator struct {
	// Input is the logo path read by Run.
	Input string
	// OutDir is created if absent. It is never cleaned.
	OutDir string
	// SVGSize is passed to logo.Load.
	SVGSize int

	IconSizes          []int
	MaskableSize       int
	MaskableBackground color.Color
	Splashes           []SplashSpec

	// Progress, if non-nil, receives one "Generated: path" line per file
	// and DoneMessage at the end.
	Progress io.Writer
}

// Run creates the output directory, loads the logo and calls Generate.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.outDir(), 0755); err != nil {
		return err
	}
	input := g.Input
	if input == "" {
		input = DefaultInput
	}
	m, err := logo.Load(input, g.SVGSize)
	if err != nil {
		return err
	}
	return g.Generate(m)
}

// Generate writes every output derived from src into the output directory,
// which must already exist.
func (g *Generator) Generate(src image.Image) error {
	sizes := g.IconSizes
	if sizes == nil {
		sizes = IconSizes
	}
	for _, size := range sizes {
		m, err := Icon(src, size)
		if err != nil {
			return fmt.Errorf("icon %d: %w", size, err)
		}
		if err := g.write(IconName(size), m); err != nil {
			return err
		}
	}

	size := g.MaskableSize
	if size == 0 {
		size = MaskableSize
	}
	m, err := Maskable(src, size, g.MaskableBackground)
	if err != nil {
		return fmt.Errorf("maskable icon %d: %w", size, err)
	}
	if err := g.write(MaskableName(size), m); err != nil {
		return err
	}

	splashes := g.Splashes
	if splashes == nil {
		splashes = Splashes
	}
	for _, spec := range splashes {
		m, err := Splash(src, spec)
		if err != nil {
			return fmt.Errorf("splash %q: %w", spec.Name, err)
		}
		if err := g.write(spec.Filename(), m); err != nil {
			return err
		}
	}

	if g.Progress != nil {
		if _, err := fmt.Fprintln(g.Progress, DoneMessage); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) outDir() string {
	if g.OutDir == "" {
		return DefaultOutDir
	}
	return g.OutDir
}

func (g *Generator) write(name string, m image.Image) error {
	path := filepath.Join(g.outDir(), name)
	if err := writePNG(path, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if g.Progress != nil {
		if _, err := fmt.Fprintf(g.Progress, "Generated: %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// writePNG encodes m to a temporary file next to path and then renames it
// over path, so that path never holds a partially written image.
func writePNG(path string, m image.Image) (retErr error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".pwaicons-*.png")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if retErr != nil {
			os.Remove(tmp)
		}
	}()

	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
