// Copyright 2025 The Pwaicons Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

package main

// gen-logo writes a sample 1024×1024 logo.png (with a transparent
// background) to the current directory, for trying out the pwaicons command:
//
//	mkdir -p client/public
//	(cd client/public && go run ../../res/gen-logo.go)
//	go run ./cmd/pwaicons

import (
	"fmt"
	"image/png"
	"os"

	"github.com/pwakit/pwaicons/internal/sample"
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	m, err := sample.Logo(1024, true)
	if err != nil {
		return fmt.Errorf("sample.Logo: %w", err)
	}
	f, err := os.Create("logo.png")
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, m); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return f.Close()
}
