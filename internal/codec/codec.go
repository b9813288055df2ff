// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codec decodes source images and encodes WebP output.
package codec

import (
	"fmt"
	"image"
	_ "image/png" // registers the PNG decoder with image.Decode
	"os"
)

// EncodeOptions controls a single WebP encode.
type EncodeOptions struct {
	// Quality is the lossy quality, 0-100. Ignored when Lossless is set.
	Quality int

	// Lossless selects lossless compression.
	Lossless bool

	// KeepAlpha encodes an alpha channel in the output. Dropping it for
	// fully opaque images yields smaller files.
	KeepAlpha bool
}

// Encoder turns a decoded image into WebP bytes.
type Encoder interface {
	Encode(img image.Image, opts EncodeOptions) ([]byte, error)
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// HasAlpha reports whether img carries meaningful transparency, i.e. at
// least one pixel below full opacity.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
