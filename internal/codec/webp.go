// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"image"

	"github.com/chai2010/webp"
)

// WebPEncoder encodes images through libwebp via github.com/chai2010/webp.
// The zero value is ready to use.
type WebPEncoder struct{}

// Encode produces WebP bytes for img. The four quality/alpha combinations
// map onto the library's dedicated entry points so that opaque images are
// written without an alpha channel.
func (WebPEncoder) Encode(img image.Image, opts EncodeOptions) ([]byte, error) {
	switch {
	case opts.Lossless && opts.KeepAlpha:
		return webp.EncodeLosslessRGBA(img)
	case opts.Lossless:
		return webp.EncodeLosslessRGB(img)
	case opts.KeepAlpha:
		return webp.EncodeRGBA(img, float32(opts.Quality))
	default:
		return webp.EncodeRGB(img, float32(opts.Quality))
	}
}
