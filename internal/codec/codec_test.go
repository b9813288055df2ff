// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
)

// testImage builds a small gradient image, optionally with one
// semi-transparent pixel.
func testImage(transparent bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	if transparent {
		img.SetNRGBA(3, 3, color.NRGBA{R: 48, G: 48, B: 128, A: 128})
	}
	return img
}

// writePNG encodes img as PNG at path.
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	writePNG(t, path, testImage(false))

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 16 || got.Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", got)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not a png at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(path); err == nil {
		t.Error("expected error for corrupt input")
	}
}

func TestDecode_Missing(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHasAlpha(t *testing.T) {
	tests := []struct {
		name        string
		transparent bool
		want        bool
	}{
		{"fully opaque", false, false},
		{"semi-transparent pixel", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Round-trip through the PNG codec so the check runs against
			// what Decode actually returns.
			path := filepath.Join(t.TempDir(), "img.png")
			writePNG(t, path, testImage(tt.transparent))
			img, err := Decode(path)
			if err != nil {
				t.Fatal(err)
			}

			if got := HasAlpha(img); got != tt.want {
				t.Errorf("HasAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWebPEncoder_LosslessIgnoresQuality(t *testing.T) {
	enc := WebPEncoder{}
	img := testImage(true)

	low, err := enc.Encode(img, EncodeOptions{Quality: 10, Lossless: true, KeepAlpha: true})
	if err != nil {
		t.Fatalf("encode at quality 10: %v", err)
	}
	high, err := enc.Encode(img, EncodeOptions{Quality: 90, Lossless: true, KeepAlpha: true})
	if err != nil {
		t.Fatalf("encode at quality 90: %v", err)
	}

	if !bytes.Equal(low, high) {
		t.Error("lossless output should not depend on the quality setting")
	}
}

func TestWebPEncoder_AlphaRoundTrip(t *testing.T) {
	enc := WebPEncoder{}
	data, err := enc.Encode(testImage(true), EncodeOptions{Lossless: true, KeepAlpha: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if !HasAlpha(decoded) {
		t.Error("transparency should survive the round trip")
	}
}

func TestWebPEncoder_OpaqueDropsAlpha(t *testing.T) {
	enc := WebPEncoder{}
	data, err := enc.Encode(testImage(false), EncodeOptions{Quality: 85})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if HasAlpha(decoded) {
		t.Error("opaque input should produce output without transparency")
	}
}
