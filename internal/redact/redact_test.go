// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package redact_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychoplath9450/SUMI/internal/redact"
)

// testImage fills a w x h image with a position-dependent non-black pattern
// so unintended writes are detectable at any pixel.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x%255) | 1, uint8(y%255) | 1, 200, 255})
		}
	}
	return img
}

func TestRedact_PresetRectangle(t *testing.T) {
	src := testImage(829, 1567)
	preset, ok := redact.LookupPreset("banner_right")
	require.True(t, ok)

	out := redact.Redact(src, []image.Rectangle{preset.Rect})

	black := color.RGBA{0, 0, 0, 255}
	for y := 0; y < 1567; y++ {
		for x := 0; x < 829; x++ {
			got := out.RGBAAt(x, y)
			inside := x >= 620 && x < 829 && y >= 102 && y < 125
			if inside {
				if got != black {
					t.Fatalf("pixel (%d,%d) inside rect = %v, want black", x, y, got)
				}
			} else if got != src.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) outside rect changed: %v != %v", x, y, got, src.RGBAAt(x, y))
			}
		}
	}
}

func TestRedact_HalfOpenBoundary(t *testing.T) {
	src := testImage(10, 10)
	out := redact.Redact(src, []image.Rectangle{image.Rect(2, 2, 5, 5)})

	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, black, out.RGBAAt(2, 2), "min corner is inside")
	assert.Equal(t, black, out.RGBAAt(4, 4), "last covered pixel is inside")
	assert.Equal(t, src.RGBAAt(5, 5), out.RGBAAt(5, 5), "max corner is outside")
	assert.Equal(t, src.RGBAAt(1, 2), out.RGBAAt(1, 2), "left neighbor untouched")
}

func TestRedact_DoesNotMutateInput(t *testing.T) {
	src := testImage(10, 10)
	want := src.RGBAAt(3, 3)

	_ = redact.Redact(src, []image.Rectangle{image.Rect(0, 0, 10, 10)})
	assert.Equal(t, want, src.RGBAAt(3, 3))
}

func TestResolvePresets(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("known preset on matching resolution", func(t *testing.T) {
		rects, err := redact.ResolvePresets([]string{"banner_right"}, 829, 1567, logger)
		require.NoError(t, err)
		assert.Equal(t, []image.Rectangle{image.Rect(620, 102, 829, 125)}, rects)
	})

	t.Run("resolution mismatch fails loudly", func(t *testing.T) {
		_, err := redact.ResolvePresets([]string{"banner_right"}, 640, 480, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "829x1567")
	})

	t.Run("unknown preset skipped, valid ones kept", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		rects, err := redact.ResolvePresets([]string{"nope", "banner_right"}, 829, 1567, log)
		require.NoError(t, err)
		assert.Len(t, rects, 1)
		assert.Contains(t, buf.String(), "unknown redaction preset")
	})

	t.Run("all presets unknown", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		_, err := redact.ResolvePresets([]string{"nope"}, 829, 1567, log)
		assert.Error(t, err)
	})
}

func TestFile_PNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "shot.png")
	outPath := filepath.Join(dir, "shot_redacted.png")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(829, 1567)))
	require.NoError(t, os.WriteFile(inPath, buf.Bytes(), 0o600))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	require.NoError(t, redact.File(inPath, outPath, nil, logger)) // default preset

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	black := color.RGBA{0, 0, 0, 255}
	r, g, b, a := img.At(700, 110).RGBA()
	assert.Equal(t, black, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
	rr, _, _, _ := img.At(0, 0).RGBA()
	assert.NotZero(t, rr, "pixel outside the region must keep its value")
}

func TestFile_Errors(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("missing input", func(t *testing.T) {
		err := redact.File(filepath.Join(dir, "absent.png"), filepath.Join(dir, "out.png"), nil, logger)
		assert.Error(t, err)
	})

	t.Run("unsupported output format", func(t *testing.T) {
		inPath := filepath.Join(dir, "in.png")
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, testImage(829, 1567)))
		require.NoError(t, os.WriteFile(inPath, buf.Bytes(), 0o600))

		err := redact.File(inPath, filepath.Join(dir, "out.gif"), nil, logger)
		assert.Error(t, err)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		inPath := filepath.Join(dir, "small.png")
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, testImage(64, 64)))
		require.NoError(t, os.WriteFile(inPath, buf.Bytes(), 0o600))

		err := redact.File(inPath, filepath.Join(dir, "out.png"), []string{"banner_right"}, logger)
		assert.Error(t, err)
	})
}

func TestPresets_AllTiedToPortalResolution(t *testing.T) {
	all := redact.Presets()
	require.NotEmpty(t, all)
	for _, p := range all {
		assert.Equal(t, 829, p.Width, "preset %s", p.Name)
		assert.Equal(t, 1567, p.Height, "preset %s", p.Name)
		assert.False(t, p.Rect.Empty(), "preset %s has empty rect", p.Name)
		assert.True(t, p.Rect.In(image.Rect(0, 0, p.Width, p.Height)), "preset %s exceeds bounds", p.Name)
	}
}
