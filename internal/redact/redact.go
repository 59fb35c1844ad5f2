// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package redact

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const jpegQuality = 95

// Redact returns a copy of img with every rectangle filled opaque black.
// Pixels outside the rectangles are copied unchanged.
func Redact(img image.Image, rects []image.Rectangle) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	for _, r := range rects {
		draw.Draw(out, r.Intersect(out.Bounds()), image.NewUniform(color.Black), image.Point{}, draw.Src)
	}
	return out
}

// ResolvePresets maps preset names to redaction rectangles for an image of
// the given size. Unknown names are logged and skipped; a preset measured on
// a different resolution is an error so a mismatched screenshot is never
// silently mis-redacted.
func ResolvePresets(names []string, width, height int, logger *slog.Logger) ([]image.Rectangle, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var rects []image.Rectangle
	for _, name := range names {
		p, ok := LookupPreset(name)
		if !ok {
			logger.Warn("unknown redaction preset, skipping", "preset", name)
			continue
		}
		if p.Width != width || p.Height != height {
			return nil, fmt.Errorf("preset %q expects a %dx%d screenshot, got %dx%d",
				name, p.Width, p.Height, width, height)
		}
		rects = append(rects, p.Rect)
	}
	if len(rects) == 0 {
		return nil, fmt.Errorf("no valid presets among %v", names)
	}
	return rects, nil
}

// File reads an image, applies the named presets (DefaultPreset when names is
// empty), and writes the redacted result. The output format follows the
// output filename extension (.png, .jpg, .jpeg).
func File(inPath, outPath string, names []string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if len(names) == 0 {
		names = []string{DefaultPreset}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inPath, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", inPath, err)
	}

	bounds := img.Bounds()
	rects, err := ResolvePresets(names, bounds.Dx(), bounds.Dy(), logger)
	if err != nil {
		return err
	}

	redacted := Redact(img, rects)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(out, redacted, &jpeg.Options{Quality: jpegQuality})
	case ".png", "":
		err = png.Encode(out, redacted)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(outPath))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	logger.Info("redacted screenshot", "input", inPath, "output", outPath, "regions", len(rects))
	return nil
}
