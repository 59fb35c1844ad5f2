// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psychoplath9450/SUMI/internal/settings"
)

func TestGenerateTypeScript_Interfaces(t *testing.T) {
	out := settings.GenerateTypeScript(settings.DefaultSchema(), testTime)

	assert.Contains(t, out, "export interface DisplaySettings {")
	assert.Contains(t, out, "  orientation: number;")
	assert.Contains(t, out, "  showStatusBar: boolean;")
	// Both numeric types collapse to number, strings stay strings.
	assert.Contains(t, out, "  latitude: number;")
	assert.Contains(t, out, "  location: string;")
	// Descriptions become doc comments.
	assert.Contains(t, out, "/** Font size in pixels */")
}

func TestGenerateTypeScript_AggregateShape(t *testing.T) {
	out := settings.GenerateTypeScript(settings.DefaultSchema(), testTime)

	idx := strings.Index(out, "export interface SumiSettings {")
	assert.GreaterOrEqual(t, idx, 0)
	aggregate := out[idx:]
	for _, field := range []string{
		"display: DisplaySettings;",
		"reader: ReaderSettings;",
		"flashcards: FlashcardsSettings;",
		"weather: WeatherSettings;",
		"bluetooth: BluetoothSettings;",
	} {
		assert.Contains(t, aggregate, field)
	}
}

func TestGenerateTypeScript_PreservesOrder(t *testing.T) {
	out := settings.GenerateTypeScript(settings.DefaultSchema(), testTime)

	last := -1
	for _, marker := range []string{
		"interface DisplaySettings",
		"interface ReaderSettings",
		"interface FlashcardsSettings",
		"interface WeatherSettings",
		"interface BluetoothSettings",
		"interface SumiSettings",
	} {
		idx := strings.Index(out, marker)
		assert.Greater(t, idx, last, "%s emitted out of order", marker)
		last = idx
	}
}
