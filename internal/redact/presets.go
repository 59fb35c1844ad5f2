// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

// Package redact blacks out rectangular regions of portal screenshots so
// network names and addresses never land in the documentation.
package redact

import "image"

// Preset is a named redaction region tied to the screenshot resolution it was
// measured on. Rectangles use the half-open [x0,x1) x [y0,y1) convention of
// image.Rect.
type Preset struct {
	Name   string
	Rect   image.Rectangle
	Width  int
	Height int
}

// portalW/portalH is the resolution every current preset was measured on.
const (
	portalW = 829
	portalH = 1567
)

// presets lists the known regions of portal screenshots, in display order.
var presets = []Preset{
	{Name: "banner_right", Rect: image.Rect(620, 102, 829, 125), Width: portalW, Height: portalH},
	{Name: "wifi_network_1", Rect: image.Rect(207, 633, 310, 660), Width: portalW, Height: portalH},
	{Name: "wifi_network_2", Rect: image.Rect(207, 678, 310, 705), Width: portalW, Height: portalH},
	{Name: "banner_ssid", Rect: image.Rect(350, 166, 450, 190), Width: portalW, Height: portalH},
	{Name: "banner_ip", Rect: image.Rect(580, 166, 680, 190), Width: portalW, Height: portalH},
	{Name: "connection_ssid", Rect: image.Rect(350, 525, 530, 560), Width: portalW, Height: portalH},
	{Name: "connection_ip", Rect: image.Rect(370, 690, 475, 720), Width: portalW, Height: portalH},
}

// DefaultPreset is applied when the caller names none.
const DefaultPreset = "banner_right"

// Presets returns all known presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
