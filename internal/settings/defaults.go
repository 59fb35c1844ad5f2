// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

// num is a shorthand for bound literals in the schema below.
func num(v float64) *float64 { return &v }

// DefaultSchema returns the settings schema shipped with the firmware.
// Bump Version whenever the shape of any group changes.
func DefaultSchema() *Schema {
	return &Schema{
		Version: 3,
		Groups: []Group{
			{
				Name:        "display",
				Description: "Display and UI settings",
				Settings: []Setting{
					{Name: "orientation", Type: TypeInt, Default: 1, Min: num(0), Max: num(1),
						Description: "Screen orientation (0=landscape, 1=portrait)"},
					{Name: "sleepMinutes", Type: TypeInt, Default: 15, Min: num(0), Max: num(120),
						Description: "Minutes of inactivity before sleep (0=disabled)"},
					{Name: "fullRefreshPages", Type: TypeInt, Default: 10, Min: num(0), Max: num(50),
						Description: "Pages between full display refreshes"},
					{Name: "buttonShape", Type: TypeInt, Default: 0, Min: num(0), Max: num(2),
						Description: "Home screen button shape (0=rounded, 1=pill, 2=square)"},
					{Name: "bgTheme", Type: TypeInt, Default: 0, Min: num(0), Max: num(3),
						Description: "Background theme (0=light, 1=gray, 2=sepia, 3=dark)"},
					{Name: "showStatusBar", Type: TypeBool, Default: true,
						Description: "Show status bar on home screen"},
					{Name: "showBatteryHome", Type: TypeBool, Default: true,
						Description: "Show battery indicator on home screen"},
					{Name: "showClockHome", Type: TypeBool, Default: true,
						Description: "Show clock on home screen"},
					{Name: "invertColors", Type: TypeBool, Default: false,
						Description: "Invert display colors (dark mode)"},
					{Name: "hItemsPerRow", Type: TypeInt, Default: 4, Min: num(3), Max: num(5),
						Description: "Items per row in landscape mode"},
					{Name: "vItemsPerRow", Type: TypeInt, Default: 2, Min: num(2), Max: num(3),
						Description: "Items per row in portrait mode"},
				},
			},
			{
				Name:        "reader",
				Description: "E-book reader settings",
				Settings: []Setting{
					{Name: "fontSize", Type: TypeInt, Default: 18, Min: num(12), Max: num(32),
						Description: "Font size in pixels"},
					{Name: "lineHeight", Type: TypeInt, Default: 150, Min: num(100), Max: num(200),
						Description: "Line height percentage"},
					{Name: "margins", Type: TypeInt, Default: 20, Min: num(5), Max: num(50),
						Description: "Page margins in pixels"},
					{Name: "textAlign", Type: TypeInt, Default: 1, Min: num(0), Max: num(1),
						Description: "Text alignment (0=left, 1=justify)"},
					{Name: "hyphenation", Type: TypeBool, Default: true,
						Description: "Enable word hyphenation"},
					{Name: "showProgress", Type: TypeBool, Default: true,
						Description: "Show reading progress"},
				},
			},
			{
				Name:        "flashcards",
				Description: "Flashcard/SRS settings",
				Settings: []Setting{
					{Name: "newPerDay", Type: TypeInt, Default: 20, Min: num(0), Max: num(100),
						Description: "New cards per day"},
					{Name: "reviewLimit", Type: TypeInt, Default: 200, Min: num(0), Max: num(500),
						Description: "Maximum reviews per day"},
					{Name: "useFsrs", Type: TypeBool, Default: true,
						Description: "Use FSRS algorithm"},
					{Name: "shuffle", Type: TypeBool, Default: true,
						Description: "Shuffle card order"},
				},
			},
			{
				Name:        "weather",
				Description: "Weather widget settings",
				Settings: []Setting{
					{Name: "latitude", Type: TypeFloat, Default: 0.0, Min: num(-90), Max: num(90),
						Description: "Location latitude"},
					{Name: "longitude", Type: TypeFloat, Default: 0.0, Min: num(-180), Max: num(180),
						Description: "Location longitude"},
					{Name: "location", Type: TypeString, Default: "New York", MaxLength: 32,
						Description: "Location name"},
					{Name: "celsius", Type: TypeBool, Default: false,
						Description: "Use Celsius (false=Fahrenheit)"},
					{Name: "updateHours", Type: TypeInt, Default: 1, Min: num(1), Max: num(24),
						Description: "Hours between updates"},
				},
			},
			{
				Name:        "bluetooth",
				Description: "Bluetooth keyboard settings",
				Settings: []Setting{
					{Name: "enabled", Type: TypeBool, Default: false,
						Description: "Enable Bluetooth"},
					{Name: "autoConnect", Type: TypeBool, Default: true,
						Description: "Auto-connect to paired devices"},
					{Name: "keyboardLayout", Type: TypeInt, Default: 0, Min: num(0), Max: num(5),
						Description: "Keyboard layout (0=US, 1=UK, 2=DE, 3=FR, 4=ES, 5=IT)"},
				},
			},
		},
	}
}
