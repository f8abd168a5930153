// Package options holds the player-facing settings toggled from the
// options menu.
package options

import (
	"encoding/json"
	"fmt"
	"os"
)

// Options are the menu-adjustable settings.
type Options struct {
	ShowBreakdown bool    `json:"show_breakdown"` // tens-decomposition under the equation
	AllowNegative bool    `json:"allow_negative"` // subtraction facts may go below zero
	Volume        float64 `json:"volume"`         // master volume, 0 to 1
	Language      string  `json:"language"`       // "English", "Polish" or "Ukrainian"
}

// Default returns the out-of-the-box settings.
func Default() *Options {
	return &Options{
		ShowBreakdown: true,
		AllowNegative: false,
		Volume:        0.5,
		Language:      "Polish",
	}
}

// Load reads options from a JSON file. A missing file yields defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := Default()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	opts.clamp()

	return opts, nil
}

// Save writes the options to a file.
func (o *Options) Save(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize options: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}

	return nil
}

func (o *Options) clamp() {
	if o.Volume < 0 {
		o.Volume = 0
	}
	if o.Volume > 1 {
		o.Volume = 1
	}
}
