// Package atlas loads fixed-grid sprite sheets described by JSON
// configuration files, so frame layout lives in data instead of code.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/chalkfire/skymath/internal/render"
)

// SpriteDefinition names one cell within a sheet.
type SpriteDefinition struct {
	Name string `json:"name"` // Semantic name (e.g., "flying")
	Col  int    `json:"col"`  // Column in the grid (in cells)
	Row  int    `json:"row"`  // Row in the grid (in cells)
}

// SheetConfig defines the JSON configuration for a sprite sheet.
type SheetConfig struct {
	Name       string             `json:"name"`        // Sheet name
	ImagePath  string             `json:"image_path"`  // Path to the sheet image file
	CellWidth  int                `json:"cell_width"`  // Width of each cell in pixels
	CellHeight int                `json:"cell_height"` // Height of each cell in pixels
	Sprites    []SpriteDefinition `json:"sprites"`     // Named cells
}

// Sheet is a loaded sprite sheet.
type Sheet struct {
	Config        *SheetConfig
	Image         render.Image
	SpritesByName map[string]*SpriteDefinition
}

// LoadSheet loads a sprite sheet from a JSON configuration file.
func LoadSheet(loader render.ResourceLoader, configPath string) (*Sheet, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", configPath, err)
	}

	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config %s: %w", configPath, err)
	}

	if config.CellWidth <= 0 || config.CellHeight <= 0 {
		return nil, fmt.Errorf("invalid cell dimensions: %dx%d", config.CellWidth, config.CellHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in sheet config")
	}

	img, err := loader.LoadImage(config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet image %s: %w", config.ImagePath, err)
	}

	return NewSheet(&config, img), nil
}

// NewSheet builds a sheet from an already-parsed config and image. Used by
// LoadSheet and by tests that supply images directly.
func NewSheet(config *SheetConfig, img render.Image) *Sheet {
	byName := make(map[string]*SpriteDefinition)
	for i := range config.Sprites {
		sp := &config.Sprites[i]
		if sp.Name != "" {
			byName[sp.Name] = sp
		}
	}

	return &Sheet{
		Config:        config,
		Image:         img,
		SpritesByName: byName,
	}
}

// Sprite returns a sprite definition by name.
func (s *Sheet) Sprite(name string) (*SpriteDefinition, bool) {
	sp, ok := s.SpritesByName[name]
	return sp, ok
}

// CellAt returns the sub-image for the cell at the given grid position.
func (s *Sheet) CellAt(col, row int) render.Image {
	x := col * s.Config.CellWidth
	y := row * s.Config.CellHeight
	rect := image.Rect(x, y, x+s.Config.CellWidth, y+s.Config.CellHeight)
	return s.Image.SubImage(rect)
}

// Cell returns the sub-image for a named sprite.
func (s *Sheet) Cell(name string) (render.Image, error) {
	sp, ok := s.Sprite(name)
	if !ok {
		return nil, fmt.Errorf("sprite not found: %s", name)
	}
	return s.CellAt(sp.Col, sp.Row), nil
}

// Columns returns how many whole cells fit across the sheet image.
func (s *Sheet) Columns() int {
	w, _ := s.Image.Size()
	return w / s.Config.CellWidth
}

// Rows returns how many whole cells fit down the sheet image.
func (s *Sheet) Rows() int {
	_, h := s.Image.Size()
	return h / s.Config.CellHeight
}
