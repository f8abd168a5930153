package atlas

import (
	"fmt"

	"github.com/chalkfire/skymath/internal/render"
)

// Manager holds the loaded sprite sheets, looked up by name.
type Manager struct {
	sheetsByName map[string]*Sheet
}

// NewManager creates an empty sheet manager.
func NewManager() *Manager {
	return &Manager{
		sheetsByName: make(map[string]*Sheet),
	}
}

// LoadSheetConfig loads a sheet from a config file and registers it.
func (m *Manager) LoadSheetConfig(loader render.ResourceLoader, configPath string) error {
	sheet, err := LoadSheet(loader, configPath)
	if err != nil {
		return err
	}

	return m.RegisterSheet(sheet)
}

// RegisterSheet registers a loaded sheet with the manager.
func (m *Manager) RegisterSheet(sheet *Sheet) error {
	if sheet.Config.Name == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}

	if existing, exists := m.sheetsByName[sheet.Config.Name]; exists {
		return fmt.Errorf("sheet %s already registered with image %s", sheet.Config.Name, existing.Config.ImagePath)
	}

	m.sheetsByName[sheet.Config.Name] = sheet
	return nil
}

// Sheet returns a registered sheet by name.
func (m *Manager) Sheet(name string) (*Sheet, bool) {
	sheet, ok := m.sheetsByName[name]
	return sheet, ok
}

// Cell returns the sub-image for a named sprite on a named sheet.
func (m *Manager) Cell(sheetName, spriteName string) (render.Image, error) {
	sheet, ok := m.Sheet(sheetName)
	if !ok {
		return nil, fmt.Errorf("no sheet registered as %s", sheetName)
	}
	return sheet.Cell(spriteName)
}
