package atlas

import (
	"encoding/json"
	"image"
	"image/color"
	"testing"

	"github.com/chalkfire/skymath/internal/render"
)

// stubImage is a drawless render.Image for sheet geometry tests.
type stubImage struct {
	rect image.Rectangle
}

func (s *stubImage) Bounds() image.Rectangle { return s.rect }
func (s *stubImage) Size() (int, int) { return s.rect.Dx(), s.rect.Dy() }
func (s *stubImage) SubImage(r image.Rectangle) render.Image {
	return &stubImage{rect: r.Intersect(s.rect)}
}
func (s *stubImage) Fill(clr color.Color) {}
func (s *stubImage) Clear() {}
func (s *stubImage) DrawImage(src render.Image, o *render.DrawImageOptions) {}
func (s *stubImage) Dispose() {}

func TestSheetConfigParsing(t *testing.T) {
	jsonData := `{
		"name": "drone",
		"image_path": "images/drone.png",
		"cell_width": 100,
		"cell_height": 100,
		"sprites": [
			{"name": "flying", "col": 0, "row": 0},
			{"name": "exploding", "col": 1, "row": 0},
			{"name": "damaged", "col": 2, "row": 0},
			{"name": "attacking", "col": 3, "row": 0}
		]
	}`

	var config SheetConfig
	if err := json.Unmarshal([]byte(jsonData), &config); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if config.Name != "drone" {
		t.Errorf("Expected name 'drone', got '%s'", config.Name)
	}
	if config.CellWidth != 100 || config.CellHeight != 100 {
		t.Errorf("Expected 100x100 cells, got %dx%d", config.CellWidth, config.CellHeight)
	}
	if len(config.Sprites) != 4 {
		t.Fatalf("Expected 4 sprites, got %d", len(config.Sprites))
	}
	if config.Sprites[1].Name != "exploding" || config.Sprites[1].Col != 1 {
		t.Errorf("Unexpected second sprite: %+v", config.Sprites[1])
	}
}

func testDroneSheet() *Sheet {
	config := &SheetConfig{
		Name:       "drone",
		ImagePath:  "images/drone.png",
		CellWidth:  100,
		CellHeight: 100,
		Sprites: []SpriteDefinition{
			{Name: "flying", Col: 0, Row: 0},
			{Name: "exploding", Col: 1, Row: 0},
			{Name: "damaged", Col: 2, Row: 0},
			{Name: "attacking", Col: 3, Row: 0},
		},
	}
	img := &stubImage{rect: image.Rect(0, 0, 400, 100)}
	return NewSheet(config, img)
}

func TestSheetLookup(t *testing.T) {
	sheet := testDroneSheet()

	sp, ok := sheet.Sprite("exploding")
	if !ok {
		t.Fatal("Expected to find sprite 'exploding'")
	}
	if sp.Col != 1 || sp.Row != 0 {
		t.Errorf("Expected cell (1, 0), got (%d, %d)", sp.Col, sp.Row)
	}

	if _, ok := sheet.Sprite("missing"); ok {
		t.Error("Expected lookup miss for unknown sprite")
	}
}

func TestSheetCellBounds(t *testing.T) {
	sheet := testDroneSheet()

	cell, err := sheet.Cell("damaged")
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	want := image.Rect(200, 0, 300, 100)
	if cell.Bounds() != want {
		t.Errorf("Expected bounds %v, got %v", want, cell.Bounds())
	}

	if _, err := sheet.Cell("missing"); err == nil {
		t.Error("Expected error for unknown sprite")
	}
}

func TestSheetGridSize(t *testing.T) {
	sheet := testDroneSheet()
	if cols := sheet.Columns(); cols != 4 {
		t.Errorf("Expected 4 columns, got %d", cols)
	}
	if rows := sheet.Rows(); rows != 1 {
		t.Errorf("Expected 1 row, got %d", rows)
	}
}

func TestTurretGridCells(t *testing.T) {
	config := &SheetConfig{
		Name:       "gepard",
		ImagePath:  "images/gepard.png",
		CellWidth:  150,
		CellHeight: 150,
	}
	img := &stubImage{rect: image.Rect(0, 0, 750, 450)}
	sheet := NewSheet(config, img)

	if sheet.Columns() != 5 || sheet.Rows() != 3 {
		t.Fatalf("Expected 5x3 grid, got %dx%d", sheet.Columns(), sheet.Rows())
	}

	cell := sheet.CellAt(2, 1)
	want := image.Rect(300, 150, 450, 300)
	if cell.Bounds() != want {
		t.Errorf("Expected bounds %v, got %v", want, cell.Bounds())
	}
}

func TestManagerRegistration(t *testing.T) {
	m := NewManager()
	sheet := testDroneSheet()

	if err := m.RegisterSheet(sheet); err != nil {
		t.Fatalf("RegisterSheet: %v", err)
	}
	if err := m.RegisterSheet(sheet); err == nil {
		t.Error("Expected error registering a duplicate sheet name")
	}

	got, ok := m.Sheet("drone")
	if !ok || got != sheet {
		t.Error("Expected to retrieve the registered sheet")
	}

	if _, err := m.Cell("drone", "flying"); err != nil {
		t.Errorf("Cell: %v", err)
	}
	if _, err := m.Cell("missing", "flying"); err == nil {
		t.Error("Expected error for unknown sheet")
	}
}

func TestRegisterSheetRequiresName(t *testing.T) {
	m := NewManager()
	sheet := NewSheet(&SheetConfig{CellWidth: 10, CellHeight: 10}, &stubImage{rect: image.Rect(0, 0, 10, 10)})
	if err := m.RegisterSheet(sheet); err == nil {
		t.Error("Expected error registering a nameless sheet")
	}
}
