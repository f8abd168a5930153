// Package menu implements the level select screen and the options
// overlay.
package menu

import (
	"image/color"

	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/render"
)

// Language flag row layout.
const (
	flagWidth   = 60.0
	flagHeight  = flagWidth * 0.6
	flagSpacing = 20.0
	flagY       = entity.ScreenHeight - 100.0
)

var (
	colorSky      = color.RGBA{135, 206, 235, 255}
	colorTitle    = color.RGBA{0, 0, 0, 255}
	colorSubtitle = color.RGBA{80, 80, 80, 255}
	colorLevel1   = color.RGBA{0, 117, 44, 255}
	colorLevel2   = color.RGBA{255, 161, 0, 255}
	colorLevel3   = color.RGBA{230, 41, 55, 255}
	colorHint     = color.RGBA{0, 121, 241, 255}
	colorSelected = color.RGBA{0, 228, 48, 255}
	colorBorder   = color.RGBA{0, 0, 0, 255}
)

// LevelSelect is the opening screen: pick a difficulty with the number
// keys, pick a language by clicking its flag.
type LevelSelect struct {
	renderer render.Renderer
	input    render.InputManager
	loc      *locale.System

	// Flag images in Languages() order; nil entries fall back to a
	// plain bordered box.
	flags [3]render.Image
}

// NewLevelSelect builds the screen. Flag images are optional; pass nil
// for any that failed to load.
func NewLevelSelect(renderer render.Renderer, input render.InputManager, loc *locale.System, flags [3]render.Image) *LevelSelect {
	return &LevelSelect{
		renderer: renderer,
		input:    input,
		loc:      loc,
		flags:    flags,
	}
}

// flagRect returns the bounds of the flag for language index i.
func flagRect(i int) (x, y, w, h float64) {
	centers := []float64{
		entity.ScreenWidth/2 - flagWidth - flagSpacing - flagWidth/2,
		entity.ScreenWidth/2 - flagWidth/2,
		entity.ScreenWidth/2 + flagSpacing + flagWidth/2,
	}
	return centers[i], flagY, flagWidth, flagHeight
}

// Update processes one tick of input. It returns the chosen difficulty
// level and true once the player picks one.
func (m *LevelSelect) Update() (int, bool) {
	if m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mx, my := m.input.CursorPosition()
		for i, lang := range locale.Languages() {
			x, y, w, h := flagRect(i)
			if float64(mx) >= x && float64(mx) < x+w && float64(my) >= y && float64(my) < y+h {
				m.loc.SetLanguage(lang)
			}
		}
	}

	switch {
	case m.input.IsKeyJustPressed(render.Key1):
		return 1, true
	case m.input.IsKeyJustPressed(render.Key2):
		return 2, true
	case m.input.IsKeyJustPressed(render.Key3):
		return 3, true
	}
	return 0, false
}

// Draw renders the level select screen.
func (m *LevelSelect) Draw(screen render.Image) {
	screen.Fill(colorSky)

	cy := entity.ScreenHeight / 2
	m.drawCentered(screen, m.loc.Get(locale.KeyGameTitle), cy-120, colorTitle, 3)
	m.drawCentered(screen, m.loc.Get(locale.KeyGameSubtitle), cy-60, colorSubtitle, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeyGameInstructions), cy-30, colorSubtitle, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeySelectLevel), cy+20, colorTitle, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeyLevel1Desc), cy+60, colorLevel1, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeyLevel2Desc), cy+90, colorLevel2, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeyLevel3Desc), cy+120, colorLevel3, 2)
	m.drawCentered(screen, m.loc.Get(locale.KeyPressOptions), cy+160, colorHint, 2)

	m.drawFlags(screen)
}

func (m *LevelSelect) drawFlags(screen render.Image) {
	for i, lang := range locale.Languages() {
		x, y, w, h := flagRect(i)

		if img := m.flags[i]; img != nil {
			iw, ih := img.Size()
			opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
			opts.GeoM.Scale(w/float64(iw), h/float64(ih))
			opts.GeoM.Translate(x, y)
			screen.DrawImage(img, opts)
		} else {
			m.renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorSubtitle)
			name := m.loc.LanguageName(lang)
			tw, _ := m.renderer.MeasureText(name, 1)
			m.renderer.DrawText(screen, name, int(x+w/2)-tw/2, int(y+h/2)-6, colorBorder, 1)
		}

		if m.loc.Language() == lang {
			m.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 3, colorSelected)
		} else {
			m.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorBorder)
		}
	}
}

func (m *LevelSelect) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	tw, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, entity.ScreenWidth/2-tw/2, y, clr, scale)
}
