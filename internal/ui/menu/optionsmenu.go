package menu

import (
	"fmt"
	"image/color"

	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/options"
	"github.com/chalkfire/skymath/internal/render"
)

// Options overlay layout, relative to screen center.
const (
	checkboxX    = entity.ScreenWidth/2 + 180
	checkboxSize = 30

	breakdownBoxY = entity.ScreenHeight/2 - 80
	negativeBoxY  = entity.ScreenHeight/2 - 30

	sliderX      = entity.ScreenWidth/2 - 100
	sliderY      = entity.ScreenHeight/2 + 50
	sliderWidth  = 200
	sliderHeight = 20
)

var (
	colorDim       = color.RGBA{0, 0, 0, 180}
	colorMenuText  = color.RGBA{255, 255, 255, 255}
	colorMenuFaint = color.RGBA{200, 200, 200, 255}
	colorBoxFill   = color.RGBA{255, 255, 255, 255}
	colorCheck     = color.RGBA{0, 228, 48, 255}
	colorSliderBg  = color.RGBA{80, 80, 80, 255}
	colorSliderFg  = color.RGBA{102, 191, 255, 255}
)

// OptionsMenu is the overlay for toggling settings. It mutates the
// shared options struct directly; the caller applies side effects such
// as volume changes.
type OptionsMenu struct {
	renderer render.Renderer
	input    render.InputManager
	loc      *locale.System
	opts     *options.Options
}

// NewOptionsMenu builds the overlay around the shared options value.
func NewOptionsMenu(renderer render.Renderer, input render.InputManager, loc *locale.System, opts *options.Options) *OptionsMenu {
	return &OptionsMenu{
		renderer: renderer,
		input:    input,
		loc:      loc,
		opts:     opts,
	}
}

// Update processes clicks on the checkboxes and drags on the volume
// slider.
func (m *OptionsMenu) Update() {
	mx, my := m.input.CursorPosition()

	if m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		if inBox(mx, my, checkboxX, breakdownBoxY, checkboxSize, checkboxSize) {
			m.opts.ShowBreakdown = !m.opts.ShowBreakdown
		}
		if inBox(mx, my, checkboxX, negativeBoxY, checkboxSize, checkboxSize) {
			m.opts.AllowNegative = !m.opts.AllowNegative
		}
	}

	if m.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		if inBox(mx, my, sliderX, sliderY, sliderWidth, sliderHeight) {
			v := float64(mx-sliderX) / sliderWidth
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			m.opts.Volume = v
		}
	}
}

// Draw renders the overlay on top of whatever is underneath.
func (m *OptionsMenu) Draw(screen render.Image) {
	m.renderer.FillRect(screen, 0, 0, entity.ScreenWidth, entity.ScreenHeight, colorDim)

	cy := entity.ScreenHeight / 2
	m.drawCentered(screen, m.loc.Get(locale.KeyOptions), cy-150, colorMenuText, 4)

	m.renderer.DrawText(screen, m.loc.Get(locale.KeyShowBreakdown), entity.ScreenWidth/2-200, cy-70, colorMenuText, 2)
	m.drawCheckbox(screen, checkboxX, breakdownBoxY, m.opts.ShowBreakdown)

	m.renderer.DrawText(screen, m.loc.Get(locale.KeyAllowNegative), entity.ScreenWidth/2-200, cy-20, colorMenuText, 2)
	m.drawCheckbox(screen, checkboxX, negativeBoxY, m.opts.AllowNegative)

	m.renderer.DrawText(screen, m.loc.Get(locale.KeyMusicVolume), entity.ScreenWidth/2-200, cy+40, colorMenuText, 2)
	m.drawSlider(screen)

	m.drawCentered(screen, m.loc.Get(locale.KeyCloseOptions), cy+100, colorMenuFaint, 2)
}

func (m *OptionsMenu) drawCheckbox(screen render.Image, x, y int, checked bool) {
	m.renderer.FillRect(screen, float32(x), float32(y), checkboxSize, checkboxSize, colorBoxFill)
	m.renderer.StrokeRect(screen, float32(x), float32(y), checkboxSize, checkboxSize, 2, color.RGBA{0, 0, 0, 255})
	if checked {
		m.renderer.FillRect(screen, float32(x+5), float32(y+5), checkboxSize-10, checkboxSize-10, colorCheck)
	}
}

func (m *OptionsMenu) drawSlider(screen render.Image) {
	m.renderer.FillRect(screen, sliderX, sliderY, sliderWidth, sliderHeight, colorSliderBg)
	m.renderer.StrokeRect(screen, sliderX, sliderY, sliderWidth, sliderHeight, 2, colorMenuText)
	m.renderer.FillRect(screen, sliderX, sliderY, float32(sliderWidth*m.opts.Volume), sliderHeight, colorSliderFg)

	handleX := float32(sliderX + sliderWidth*m.opts.Volume)
	m.renderer.FillCircle(screen, handleX, sliderY+sliderHeight/2, 12, colorBoxFill)
	m.renderer.StrokeCircle(screen, handleX, sliderY+sliderHeight/2, 12, 1, color.RGBA{0, 0, 0, 255})

	pct := fmt.Sprintf("%d%%", int(m.opts.Volume*100))
	m.renderer.DrawText(screen, pct, entity.ScreenWidth/2+120, sliderY-5, colorMenuText, 2)
}

func (m *OptionsMenu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	tw, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, entity.ScreenWidth/2-tw/2, y, clr, scale)
}

func inBox(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
