// Package hud draws the in-game overlay: the equation and its optional
// breakdown, score and level, the ammo gauge, drone answer labels and the
// pause and game-over messages.
package hud

import (
	"fmt"
	"image/color"

	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/equation"
	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/render"
	"github.com/chalkfire/skymath/internal/world"
)

// Ammo gauge layout.
const (
	ammoBoxWidth   = 15
	ammoBoxHeight  = 8
	ammoBoxSpacing = 3
	ammoOffsetX    = 50
	ammoOffsetY    = 60

	ammoWarningThreshold  = 10 // also the row length
	ammoCriticalThreshold = 5
)

// Drone answer label offsets relative to the sprite corner.
const (
	answerOffsetX = 95.0
	answerOffsetY = 30.0
)

var (
	colorText      = color.RGBA{0, 0, 0, 255}
	colorScore     = color.RGBA{0, 0, 0, 255}
	colorLevel     = color.RGBA{0, 82, 172, 255}
	colorAnswer    = color.RGBA{230, 41, 55, 255}
	colorAmmoFull  = color.RGBA{0, 117, 44, 255}
	colorAmmoLow   = color.RGBA{255, 161, 0, 255}
	colorAmmoEmpty = color.RGBA{230, 41, 55, 255}
	colorGameOver  = color.RGBA{230, 41, 55, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorWhite     = color.RGBA{255, 255, 255, 255}

	colorPartNormal    = color.RGBA{0, 121, 241, 255}
	colorPartHighlight = color.RGBA{0, 150, 0, 255}
	colorPartCancelled = color.RGBA{230, 41, 55, 255}
)

// HUD renders the in-game text and gauges.
type HUD struct {
	renderer render.Renderer
	loc      *locale.System
}

// New creates a HUD drawing with the given renderer and translations.
func New(renderer render.Renderer, loc *locale.System) *HUD {
	return &HUD{renderer: renderer, loc: loc}
}

// Draw renders the standard in-game overlay.
func (h *HUD) Draw(screen render.Image, w *world.World, showBreakdown bool) {
	h.renderer.DrawText(screen, w.Equation.String(), 20, 20, colorText, 3)
	if showBreakdown && len(w.Equation.Parts) > 0 {
		h.drawBreakdown(screen, &w.Equation, 20, 60, 2)
	}

	score := fmt.Sprintf("%s: %d", h.loc.Get(locale.KeyScore), w.Score)
	h.renderer.DrawText(screen, score, entity.ScreenWidth-180, 20, colorScore, 2)
	level := fmt.Sprintf("%s: %d", h.loc.Get(locale.KeyLevel), w.Level)
	h.renderer.DrawText(screen, level, entity.ScreenWidth-180, 60, colorLevel, 2)

	h.drawAmmo(screen, w.Ammo)

	if w.Ammo < w.Rules.Ammo.ShotCost {
		h.drawCentered(screen, h.loc.Get(locale.KeyOutOfAmmo), entity.ScreenHeight/2, colorGameOver, 2)
	}
}

// DrawAnswers labels every flying drone with the answer it carries. Drawn
// separately so labels sit on top of all sprites.
func (h *HUD) DrawAnswers(screen render.Image, w *world.World) {
	for i := range w.Drones {
		d := &w.Drones[i]
		if !d.Active || d.State != entity.DroneFlying {
			continue
		}
		label := fmt.Sprintf("%d", d.Answer)
		tw, _ := h.renderer.MeasureText(label, 3)
		x := int(d.Pos.X+answerOffsetX) - tw/2
		y := int(d.Pos.Y + answerOffsetY)
		h.renderer.DrawText(screen, label, x, y, colorAnswer, 3)
	}
}

// DrawPaused dims the play field and shows the pause message.
func (h *HUD) DrawPaused(screen render.Image) {
	h.renderer.FillRect(screen, 0, 0, entity.ScreenWidth, entity.ScreenHeight, colorOverlay)
	h.drawCentered(screen, h.loc.Get(locale.KeyPaused), entity.ScreenHeight/2-40, colorWhite, 4)
	h.drawCentered(screen, h.loc.Get(locale.KeyPressResume), entity.ScreenHeight/2+20, colorWhite, 2)
}

// drawBreakdown renders the tens-decomposition with its part coloring:
// plain parts blue, carried tens green, cancelled pairs red.
func (h *HUD) drawBreakdown(screen render.Image, eq *equation.Equation, x, y int, scale float64) {
	for _, part := range eq.Parts {
		if part.OpBefore != 0 {
			op := fmt.Sprintf(" %c ", part.OpBefore)
			h.renderer.DrawText(screen, op, x, y, colorPartNormal, scale)
			tw, _ := h.renderer.MeasureText(op, scale)
			x += tw
		}

		clr := colorPartNormal
		switch part.State {
		case equation.PartHighlight:
			clr = colorPartHighlight
		case equation.PartCancelled:
			clr = colorPartCancelled
		}

		text := fmt.Sprintf("%d", part.Value)
		h.renderer.DrawText(screen, text, x, y, clr, scale)
		tw, _ := h.renderer.MeasureText(text, scale)
		x += tw
	}

	h.renderer.DrawText(screen, " = ?", x, y, colorPartNormal, scale)
}

// drawAmmo renders the remaining rounds as stacked boxes in the bottom
// right corner, colored by how low the reserve is.
func (h *HUD) drawAmmo(screen render.Image, ammo int) {
	startX := entity.ScreenWidth - ammoOffsetX
	startY := entity.ScreenHeight - ammoOffsetY

	clr := colorAmmoFull
	if ammo <= ammoCriticalThreshold {
		clr = colorAmmoEmpty
	} else if ammo <= ammoWarningThreshold {
		clr = colorAmmoLow
	}

	for i := 0; i < ammo; i++ {
		x := startX - (i%ammoWarningThreshold)*(ammoBoxWidth+ammoBoxSpacing)
		y := startY - (i/ammoWarningThreshold)*(ammoBoxHeight+ammoBoxSpacing)
		h.renderer.FillRect(screen, float32(x), float32(y), ammoBoxWidth, ammoBoxHeight, clr)
	}
}

func (h *HUD) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	tw, _ := h.renderer.MeasureText(text, scale)
	h.renderer.DrawText(screen, text, entity.ScreenWidth/2-tw/2, y, clr, scale)
}
