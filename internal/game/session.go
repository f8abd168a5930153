// Package game ties the simulation, rendering and menus together behind
// the engine's update/draw loop.
package game

import (
	"image/color"

	"github.com/chalkfire/skymath/internal/atlas"
	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/options"
	"github.com/chalkfire/skymath/internal/render"
	"github.com/chalkfire/skymath/internal/ui/hud"
	"github.com/chalkfire/skymath/internal/world"
)

// Fixed simulation step. The engine ticks at 60Hz.
const tick = 1.0 / 60.0

// Tracer drawing.
const (
	tracerTrailLength = 0.02
	tracerThickness   = 3.0
	tracerDotRadius   = 2.0
)

var (
	colorSkyFallback = color.RGBA{135, 206, 235, 255}
	colorTracer      = color.RGBA{253, 249, 0, 255}
	colorTracerDot   = color.RGBA{255, 161, 0, 255}
	colorDroneStub   = color.RGBA{80, 80, 80, 255}
	colorTurretStub  = color.RGBA{0, 117, 44, 255}
)

// Sounds is what a session needs from the audio layer.
type Sounds interface {
	PlayShoot()
	PlayExplosion()
	SetVolume(v float64)
}

// Session is one playthrough at a chosen difficulty level.
type Session struct {
	renderer render.Renderer
	input    render.InputManager
	world    *world.World
	hud      *hud.HUD
	sounds   Sounds
	opts     *options.Options

	background render.Image
	droneCells [4]render.Image // flying, exploding, damaged, attacking
	gepard     *atlas.Sheet

	paused bool
}

// drone sprite cell indices
const (
	cellFlying = iota
	cellExploding
	cellDamaged
	cellAttacking
)

// NewSession starts a playthrough. Sheets and background may be nil;
// missing art falls back to plain shape placeholders.
func NewSession(renderer render.Renderer, input render.InputManager, w *world.World, h *hud.HUD, sounds Sounds, opts *options.Options, sheets *atlas.Manager, background render.Image) *Session {
	s := &Session{
		renderer:   renderer,
		input:      input,
		world:      w,
		hud:        h,
		sounds:     sounds,
		opts:       opts,
		background: background,
	}

	if sheets != nil {
		if sheet, ok := sheets.Sheet("drone"); ok {
			names := []string{"flying", "exploding", "damaged", "attacking"}
			for i, name := range names {
				if cell, err := sheet.Cell(name); err == nil {
					s.droneCells[i] = cell
				}
			}
		}
		if sheet, ok := sheets.Sheet("gepard"); ok {
			s.gepard = sheet
		}
	}

	w.SetAllowNegative(opts.AllowNegative)
	w.Start()
	return s
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused freezes or resumes the simulation.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// Update runs one tick of gameplay. It returns true when the player
// leaves the session back to the level select.
func (s *Session) Update(optionsOpen bool) bool {
	if !optionsOpen && s.input.IsKeyJustPressed(render.KeySpace) {
		s.paused = !s.paused
	}
	if s.paused || optionsOpen {
		return false
	}

	s.world.SetAllowNegative(s.opts.AllowNegative)

	mx, _ := s.input.CursorPosition()
	s.world.AimAt(mx)

	s.world.Update(tick)

	if s.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		cx, cy := s.input.CursorPosition()
		res := s.world.ClickAt(float64(cx), float64(cy))
		if res.Fired && s.sounds != nil {
			s.sounds.PlayShoot()
			if res.TargetShahed {
				s.sounds.PlayExplosion()
			}
		}
	}

	if s.world.GameOver() && s.input.IsKeyJustPressed(render.KeyR) {
		s.world.Reset()
		return true
	}

	return false
}

// Draw renders the play field. The options overlay, when open, is drawn
// on top by the manager.
func (s *Session) Draw(screen render.Image) {
	if s.background != nil {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		screen.DrawImage(s.background, opts)
	} else {
		screen.Fill(colorSkyFallback)
	}

	p := &s.world.Rules.Physics
	for i := range s.world.Drones {
		d := &s.world.Drones[i]
		if d.Active && d.State != entity.DroneDead {
			s.drawDrone(screen, d, p)
		}
	}

	if !s.paused {
		s.hud.DrawAnswers(screen, s.world)
	}

	s.drawGepard(screen)
	s.drawProjectiles(screen)
	s.hud.Draw(screen, s.world, s.opts.ShowBreakdown)

	if s.paused {
		s.hud.DrawPaused(screen)
	}
}

func (s *Session) drawDrone(screen render.Image, d *entity.Drone, p *entity.Params) {
	if !d.Visible(p) {
		return
	}

	cell := s.droneCells[cellFlying]
	switch d.State {
	case entity.DroneExploding:
		cell = s.droneCells[cellExploding]
	case entity.DroneFalling:
		if d.Shahed {
			cell = s.droneCells[cellAttacking]
		} else {
			cell = s.droneCells[cellDamaged]
		}
	}

	scale := d.DrawScale(p)
	if cell == nil {
		size := float32(entity.DroneCell * scale)
		s.renderer.FillRect(screen, float32(d.Pos.X), float32(d.Pos.Y), size, size, colorDroneStub)
		return
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(d.Pos.X, d.Pos.Y)
	screen.DrawImage(cell, opts)
}

func (s *Session) drawGepard(screen render.Image) {
	g := &s.world.Turret
	pos := s.world.TurretPos
	size := float32(entity.GepardCell * entity.GepardScale)

	if s.gepard == nil {
		s.renderer.FillRect(screen, float32(pos.X), float32(pos.Y), size, size, colorTurretStub)
		return
	}

	frame := 0
	if g.Firing {
		frame = g.FireFrame
	}
	// Rest pose is the bottom row of the sheet.
	cell := s.gepard.CellAt(g.TurretIndex, 2-frame)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(entity.GepardScale, entity.GepardScale)
	opts.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(cell, opts)
}

func (s *Session) drawProjectiles(screen render.Image) {
	for i := range s.world.Projectiles {
		pr := &s.world.Projectiles[i]
		if !pr.Active {
			continue
		}
		tail := pr.Trail(tracerTrailLength)
		s.renderer.StrokeLine(screen,
			float32(pr.Pos.X), float32(pr.Pos.Y),
			float32(tail.X), float32(tail.Y),
			tracerThickness, colorTracer)
		s.renderer.FillCircle(screen, float32(pr.Pos.X), float32(pr.Pos.Y), tracerDotRadius, colorTracerDot)
	}
}
