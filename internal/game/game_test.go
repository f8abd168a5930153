package game

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/options"
	"github.com/chalkfire/skymath/internal/render"
	"github.com/chalkfire/skymath/internal/ui/hud"
	"github.com/chalkfire/skymath/internal/world"
)

type stubInput struct {
	justPressed map[render.Key]bool
	cursorX     int
	cursorY     int
	mouseClick  bool
}

func (s *stubInput) IsKeyPressed(key render.Key) bool { return false }
func (s *stubInput) IsKeyJustPressed(key render.Key) bool { return s.justPressed[key] }
func (s *stubInput) CursorPosition() (int, int) { return s.cursorX, s.cursorY }
func (s *stubInput) IsMouseButtonPressed(b render.MouseButton) bool { return false }
func (s *stubInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && s.mouseClick
}

type stubRenderer struct{}

func (r *stubRenderer) NewImage(w, h int) render.Image { return nil }
func (r *stubRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {}
func (r *stubRenderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {}
func (r *stubRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {}
func (r *stubRenderer) StrokeCircle(dst render.Image, x, y, radius, sw float32, clr color.Color) {
}
func (r *stubRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, sw float32, clr color.Color) {
}
func (r *stubRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
}
func (r *stubRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 7 * int(scale), 13 * int(scale)
}

type stubEngine struct {
	fullscreen bool
}

func (e *stubEngine) SetWindowSize(w, h int) {}
func (e *stubEngine) SetWindowTitle(title string) {}
func (e *stubEngine) SetWindowResizable(resizable bool) {}
func (e *stubEngine) SetFullscreen(fullscreen bool) { e.fullscreen = fullscreen }
func (e *stubEngine) IsFullscreen() bool { return e.fullscreen }
func (e *stubEngine) RunGame(g render.Game) error { return nil }

type stubSounds struct {
	shoots     int
	explosions int
	volume     float64
}

func (s *stubSounds) PlayShoot() { s.shoots++ }
func (s *stubSounds) PlayExplosion() { s.explosions++ }
func (s *stubSounds) SetVolume(v float64) { s.volume = v }

func testManager(input *stubInput) (*Manager, *stubEngine, *stubSounds) {
	engine := &stubEngine{}
	sounds := &stubSounds{}
	m := NewManager(Config{
		Renderer: &stubRenderer{},
		Input:    input,
		Engine:   engine,
		Rules:    world.DefaultRules(),
		Options:  options.Default(),
		Locale:   locale.New(locale.LangEnglish),
		Sounds:   sounds,
		Rand:     rand.New(rand.NewSource(1)),
	})
	return m, engine, sounds
}

func testSession(input *stubInput) (*Session, *world.World, *stubSounds) {
	w := world.New(world.DefaultRules(), 1, rand.New(rand.NewSource(1)))
	h := hud.New(&stubRenderer{}, locale.New(locale.LangEnglish))
	sounds := &stubSounds{}
	s := NewSession(&stubRenderer{}, input, w, h, sounds, options.Default(), nil, nil)
	return s, w, sounds
}

func TestManagerStartsOnLevelSelect(t *testing.T) {
	m, _, _ := testManager(&stubInput{justPressed: map[render.Key]bool{}})
	if m.CurrentState() != StateLevelSelect {
		t.Errorf("state = %v, want level select", m.CurrentState())
	}
}

func TestManagerLevelKeyStartsSession(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.Key2: true}}
	m, _, _ := testManager(input)

	if err := m.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.CurrentState() != StatePlaying {
		t.Fatalf("state = %v, want playing", m.CurrentState())
	}
	if m.session == nil {
		t.Fatal("no session after level pick")
	}
	if m.session.world.Level != 2 {
		t.Errorf("level = %d, want 2", m.session.world.Level)
	}
}

func TestManagerFullscreenToggle(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.KeyF: true}}
	m, engine, _ := testManager(input)

	m.Update()
	if !engine.fullscreen {
		t.Error("fullscreen not toggled on")
	}
	m.Update()
	if engine.fullscreen {
		t.Error("fullscreen not toggled back off")
	}
}

func TestManagerOptionsAutoPause(t *testing.T) {
	m, _, _ := testManager(&stubInput{justPressed: map[render.Key]bool{render.Key1: true}})
	m.Update()

	m.cfg.Input = &stubInput{justPressed: map[render.Key]bool{render.KeyO: true}}
	m.Update()
	if !m.showOptions {
		t.Fatal("options overlay not shown")
	}
	if !m.session.Paused() {
		t.Error("opening options mid-game should pause")
	}
}

func TestManagerOptionsBlockSimulation(t *testing.T) {
	m, _, sounds := testManager(&stubInput{justPressed: map[render.Key]bool{render.KeyO: true}})
	m.cfg.Options.Volume = 0.3

	m.Update()
	if !m.showOptions {
		t.Fatal("options overlay not shown")
	}
	if sounds.volume != 0.3 {
		t.Errorf("volume = %v, want pushed to sounds while overlay open", sounds.volume)
	}
	if m.CurrentState() != StateLevelSelect {
		t.Error("state changed while options open")
	}
}

func TestSessionPauseToggle(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.KeySpace: true}}
	s, _, _ := testSession(input)

	s.Update(false)
	if !s.Paused() {
		t.Fatal("space did not pause")
	}
	s.Update(false)
	if s.Paused() {
		t.Fatal("space did not resume")
	}
}

func TestSessionNoPauseToggleWhileOptionsOpen(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.KeySpace: true}}
	s, _, _ := testSession(input)

	s.Update(true)
	if s.Paused() {
		t.Error("space should be ignored while the options overlay is open")
	}
}

func TestSessionClickOnEmptySkyIsSilent(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{}, mouseClick: true, cursorX: 10, cursorY: 680}
	s, w, sounds := testSession(input)

	s.Update(false)
	if sounds.shoots != 0 {
		t.Errorf("shoot sound played %d times on an empty click", sounds.shoots)
	}
	if w.Ammo != w.Rules.Ammo.Initial {
		t.Errorf("ammo = %d, want unchanged", w.Ammo)
	}
}

func TestSessionRestartAfterGameOver(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.KeyR: true}}
	s, w, _ := testSession(input)

	// Force a lost position.
	w.Ammo = 0
	for i := range w.Drones {
		w.Drones[i].Active = false
	}

	if !s.Update(false) {
		t.Fatal("R at game over should end the session")
	}
	if w.Ammo != w.Rules.Ammo.Initial {
		t.Errorf("ammo = %d, want reset", w.Ammo)
	}
}

func TestSessionNoRestartMidGame(t *testing.T) {
	input := &stubInput{justPressed: map[render.Key]bool{render.KeyR: true}}
	s, _, _ := testSession(input)

	if s.Update(false) {
		t.Error("R must not end a session that is still winnable")
	}
}
