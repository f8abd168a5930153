package game

import (
	"log"
	"math/rand"

	"github.com/chalkfire/skymath/internal/atlas"
	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/options"
	"github.com/chalkfire/skymath/internal/render"
	"github.com/chalkfire/skymath/internal/ui/hud"
	"github.com/chalkfire/skymath/internal/ui/menu"
	"github.com/chalkfire/skymath/internal/world"
)

// State identifies which screen the manager is running.
type State int

const (
	StateLevelSelect State = iota
	StatePlaying
)

// Config collects the manager's dependencies.
type Config struct {
	Renderer render.Renderer
	Input    render.InputManager
	Engine   render.Engine

	Rules       *world.Rules
	Options     *options.Options
	OptionsPath string
	Locale      *locale.System
	Sounds      Sounds
	Sheets      *atlas.Manager

	Background render.Image
	Flags      [3]render.Image

	Rand *rand.Rand
}

// Manager runs the level select and the active session, and owns the
// options overlay shown on top of either.
type Manager struct {
	cfg Config

	state       State
	session     *Session
	levelSelect *menu.LevelSelect
	optionsMenu *menu.OptionsMenu
	gameHUD     *hud.HUD

	showOptions bool
}

// NewManager wires up the screens.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:         cfg,
		state:       StateLevelSelect,
		levelSelect: menu.NewLevelSelect(cfg.Renderer, cfg.Input, cfg.Locale, cfg.Flags),
		optionsMenu: menu.NewOptionsMenu(cfg.Renderer, cfg.Input, cfg.Locale, cfg.Options),
		gameHUD:     hud.New(cfg.Renderer, cfg.Locale),
	}
}

// CurrentState returns the active screen.
func (m *Manager) CurrentState() State {
	return m.state
}

// Update advances whichever screen is active.
func (m *Manager) Update() error {
	if m.cfg.Input.IsKeyJustPressed(render.KeyF) && m.cfg.Engine != nil {
		m.cfg.Engine.SetFullscreen(!m.cfg.Engine.IsFullscreen())
	}

	if m.cfg.Input.IsKeyJustPressed(render.KeyO) {
		m.showOptions = !m.showOptions
		if m.showOptions && m.session != nil {
			// Opening options mid-game pauses the simulation.
			m.session.SetPaused(true)
		}
		if !m.showOptions {
			m.applyOptions()
		}
	}

	if m.showOptions {
		m.optionsMenu.Update()
		if m.cfg.Sounds != nil {
			m.cfg.Sounds.SetVolume(m.cfg.Options.Volume)
		}
		return nil
	}

	switch m.state {
	case StateLevelSelect:
		if level, chosen := m.levelSelect.Update(); chosen {
			m.startSession(level)
			m.state = StatePlaying
		}
	case StatePlaying:
		if m.session != nil && m.session.Update(false) {
			m.session = nil
			m.state = StateLevelSelect
		}
	}
	return nil
}

// Draw renders the active screen with the options overlay on top.
func (m *Manager) Draw(screen render.Image) {
	switch m.state {
	case StateLevelSelect:
		m.levelSelect.Draw(screen)
	case StatePlaying:
		if m.session != nil {
			m.session.Draw(screen)
		}
	}

	if m.showOptions {
		m.optionsMenu.Draw(screen)
	}
}

// Layout reports the fixed logical screen size; the engine letterboxes
// it into the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return entity.ScreenWidth, entity.ScreenHeight
}

func (m *Manager) startSession(level int) {
	w := world.New(m.cfg.Rules, level, m.cfg.Rand)
	m.session = NewSession(m.cfg.Renderer, m.cfg.Input, w, m.gameHUD, m.cfg.Sounds, m.cfg.Options, m.cfg.Sheets, m.cfg.Background)
}

// applyOptions persists the settings and pushes them into the running
// systems when the overlay closes.
func (m *Manager) applyOptions() {
	if m.cfg.Sounds != nil {
		m.cfg.Sounds.SetVolume(m.cfg.Options.Volume)
	}
	m.cfg.Options.Language = m.cfg.Locale.Language().String()
	if m.cfg.OptionsPath != "" {
		if err := m.cfg.Options.Save(m.cfg.OptionsPath); err != nil {
			log.Printf("Failed to save options: %v", err)
		}
	}
}
