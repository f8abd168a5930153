package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/chalkfire/skymath/internal/atlas"
	"github.com/chalkfire/skymath/internal/audio"
	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/game"
	"github.com/chalkfire/skymath/internal/locale"
	"github.com/chalkfire/skymath/internal/options"
	"github.com/chalkfire/skymath/internal/render"
	ebitenrender "github.com/chalkfire/skymath/internal/render/ebiten"
	"github.com/chalkfire/skymath/internal/world"
)

func main() {
	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	// Player settings persist between runs; missing file means defaults.
	opts, err := options.Load("options.json")
	if err != nil {
		log.Printf("Warning: Failed to load options: %v", err)
		opts = options.Default()
	}

	startLang := locale.LangPolish
	if lang, ok := locale.ParseLanguage(opts.Language); ok {
		startLang = lang
	}
	loc := locale.New(startLang)
	if err := loc.LoadFile("translations.json"); err != nil {
		log.Printf("Warning: Failed to load translations: %v", err)
	}

	rules, err := world.LoadRules("rules.json")
	if err != nil {
		log.Fatalf("Failed to load game rules: %v", err)
	}

	sounds := audio.NewMixer("assets/sounds")
	sounds.SetVolume(opts.Volume)

	// Sprite sheets are optional; the game falls back to flat shapes
	// for anything that fails to load.
	sheets := atlas.NewManager()
	for _, configPath := range []string{"assets/drone.json", "assets/gepard.json"} {
		if err := sheets.LoadSheetConfig(loader, configPath); err != nil {
			log.Printf("Warning: Failed to load sprite sheet %s: %v", configPath, err)
		}
	}

	background := loadOptionalImage(loader, "assets/background.png")
	flags := [3]render.Image{
		loadOptionalImage(loader, "assets/flag_en.png"),
		loadOptionalImage(loader, "assets/flag_pl.png"),
		loadOptionalImage(loader, "assets/flag_ua.png"),
	}

	manager := game.NewManager(game.Config{
		Renderer:    renderer,
		Input:       inputMgr,
		Engine:      engine,
		Rules:       rules,
		Options:     opts,
		OptionsPath: "options.json",
		Locale:      loc,
		Sounds:      sounds,
		Sheets:      sheets,
		Background:  background,
		Flags:       flags,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	// Set up the window
	engine.SetWindowSize(entity.ScreenWidth, entity.ScreenHeight)
	engine.SetWindowTitle("Sky Over Kharkiv")
	engine.SetWindowResizable(true)

	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}

func loadOptionalImage(loader render.ResourceLoader, path string) render.Image {
	img, err := loader.LoadImage(path)
	if err != nil {
		log.Printf("Warning: Failed to load image %s: %v", path, err)
		return nil
	}
	return img
}
