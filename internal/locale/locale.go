// Package locale provides the UI translation tables. English, Polish and
// Ukrainian ship built in; a translations file can override any entry.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
)

// Language identifies one of the shipped languages.
type Language int

const (
	LangEnglish Language = iota
	LangPolish
	LangUkrainian

	languageCount
)

// Languages returns all selectable languages in display order.
func Languages() []Language {
	return []Language{LangEnglish, LangPolish, LangUkrainian}
}

// Key identifies one translatable string. Keys double as the field names
// in the translations file.
type Key string

// Translation keys.
const (
	// Level select
	KeyGameTitle        Key = "GAME_TITLE"
	KeyGameSubtitle     Key = "GAME_SUBTITLE"
	KeyGameInstructions Key = "GAME_INSTRUCTIONS"
	KeySelectLevel      Key = "SELECT_LEVEL"
	KeyLevel1Desc       Key = "LEVEL_1_DESC"
	KeyLevel2Desc       Key = "LEVEL_2_DESC"
	KeyLevel3Desc       Key = "LEVEL_3_DESC"
	KeyPressOptions     Key = "PRESS_OPTIONS"

	// Options menu
	KeyOptions       Key = "OPTIONS"
	KeyShowBreakdown Key = "SHOW_BREAKDOWN"
	KeyAllowNegative Key = "ALLOW_NEGATIVE"
	KeyMusicVolume   Key = "MUSIC_VOLUME"
	KeyLanguage      Key = "LANGUAGE"
	KeyCloseOptions  Key = "CLOSE_OPTIONS"

	// In-game
	KeyScore Key = "SCORE"
	KeyLevel Key = "LEVEL"

	// Pause
	KeyPaused      Key = "PAUSED"
	KeyPressResume Key = "PRESS_RESUME"

	// Game over
	KeyOutOfAmmo Key = "OUT_OF_AMMO"

	// Language names
	KeyLangEnglish   Key = "LANG_ENGLISH"
	KeyLangPolish    Key = "LANG_POLISH"
	KeyLangUkrainian Key = "LANG_UKRAINIAN"
)

// Table maps keys to translated strings for one language.
type Table map[Key]string

// System holds the loaded translations and the active language.
type System struct {
	translations map[Language]Table
	current      Language
}

// New creates a localization system with the built-in translations and
// the given starting language.
func New(defaultLang Language) *System {
	s := &System{
		translations: map[Language]Table{
			LangEnglish:   builtinEnglish(),
			LangPolish:    builtinPolish(),
			LangUkrainian: builtinUkrainian(),
		},
	}
	s.SetLanguage(defaultLang)
	return s
}

// LoadFile merges overrides from a JSON translations file. The file maps
// language names to key/value tables; entries not present keep their
// built-in text. A missing file is not an error.
func (s *System) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read translations file: %w", err)
	}

	var overrides map[string]Table
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse translations file: %w", err)
	}

	names := map[string]Language{
		"English":   LangEnglish,
		"Polish":    LangPolish,
		"Ukrainian": LangUkrainian,
	}
	for name, table := range overrides {
		lang, ok := names[name]
		if !ok {
			continue
		}
		for key, value := range table {
			s.translations[lang][key] = value
		}
	}
	return nil
}

// SetLanguage switches the active language. Out-of-range values are
// ignored.
func (s *System) SetLanguage(lang Language) {
	if lang >= 0 && lang < languageCount {
		s.current = lang
	}
}

// Language returns the active language.
func (s *System) Language() Language {
	return s.current
}

// Get returns the translation for key in the active language, falling
// back to English, then to an empty string.
func (s *System) Get(key Key) string {
	if text, ok := s.translations[s.current][key]; ok {
		return text
	}
	if text, ok := s.translations[LangEnglish][key]; ok {
		return text
	}
	return ""
}

// String returns the English name of the language, as used in config
// files.
func (l Language) String() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangPolish:
		return "Polish"
	case LangUkrainian:
		return "Ukrainian"
	}
	return "Unknown"
}

// ParseLanguage maps a config-file language name to a Language.
func ParseLanguage(name string) (Language, bool) {
	for _, lang := range Languages() {
		if lang.String() == name {
			return lang, true
		}
	}
	return LangEnglish, false
}

// LanguageName returns the display name of a language, in that language.
func (s *System) LanguageName(lang Language) string {
	switch lang {
	case LangEnglish:
		return s.translations[LangEnglish][KeyLangEnglish]
	case LangPolish:
		return s.translations[LangPolish][KeyLangPolish]
	case LangUkrainian:
		return s.translations[LangUkrainian][KeyLangUkrainian]
	}
	return "Unknown"
}
