package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinTablesComplete(t *testing.T) {
	s := New(LangEnglish)

	keys := []Key{
		KeyGameTitle, KeyGameSubtitle, KeyGameInstructions, KeySelectLevel,
		KeyLevel1Desc, KeyLevel2Desc, KeyLevel3Desc, KeyPressOptions,
		KeyOptions, KeyShowBreakdown, KeyAllowNegative, KeyMusicVolume,
		KeyLanguage, KeyCloseOptions, KeyScore, KeyLevel, KeyPaused,
		KeyPressResume, KeyOutOfAmmo,
		KeyLangEnglish, KeyLangPolish, KeyLangUkrainian,
	}
	for _, lang := range Languages() {
		s.SetLanguage(lang)
		for _, key := range keys {
			if s.Get(key) == "" {
				t.Errorf("language %d has no text for %s", lang, key)
			}
		}
	}
}

func TestSetLanguageSwitchesText(t *testing.T) {
	s := New(LangEnglish)
	english := s.Get(KeyScore)

	s.SetLanguage(LangPolish)
	if s.Language() != LangPolish {
		t.Fatalf("language = %d, want Polish", s.Language())
	}
	if got := s.Get(KeyScore); got == english {
		t.Errorf("Polish score label equals English one: %q", got)
	}
}

func TestSetLanguageRejectsOutOfRange(t *testing.T) {
	s := New(LangUkrainian)
	s.SetLanguage(Language(99))
	if s.Language() != LangUkrainian {
		t.Errorf("language = %d, want unchanged", s.Language())
	}
	s.SetLanguage(Language(-1))
	if s.Language() != LangUkrainian {
		t.Errorf("language = %d, want unchanged", s.Language())
	}
}

func TestGetFallsBackToEnglish(t *testing.T) {
	s := New(LangPolish)
	delete(s.translations[LangPolish], KeyPaused)

	if got := s.Get(KeyPaused); got != s.translations[LangEnglish][KeyPaused] {
		t.Errorf("Get = %q, want English fallback", got)
	}
	if got := s.Get(Key("NO_SUCH_KEY")); got != "" {
		t.Errorf("Get unknown key = %q, want empty", got)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	data := `{
		"English": {"SCORE": "Points"},
		"Klingon": {"SCORE": "ignored"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(LangEnglish)
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := s.Get(KeyScore); got != "Points" {
		t.Errorf("Get = %q, want override", got)
	}
	// Untouched entries survive the merge.
	if got := s.Get(KeyLevel); got == "" {
		t.Error("built-in entry lost during merge")
	}
}

func TestLoadFileMissingIsFine(t *testing.T) {
	s := New(LangEnglish)
	if err := s.LoadFile("/nonexistent/translations.json"); err != nil {
		t.Errorf("LoadFile: %v", err)
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := New(LangEnglish).LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLanguageName(t *testing.T) {
	s := New(LangEnglish)
	if got := s.LanguageName(LangPolish); got != "Polski" {
		t.Errorf("LanguageName = %q, want Polski", got)
	}
	if got := s.LanguageName(Language(99)); got != "Unknown" {
		t.Errorf("LanguageName = %q, want Unknown", got)
	}
}
