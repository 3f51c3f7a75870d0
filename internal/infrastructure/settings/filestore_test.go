package settings

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFileStore_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_settings.json")

	store, err := NewFileStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	got := store.Get()
	if got.Language != "sv" || got.Theme != "light" {
		t.Errorf("defaults = %+v", got)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file should exist after first load: %v", err)
	}
}

func TestFileStore_UpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_settings.json")

	store, err := NewFileStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	_, err = store.Update(func(s *setting.AppSettings) {
		s.Language = "en"
		s.Theme = "dark"
		s.KeyPricing["ASSA_Twin"] = 125.50
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// A fresh store reads the persisted state back.
	reloaded, err := NewFileStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() reload error = %v", err)
	}

	got := reloaded.Get()
	if got.Language != "en" || got.Theme != "dark" {
		t.Errorf("reloaded settings = %+v", got)
	}
	if got.KeyPricing["ASSA_Twin"] != 125.50 {
		t.Errorf("KeyPricing = %v", got.KeyPricing)
	}
}

func TestFileStore_NotifiesObservers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_settings.json")

	store, err := NewFileStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	var seen []string
	store.Subscribe(func(s setting.AppSettings) {
		seen = append(seen, s.Language)
	})

	for _, lang := range []string{"en", "sv"} {
		lang := lang
		if _, err := store.Update(func(s *setting.AppSettings) { s.Language = lang }); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	if len(seen) != 2 || seen[0] != "en" || seen[1] != "sv" {
		t.Errorf("observer saw %v, want [en sv]", seen)
	}
}

func TestFileStore_GetReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_settings.json")

	store, err := NewFileStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	snapshot := store.Get()
	snapshot.KeyPricing["tampered"] = 1

	if _, ok := store.Get().KeyPricing["tampered"]; ok {
		t.Error("Get() must not expose internal state")
	}
}
