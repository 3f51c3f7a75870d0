package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/shared/logger"
)

var _ setting.Store = (*FileStore)(nil)

// FileStore persists application settings as a JSON file and notifies
// subscribers on every change. Observers replace the signal wiring the
// desktop predecessor used; services subscribe once at startup and
// react to whatever fields they care about.
type FileStore struct {
	path      string
	logger    logger.Interface
	mu        sync.RWMutex
	current   setting.AppSettings
	observers []setting.Observer
}

// NewFileStore loads settings from the given path, creating the file
// with defaults when it does not exist.
func NewFileStore(path string, log logger.Interface) (*FileStore, error) {
	store := &FileStore{
		path:   path,
		logger: log,
	}

	settings, err := store.load()
	if err != nil {
		return nil, err
	}
	store.current = settings

	return store, nil
}

func (s *FileStore) load() (setting.AppSettings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := setting.Defaults()
			if err := s.write(defaults); err != nil {
				return setting.AppSettings{}, err
			}
			return defaults, nil
		}
		return setting.AppSettings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := setting.Defaults()
	if err := json.Unmarshal(data, &settings); err != nil {
		return setting.AppSettings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

func (s *FileStore) write(settings setting.AppSettings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	return nil
}

// Get returns a copy of the current settings.
func (s *FileStore) Get() setting.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the current settings, persists the
// result and notifies subscribers. The write happens before observers
// run so a crashing observer cannot lose the change.
func (s *FileStore) Update(fn func(*setting.AppSettings)) (setting.AppSettings, error) {
	s.mu.Lock()

	updated := s.current.Clone()
	fn(&updated)

	if err := s.write(updated); err != nil {
		s.mu.Unlock()
		return setting.AppSettings{}, err
	}

	s.current = updated
	observers := make([]setting.Observer, len(s.observers))
	copy(observers, s.observers)
	snapshot := updated.Clone()
	s.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}

	s.logger.Debugw("settings updated", "path", s.path)
	return snapshot, nil
}

// Subscribe registers an observer called after every settings change.
func (s *FileStore) Subscribe(observer setting.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}
