package setting

// Observer is notified after every successful settings update with a
// copy of the new state. Observers replace the ad hoc change signals
// of earlier versions; registration is explicit.
type Observer func(AppSettings)

// Store loads and persists application settings.
type Store interface {
	// Get returns a copy of the current settings.
	Get() AppSettings

	// Update applies fn to the current settings and persists the
	// result atomically, then notifies observers.
	Update(fn func(*AppSettings)) (AppSettings, error)

	// Subscribe registers an observer for settings changes.
	Subscribe(obs Observer)
}
