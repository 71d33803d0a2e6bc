package entity

// EntityID is a unique identifier for a spawned entity.
// IDs are handed out by a spawner in increasing order and never reused by it.
type EntityID uint32

// Settings are the player-facing toggles owned by the host
type Settings struct {
	SoundEnabled  bool `toml:"sound_enabled"`
	ReducedMotion bool `toml:"reduced_motion"`
}

// DefaultSettings returns the settings used when nothing has been saved yet
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:  true,
		ReducedMotion: false,
	}
}
