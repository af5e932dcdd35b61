package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// HandsConfig stores which hands the learner practices by default
type HandsConfig struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// MIDIConfig defines the MIDI ports to use
type MIDIConfig struct {
	InputPort  string `json:"inputPort,omitempty"`  // empty: first detected keyboard
	OutputPort string `json:"outputPort,omitempty"` // empty: first available output
	Channel    uint8  `json:"channel,omitempty"`
}

// LessonConfig stores playback preferences
type LessonConfig struct {
	SplitPoint uint8  `json:"splitPoint,omitempty"` // hand fallback boundary
	RewindMs   int64  `json:"rewindMs,omitempty"`   // rewind jump size
	LastFile   string `json:"lastFile,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	MIDI    MIDIConfig   `json:"midi,omitempty"`
	Hands   HandsConfig  `json:"hands"`
	Lesson  LessonConfig `json:"lesson,omitempty"`
	Palette string       `json:"palette,omitempty"` // path to a .gpl file
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Hands: HandsConfig{Left: true, Right: true},
		Lesson: LessonConfig{
			SplitPoint: 60,
			RewindMs:   5000,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pianestro"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
