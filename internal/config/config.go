package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultAPIBaseURL     = "http://127.0.0.1:5000/api"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Edit      string `toml:"edit"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	Filter    string `toml:"filter"`
	Calendar  string `toml:"calendar"`
	Theme     string `toml:"theme"`
	Refresh   string `toml:"refresh"`
	ClearDate string `toml:"clear_date"`
	PickDate  string `toml:"pick_date"`
}

type Config struct {
	APIBaseURL    string `toml:"api_base_url"`
	Theme         string `toml:"theme"` // "light" or "dark"
	DefaultFilter string `toml:"default_filter"`
	Notifications bool   `toml:"notifications"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns the config file location, preferring the
// user config dir and falling back to the working directory.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "taskdeck", DefaultConfigFileName)
}

// LoadOrCreate reads the config, writing the defaults on first run.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.Theme != "dark" {
		cfg.Theme = "light"
	}
	return cfg, nil
}

// Save writes the config back out. The UI calls this when the theme
// toggles so the preference survives restarts.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		APIBaseURL:    DefaultAPIBaseURL,
		Theme:         "light",
		DefaultFilter: "all",
		Notifications: true,
		Keys: Keymap{
			Quit:      "q",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			Toggle:    " ",
			Delete:    "d",
			Edit:      "e",
			Confirm:   "enter",
			Cancel:    "esc",
			Filter:    "f",
			Calendar:  "c",
			Theme:     "t",
			Refresh:   "r",
			ClearDate: "x",
			PickDate:  "p",
		},
	}
}
