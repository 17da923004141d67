package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-runewidth"
)

type Config struct {
	// Terminal cell size in pixels, used to size album art when the
	// terminal does not report it. Both or neither must be set.
	FontWidth  int `koanf:"font_width"`
	FontHeight int `koanf:"font_height"`

	VolumeStep int  `koanf:"volume_step"` // percent per volume keypress
	Autoclose  bool `koanf:"autoclose"`   // exit when playback stops

	ShowPlaylist *bool `koanf:"show_playlist"` // default: true
	ArtOnly      bool  `koanf:"art_only"`      // start in full-window art mode

	// Local path to the daemon's music directory, for reading embedded
	// art directly when the daemon cannot serve it.
	MusicDirectory string `koanf:"music_directory"`

	MPD      MPDConfig         `koanf:"mpd"`
	Progress ProgressConfig    `koanf:"progress"`
	Theme    map[string]string `koanf:"theme"`    // slot -> hex or "auto"
	Bindings map[string]string `koanf:"bindings"` // action -> space-separated keys

	// Last.fm scrobbling (enables scrobbling when configured)
	Lastfm LastfmConfig `koanf:"lastfm"`

	Mpris MprisConfig `koanf:"mpris"`
}

// MPDConfig holds the daemon connection settings.
type MPDConfig struct {
	Address  string `koanf:"address"`  // host:port or unix socket path
	Password string `koanf:"password"`
}

// ProgressConfig holds the progress bar glyph pair. Each glyph must occupy
// exactly one terminal cell.
type ProgressConfig struct {
	Filled string `koanf:"filled"`
	Empty  string `koanf:"empty"`
}

// LastfmConfig holds Last.fm scrobbling configuration.
type LastfmConfig struct {
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
}

// MprisConfig holds the desktop media-control bridge settings.
type MprisConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		VolumeStep: 5,
		Progress: ProgressConfig{
			Filled: "█",
			Empty:  "░",
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MusicDirectory != "" {
		cfg.MusicDirectory = expandPath(cfg.MusicDirectory)
	}

	return cfg, nil
}

// Validate rejects configurations that would corrupt the display or the
// daemon session. Called once at startup; a failure is fatal.
func (c *Config) Validate() error {
	if w := runewidth.StringWidth(c.Progress.Filled); w != 1 {
		return fmt.Errorf("progress.filled %q is %d cells wide, must be 1", c.Progress.Filled, w)
	}
	if w := runewidth.StringWidth(c.Progress.Empty); w != 1 {
		return fmt.Errorf("progress.empty %q is %d cells wide, must be 1", c.Progress.Empty, w)
	}

	if c.VolumeStep < 1 || c.VolumeStep > 100 {
		return fmt.Errorf("volume_step %d out of range, must be 1-100", c.VolumeStep)
	}

	if (c.FontWidth == 0) != (c.FontHeight == 0) {
		return fmt.Errorf("font_width and font_height must be set together")
	}
	if c.FontWidth < 0 || c.FontHeight < 0 {
		return fmt.Errorf("font dimensions cannot be negative")
	}

	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/vinyl/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "vinyl", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ShowPlaylistDefault returns whether the playlist pane starts visible.
func (c *Config) ShowPlaylistDefault() bool {
	if c.ShowPlaylist == nil {
		return true
	}
	return *c.ShowPlaylist
}

// MprisEnabled returns whether the desktop media-control bridge starts.
func (c *Config) MprisEnabled() bool {
	if c.Mpris.Enabled == nil {
		return true
	}
	return *c.Mpris.Enabled
}

// HasLastfmConfig returns true if Last.fm scrobbling is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != ""
}
