// Package config loads graphstudio settings from a TOML file and
// GRAPHSTUDIO_* environment variables.
//
// Precedence, lowest first: Default(), the TOML file, the environment.
// A missing file is not an error; a malformed one is.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Duration is a time.Duration written as a string ("5s") in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds graphstudio configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Client ClientConfig `toml:"client"`
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig controls the algorithm HTTP service.
type ServerConfig struct {
	Addr           string   `toml:"addr" validate:"required"`
	AllowedOrigin  string   `toml:"allowed_origin" validate:"required"`
	RequestTimeout Duration `toml:"request_timeout" validate:"gt=0"`
	RateLimit      float64  `toml:"rate_limit" validate:"gte=0"` // requests per second on /api/run; 0 disables
	Burst          int      `toml:"burst" validate:"gte=0"`
	MaxBodyBytes   int64    `toml:"max_body_bytes" validate:"gt=0"`
}

// ClientConfig controls the remote runner used by the CLI.
type ClientConfig struct {
	BaseURL string   `toml:"base_url" validate:"required,url"`
	Timeout Duration `toml:"timeout" validate:"gt=0"`
}

// EditorConfig controls editor and playback defaults.
type EditorConfig struct {
	HistoryLimit  int      `toml:"history_limit" validate:"gte=0"` // 0 = unlimited
	PlaybackSpeed Duration `toml:"playback_speed" validate:"gt=0"`
	CurveStep     float64  `toml:"curve_step" validate:"gt=0"`
	NodeRadius    float64  `toml:"node_radius" validate:"gt=0"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":5000",
			AllowedOrigin:  "*",
			RequestTimeout: Duration(10 * time.Second),
			RateLimit:      20,
			Burst:          40,
			MaxBodyBytes:   8 << 20,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: Duration(5 * time.Second),
		},
		Editor: EditorConfig{
			HistoryLimit:  0,
			PlaybackSpeed: Duration(800 * time.Millisecond),
			CurveStep:     40,
			NodeRadius:    20,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Dir returns the graphstudio config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "graphstudio")
}

// DefaultPath returns Dir()/config.toml.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path (DefaultPath() when empty), applies the environment and
// validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path (DefaultPath() when empty), creating parent dirs.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// applyEnv overrides fields from GRAPHSTUDIO_* variables.
func (c *Config) applyEnv() error {
	c.Server.Addr = envOrDefault("GRAPHSTUDIO_SERVER_ADDR", c.Server.Addr)
	c.Server.AllowedOrigin = envOrDefault("GRAPHSTUDIO_ALLOWED_ORIGIN", c.Server.AllowedOrigin)
	c.Client.BaseURL = envOrDefault("GRAPHSTUDIO_BASE_URL", c.Client.BaseURL)
	c.Log.Level = strings.ToLower(envOrDefault("GRAPHSTUDIO_LOG_LEVEL", c.Log.Level))
	c.Log.Format = strings.ToLower(envOrDefault("GRAPHSTUDIO_LOG_FORMAT", c.Log.Format))

	durations := []struct {
		key string
		dst *Duration
	}{
		{"GRAPHSTUDIO_REQUEST_TIMEOUT", &c.Server.RequestTimeout},
		{"GRAPHSTUDIO_CLIENT_TIMEOUT", &c.Client.Timeout},
		{"GRAPHSTUDIO_PLAYBACK_SPEED", &c.Editor.PlaybackSpeed},
	}
	for _, d := range durations {
		if v := os.Getenv(d.key); v != "" {
			if err := d.dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("config: %s: %w", d.key, err)
			}
		}
	}

	if v := os.Getenv("GRAPHSTUDIO_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: GRAPHSTUDIO_RATE_LIMIT: %w", err)
		}
		c.Server.RateLimit = f
	}
	if v := os.Getenv("GRAPHSTUDIO_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: GRAPHSTUDIO_HISTORY_LIMIT: %w", err)
		}
		c.Editor.HistoryLimit = n
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
