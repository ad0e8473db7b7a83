// Package config loads vidda's API credentials and user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/mmcdole/vidda/internal/domain"
)

const (
	// APIConfigFile is the name of the credentials file.
	APIConfigFile = "APIConfig.json"

	envPrefix = "VIDDA"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"-"`
	Store   StoreConfig   `mapstructure:"store"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Player  PlayerConfig  `mapstructure:"player"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the remote endpoints and keys read from APIConfig.json
type APIConfig struct {
	TMDBBaseURL      string `mapstructure:"tmdbBaseURL"`
	TMDBAPIKey       string `mapstructure:"tmdbAPIKey"`
	YouTubeBaseURL   string `mapstructure:"youtubeBaseURL"`   // embed/watch prefix for playback
	YouTubeAPIKey    string `mapstructure:"youtubeAPIKey"`
	YouTubeSearchURL string `mapstructure:"youtubeSearchURL"` // Data API root
}

// StoreConfig holds saved-title storage configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty keeps saved titles in memory
}

// HTTPConfig holds remote client configuration
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second, 0 = unlimited
}

// PlayerConfig holds trailer player configuration
type PlayerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// SearchConfig holds search behaviour settings
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Options controls where LoadConfig looks.
type Options struct {
	// ConfigDir holds config.yaml and, as a fallback, APIConfig.json.
	// Defaults to DefaultConfigDir.
	ConfigDir string

	// APIConfigPath overrides the APIConfig.json lookup.
	APIConfigPath string

	// EnvFile is loaded into the environment before reading settings. Defaults to ".env".
	EnvFile string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(defaultDataDir(), "vidda.db"),
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			RateLimit: 20,
		},
		Player: PlayerConfig{
			Args: []string{},
		},
		Search: SearchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataDir(), "vidda.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// defaultDataDir returns the default data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "vidda")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vidda")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vidda")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vidda")
	}
}

// LoadConfig loads settings from config.yaml and the environment, then the
// API credentials. Missing or malformed credentials wrap domain.ErrMissingConfig.
func LoadConfig(fs afero.Fs, opts Options) (*Config, error) {
	if opts.ConfigDir == "" {
		opts.ConfigDir = DefaultConfigDir()
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	if err := loadEnvFile(fs, opts.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := loadSettings(fs, opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	apiPath := opts.APIConfigPath
	if apiPath == "" {
		apiPath = findAPIConfig(fs, opts.ConfigDir)
	}
	api, err := LoadAPIConfig(fs, apiPath)
	if err != nil {
		return nil, err
	}
	cfg.API = *api
	return cfg, nil
}

// loadEnvFile sets variables from path that are not already in the environment.
func loadEnvFile(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error opening env file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("error parsing env file %s: %w", path, err)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); !set {
			os.Setenv(k, v)
		}
	}
	return nil
}

func loadSettings(fs afero.Fs, dir string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	// Environment variable overrides, e.g. VIDDA_HTTP_TIMEOUT=10s
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"store.path", "http.timeout", "http.rate_limit", "player.command", "player.args",
		"search.debounce", "logging.file", "logging.level", "logging.max_size_mb", "logging.max_backups",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// findAPIConfig prefers APIConfig.json in the working directory over the config dir.
func findAPIConfig(fs afero.Fs, dir string) string {
	if ok, _ := afero.Exists(fs, APIConfigFile); ok {
		return APIConfigFile
	}
	return filepath.Join(dir, APIConfigFile)
}

// LoadAPIConfig reads the credentials file at path.
func LoadAPIConfig(fs afero.Fs, path string) (*APIConfig, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrMissingConfig, path, err)
	}

	var api APIConfig
	if err := v.Unmarshal(&api); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrMissingConfig, path, err)
	}
	if err := api.Validate(); err != nil {
		return nil, err
	}
	return &api, nil
}

// Validate reports every empty field as a missing-config error.
func (a APIConfig) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"tmdbBaseURL":      a.TMDBBaseURL,
		"tmdbAPIKey":       a.TMDBAPIKey,
		"youtubeBaseURL":   a.YouTubeBaseURL,
		"youtubeAPIKey":    a.YouTubeAPIKey,
		"youtubeSearchURL": a.YouTubeSearchURL,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: empty %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
}

// TMDBAPIRoot returns the versioned TMDB API root. A configured host without
// a version segment gets "/3" appended.
func (a APIConfig) TMDBAPIRoot() string {
	base := strings.TrimRight(a.TMDBBaseURL, "/")
	if strings.HasSuffix(base, "/3") {
		return base
	}
	return base + "/3"
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
