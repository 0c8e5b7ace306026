package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName  = "config"
	configType  = "toml"
	configDir   = "tracks"
	envPrefix   = "TRACKS"
	sessionsKey = "sessions"
	clockLayout = "15:04"
)

// Load builds the track layout from defaults, an optional TOML config file and
// TRACKS_* environment variables, in increasing precedence. An explicit path
// must exist; the default location may be absent.
func Load(cfg *viper.Viper, explicitPath string) (domain.Layout, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	applyDefaults(cfg)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := readConfigFile(cfg, explicitPath); err != nil {
		return domain.Layout{}, err
	}

	names := cfg.GetStringSlice(sessionsKey)
	layout := domain.Layout{Sessions: make([]domain.SessionSpec, 0, len(names))}
	for _, name := range names {
		spec, err := sessionSpec(cfg, strings.TrimSpace(name))
		if err != nil {
			return domain.Layout{}, err
		}
		layout.Sessions = append(layout.Sessions, spec)
	}

	if err := layout.Validate(); err != nil {
		return domain.Layout{}, err
	}

	return layout, nil
}

func applyDefaults(cfg *viper.Viper) {
	defaults := domain.DefaultLayout()
	names := make([]string, 0, len(defaults.Sessions))
	for _, spec := range defaults.Sessions {
		names = append(names, spec.Name)
		cfg.SetDefault(spec.Name+".start", formatStart(spec.Start))
		cfg.SetDefault(spec.Name+".capacity", spec.Capacity.String())
		cfg.SetDefault(spec.Name+".event", spec.Event)
	}
	cfg.SetDefault(sessionsKey, names)
}

func readConfigFile(cfg *viper.Viper, explicitPath string) error {
	if explicitPath != "" {
		cfg.SetConfigFile(explicitPath)
		cfg.SetConfigType(configType)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", explicitPath, err)
		}
		return nil
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(userConfigDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func sessionSpec(cfg *viper.Viper, name string) (domain.SessionSpec, error) {
	if name == "" {
		return domain.SessionSpec{}, fmt.Errorf("%w: session name is empty", domain.ErrInvalidLayout)
	}

	rawStart := cfg.GetString(name + ".start")
	if rawStart == "" {
		return domain.SessionSpec{}, fmt.Errorf("%w: %s.start is required", domain.ErrInvalidLayout, name)
	}
	start, err := domain.ParseClock(rawStart)
	if err != nil {
		return domain.SessionSpec{}, fmt.Errorf("%w: %s.start: %w", domain.ErrInvalidLayout, name, err)
	}

	rawCapacity := cfg.GetString(name + ".capacity")
	if rawCapacity == "" {
		return domain.SessionSpec{}, fmt.Errorf("%w: %s.capacity is required", domain.ErrInvalidLayout, name)
	}
	capacity, err := time.ParseDuration(rawCapacity)
	if err != nil {
		return domain.SessionSpec{}, fmt.Errorf("%w: %s.capacity: %w", domain.ErrInvalidLayout, name, err)
	}

	return domain.SessionSpec{
		Name:     name,
		Start:    start,
		Capacity: capacity,
		Event:    cfg.GetString(name + ".event"),
	}, nil
}

func formatStart(start time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(start).Format(clockLayout)
}
