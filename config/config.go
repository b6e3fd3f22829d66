package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/window"
)

// EnvPrefix prefixes every environment override, e.g. MAYGO_FRAME_RATE.
const EnvPrefix = "MAYGO"

type Config struct {
	FrameRate float64       `yaml:"frame_rate" split_words:"true"`
	Headless  bool          `yaml:"headless" split_words:"true"`
	Log       LogConfig     `yaml:"log"`
	Audio     AudioConfig   `yaml:"audio"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	Trace       bool   `yaml:"trace"`
}

type AudioConfig struct {
	Freq    int `yaml:"freq"`
	Samples int `yaml:"samples"`
	Voices  int `yaml:"voices"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Default() *Config {
	return &Config{
		FrameRate: constant.DEFAULT_FRAME_RATE,
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Freq:    constant.AUDIO_FREQ,
			Samples: constant.AUDIO_SAMPLES,
			Voices:  constant.AUDIO_VOICES,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "maygo", "config.yaml"), nil
}

// Load layers the defaults, the YAML file at path and the environment, in
// that order. An empty path means DefaultConfigPath; a missing file at the
// default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if !(c.FrameRate > 0) || math.IsInf(c.FrameRate, 1) {
		return fmt.Errorf("frame_rate %v: %w", c.FrameRate, window.ErrInvalidFrameRate)
	}
	if c.Audio.Freq <= 0 {
		return fmt.Errorf("invalid audio.freq %d", c.Audio.Freq)
	}
	if c.Audio.Samples <= 0 {
		return fmt.Errorf("invalid audio.samples %d", c.Audio.Samples)
	}
	if c.Audio.Voices <= 0 {
		return fmt.Errorf("invalid audio.voices %d", c.Audio.Voices)
	}
	return nil
}
