package aoc

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config selects what Run does. Whether sample or real input is used is
// decided here and nowhere else.
type Config struct {
	Year int `yaml:"year"`
	// InputDir is where puzzle inputs are cached as <year>/<day>.input.
	InputDir string `yaml:"input_dir"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// Day is the day to run; 0 runs every registered day.
	Day        int    `yaml:"day"`
	Part       string `yaml:"part"`
	OnlySample bool   `yaml:"only_sample"`
	SkipSample bool   `yaml:"skip_sample"`
	Debug      bool   `yaml:"debug"`

	Out    io.Writer    `yaml:"-"`
	Logger *slog.Logger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Year:        2022,
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		Out:         os.Stdout,
	}
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.OnlySample && c.SkipSample {
		return errors.New("only_sample and skip_sample are mutually exclusive")
	}
	if c.Day < 0 || c.Day > 25 {
		return errors.Errorf("day %d out of range", c.Day)
	}
	return nil
}
