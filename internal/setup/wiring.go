package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/povarna/aoc2022/internal/aoc2022"
	"github.com/povarna/aoc2022/internal/config"
	"github.com/povarna/aoc2022/internal/input"
	"github.com/povarna/aoc2022/internal/runner"
	"github.com/povarna/aoc2022/internal/setup/logger"
	"github.com/rs/zerolog"
)

// Options are the command line overrides applied on top of the config file
// and the environment.
type Options struct {
	ConfigPath string
	LogLevel   string
	InputFile  string
	Stdout     io.Writer
	Stderr     io.Writer
}

type Dependencies struct {
	Config   *config.Config
	Runner   *runner.Runner
	Renderer *runner.Renderer
	Logger   *zerolog.Logger
}

// LoadConfig reads the config file and applies AOC_INPUT_DIR and
// AOC_LOG_LEVEL, then the flag overrides.
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg.InputDir = getEnv("AOC_INPUT_DIR", cfg.InputDir)
	cfg.LogLevel = getEnv("AOC_LOG_LEVEL", cfg.LogLevel)
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Wire(opts Options) (*Dependencies, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	log := logger.NewConsole(cfg.LogLevel, stderr)

	var source input.Source
	if opts.InputFile != "" {
		source = input.NewStaticSource(opts.InputFile)
	} else {
		source = input.NewFileSource(cfg.InputDir, cfg.Inputs, &log)
	}

	registry := aoc2022.NewRegistry(&log)

	return &Dependencies{
		Config:   cfg,
		Runner:   runner.NewRunner(registry, source, &log),
		Renderer: runner.NewRenderer(stdout),
		Logger:   &log,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
