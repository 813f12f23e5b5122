// internal/config/config.go
//
// This package handles configuration and the .parallel directory structure.
// Every directory the trick is launched from gets a .parallel/ folder that
// holds the config file and the journey log.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kingrea/parallel/internal/lockscreen"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the name of the directory we create in each project
	AppDir = ".parallel"

	ScreenLockScreen = "lockscreen"
	ScreenCalculator = "calculator"

	defaultTick       = time.Second
	defaultHintEvery  = 8 * time.Second
	defaultHistory    = 20
	maxHistory        = 500
	defaultSuitName   = "spades"
	defaultScreenName = ScreenLockScreen
)

const defaultProjectConfigYAML = `# parallel configuration
version: 1

screens:
  # Screen opened on launch: lockscreen or calculator
  default: lockscreen

lockscreen:
  # How often the clock advances the card counter.
  tick: 1s
  # How often the "swipe up" hint bounces.
  hint_every: 8s
  # Suit highlighted on the picker when the screen opens.
  default_suit: spades

calculator:
  # Number of finished formulas kept in the history panel.
  history: 20
`

// ScreensConfig selects the screen shown on launch.
type ScreensConfig struct {
	Default string `yaml:"default"`
}

// LockScreenConfig tunes the lock screen timing.
type LockScreenConfig struct {
	Tick        string `yaml:"tick"`
	HintEvery   string `yaml:"hint_every"`
	DefaultSuit string `yaml:"default_suit"`
}

// CalculatorConfig tunes the calculator screen.
type CalculatorConfig struct {
	History int `yaml:"history"`
}

// ProjectConfig models .parallel/config.yaml.
type ProjectConfig struct {
	Version    int              `yaml:"version"`
	Screens    ScreensConfig    `yaml:"screens"`
	LockScreen LockScreenConfig `yaml:"lockscreen"`
	Calculator CalculatorConfig `yaml:"calculator"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory the binary was started from
	ProjectDir string

	// AppProjectDir is ProjectDir/.parallel
	AppProjectDir string

	Project ProjectConfig
}

// InitDir creates the .parallel directory structure in the given project
// directory and writes a default config file if none exists.
//
// Structure created:
// .parallel/
// ├── config.yaml
// └── logs/        <- journey.log
func InitDir(projectDir string) error {
	appDir := filepath.Join(projectDir, AppDir)
	if err := os.MkdirAll(filepath.Join(appDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(appDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:    projectDir,
		AppProjectDir: filepath.Join(projectDir, AppDir),
		Project:       defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.AppProjectDir, "logs")
}

// JourneyLogPath returns the path of the journey log.
func (c *Config) JourneyLogPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.AppProjectDir, "config.yaml")
}

// DefaultScreen returns the screen opened on launch.
func (c *Config) DefaultScreen() string {
	return c.Project.Screens.Default
}

// TickInterval returns how often the lock screen counter advances.
func (c *Config) TickInterval() time.Duration {
	return parseDurationOr(c.Project.LockScreen.Tick, defaultTick)
}

// HintPeriod returns the swipe hint bounce period.
func (c *Config) HintPeriod() time.Duration {
	return parseDurationOr(c.Project.LockScreen.HintEvery, defaultHintEvery)
}

// DefaultSuit returns the suit preselected on the lock screen picker.
func (c *Config) DefaultSuit() lockscreen.Suit {
	suit, err := lockscreen.ParseSuit(c.Project.LockScreen.DefaultSuit)
	if err != nil {
		return lockscreen.Spades
	}
	return suit
}

// HistoryLimit returns how many finished formulas the calculator keeps.
func (c *Config) HistoryLimit() int {
	return c.Project.Calculator.History
}

// SetDefaultScreen updates the launch screen and persists the value back
// to .parallel/config.yaml.
func (c *Config) SetDefaultScreen(screen string) error {
	screen = strings.ToLower(strings.TrimSpace(screen))
	if screen == "" {
		return fmt.Errorf("config: screen is required")
	}
	if !isKnownScreen(screen) {
		return fmt.Errorf("config: unknown screen %q", screen)
	}
	c.Project.Screens.Default = screen
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Screens: ScreensConfig{Default: defaultScreenName},
		LockScreen: LockScreenConfig{
			Tick:        defaultTick.String(),
			HintEvery:   defaultHintEvery.String(),
			DefaultSuit: defaultSuitName,
		},
		Calculator: CalculatorConfig{History: defaultHistory},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.LockScreen.Tick) == "" {
		pc.LockScreen.Tick = defaultTick.String()
	}
	if strings.TrimSpace(pc.LockScreen.HintEvery) == "" {
		pc.LockScreen.HintEvery = defaultHintEvery.String()
	}
	if strings.TrimSpace(pc.LockScreen.DefaultSuit) == "" {
		pc.LockScreen.DefaultSuit = defaultSuitName
	}
	if pc.Calculator.History == 0 {
		pc.Calculator.History = defaultHistory
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Screens.Default = strings.ToLower(strings.TrimSpace(pc.Screens.Default))
	if pc.Screens.Default == "" {
		pc.Screens.Default = defaultScreenName
	}
	pc.LockScreen.Tick = strings.TrimSpace(pc.LockScreen.Tick)
	pc.LockScreen.HintEvery = strings.TrimSpace(pc.LockScreen.HintEvery)
	pc.LockScreen.DefaultSuit = strings.ToLower(strings.TrimSpace(pc.LockScreen.DefaultSuit))
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if !isKnownScreen(pc.Screens.Default) {
		return fmt.Errorf("screens.default must be '%s' or '%s'", ScreenLockScreen, ScreenCalculator)
	}
	if err := validatePositiveDuration(pc.LockScreen.Tick); err != nil {
		return fmt.Errorf("lockscreen.tick: %w", err)
	}
	if err := validatePositiveDuration(pc.LockScreen.HintEvery); err != nil {
		return fmt.Errorf("lockscreen.hint_every: %w", err)
	}
	if _, err := lockscreen.ParseSuit(pc.LockScreen.DefaultSuit); err != nil {
		return fmt.Errorf("lockscreen.default_suit: %w", err)
	}
	if pc.Calculator.History < 0 || pc.Calculator.History > maxHistory {
		return fmt.Errorf("calculator.history must be between 0 and %d", maxHistory)
	}
	return nil
}

func isKnownScreen(screen string) bool {
	return screen == ScreenLockScreen || screen == ScreenCalculator
}

func validatePositiveDuration(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.AppProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure app dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
