package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Mshel/dungeoneer/internal/game"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAppEnv     = "APP_ENV"
	EnvConfigPath = "DUNGEON_CONFIG"
	DevEnv        = "DEV"
)

type Config struct {
	// Env is resolved from APP_ENV, never from the YAML file.
	Env string `yaml:"-"`

	Actor   ActorConfig   `yaml:"actor"`
	Input   InputConfig   `yaml:"input"`
	Camera  CameraConfig  `yaml:"camera"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type ActorConfig struct {
	WalkSpeed      float64       `yaml:"walk_speed"`
	LungeSpeed     float64       `yaml:"lunge_speed"`
	AttackDuration time.Duration `yaml:"attack_duration"`
	CooldownRatio  float64       `yaml:"cooldown_ratio"`
}

type InputConfig struct {
	Left     []string      `yaml:"left"`
	Right    []string      `yaml:"right"`
	Up       []string      `yaml:"up"`
	Down     []string      `yaml:"down"`
	Attack   []string      `yaml:"attack"`
	Modifier string        `yaml:"modifier"`
	KeyHold  time.Duration `yaml:"key_hold"`
}

type CameraConfig struct {
	// Zoom 0 picks the build default (1 in DEV, 2 otherwise).
	Zoom int `yaml:"zoom"`
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	HostKeyPath         string `yaml:"host_key_path"`
	MaxConnectionsPerIP int    `yaml:"max_connections_per_ip"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Actor: ActorConfig{
			WalkSpeed:      game.DefaultWalkSpeed,
			LungeSpeed:     game.DefaultLungeSpeed,
			AttackDuration: game.DefaultAttackDuration,
			CooldownRatio:  game.DefaultCooldownRatio,
		},
		Input: InputConfig{
			Left:     []string{"left", "a"},
			Right:    []string{"right", "d"},
			Up:       []string{"up", "w"},
			Down:     []string{"down", "s"},
			Attack:   []string{" ", "space"},
			Modifier: string(game.DefaultModifier),
			KeyHold:  game.DefaultKeyHold,
		},
		Server: ServerConfig{
			Host:                "0.0.0.0",
			Port:                6996,
			HostKeyPath:         ".ssh/dungeoneer_ed25519",
			MaxConnectionsPerIP: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "dungeoneer.log",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads .env files into the process environment, skipping missing
// ones, and returns APP_ENV.
func LoadEnv(files ...string) (string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return os.Getenv(EnvAppEnv), nil
}

// FromEnvironment loads .env, then the YAML file named by DUNGEON_CONFIG, and
// validates the result.
func FromEnvironment() (*Config, error) {
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg, err := Load(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}
	cfg.Env = env
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, DevEnv)
}

// Validate reports every problem at once. Bad bindings are caught here so the
// game never starts with a direction it cannot read.
func (c *Config) Validate() error {
	var errs []error

	if c.Actor.WalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("actor.walk_speed must be positive, got %v", c.Actor.WalkSpeed))
	}
	if c.Actor.LungeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("actor.lunge_speed must be positive, got %v", c.Actor.LungeSpeed))
	}
	if c.Actor.AttackDuration <= 0 {
		errs = append(errs, fmt.Errorf("actor.attack_duration must be positive, got %v", c.Actor.AttackDuration))
	}
	if c.Actor.CooldownRatio < game.DefaultCooldownRatio {
		errs = append(errs, fmt.Errorf("actor.cooldown_ratio must be at least %v, got %v", game.DefaultCooldownRatio, c.Actor.CooldownRatio))
	}

	bindings := map[string][]string{
		"left":   c.Input.Left,
		"right":  c.Input.Right,
		"up":     c.Input.Up,
		"down":   c.Input.Down,
		"attack": c.Input.Attack,
	}
	for _, name := range []string{"left", "right", "up", "down", "attack"} {
		if len(bindings[name]) == 0 {
			errs = append(errs, fmt.Errorf("input.%s needs at least one key", name))
		}
		for _, k := range bindings[name] {
			if k == "" {
				errs = append(errs, fmt.Errorf("input.%s has an empty key", name))
			}
		}
	}
	if !game.Modifier(c.Input.Modifier).Valid() {
		errs = append(errs, fmt.Errorf("input.modifier must be alt, ctrl or shift, got %q", c.Input.Modifier))
	}
	if c.Input.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("input.key_hold must be positive, got %v", c.Input.KeyHold))
	}
	if c.Camera.Zoom < 0 {
		errs = append(errs, fmt.Errorf("camera.zoom must not be negative, got %d", c.Camera.Zoom))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Server.MaxConnectionsPerIP <= 0 {
		errs = append(errs, fmt.Errorf("server.max_connections_per_ip must be positive, got %d", c.Server.MaxConnectionsPerIP))
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) Tuning() game.Tuning {
	return game.Tuning{
		WalkSpeed:      c.Actor.WalkSpeed,
		LungeSpeed:     c.Actor.LungeSpeed,
		AttackDuration: c.Actor.AttackDuration,
		CooldownRatio:  c.Actor.CooldownRatio,
	}
}

func (c *Config) Bindings() game.Bindings {
	return game.NewBindings(c.Input.Left, c.Input.Right, c.Input.Up, c.Input.Down, c.Input.Attack)
}

func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// SceneOptions is what every new session is built from.
func (c *Config) SceneOptions(logger *log.Logger) game.SceneOptions {
	return game.SceneOptions{
		Dev:      c.IsDev(),
		Tuning:   c.Tuning(),
		Bindings: c.Bindings(),
		Modifier: game.Modifier(c.Input.Modifier),
		KeyHold:  c.Input.KeyHold,
		Zoom:     c.Camera.Zoom,
		Logger:   logger,
	}
}
