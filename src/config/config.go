package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerHost    string             `yaml:"server_host"`
	Layout        models.LayoutModel `yaml:"layout"`
	DefaultPolicy models.PolicyName  `yaml:"default_policy"`
	SessionTTL    time.Duration      `yaml:"session_ttl"`
	CORSOrigins   []string           `yaml:"cors_origins"`
	LogLevel      string             `yaml:"log_level"`

	DriveCredentialsPath string `yaml:"-"`
	DriveCredentialsJSON string `yaml:"-"`
}

func Default() Config {
	return Config{
		ServerHost:    ":8080",
		Layout:        models.DefaultLayout(),
		DefaultPolicy: models.PolicyAgeAscending,
		SessionTTL:    30 * time.Minute,
		CORSOrigins:   []string{"http://localhost:8081", "http://127.0.0.1:8081"},
		LogLevel:      "info",
	}
}

// Load builds the configuration from defaults, an optional YAML layout
// profile (LAYOUT_CONFIG) and the environment, in that order. A missing .env
// file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error cargando .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("LAYOUT_CONFIG"); path != "" {
		if err := cfg.LoadProfile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadProfile overlays the YAML file at path on top of cfg. Keys absent from
// the file keep their current value.
func (c *Config) LoadProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error leyendo perfil de rack %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("perfil de rack %s inválido: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		c.ServerHost = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"BOX_CAPACITY", &c.Layout.BoxCapacity},
		{"POSITIONS_PER_LEVEL", &c.Layout.PositionsPerLevel},
		{"LEVELS_PER_RACK", &c.Layout.LevelsPerRack},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s debe ser un número entero: %w", o.env, err)
		}
		*o.dst = n
	}

	if v := os.Getenv("RACK_ID"); v != "" {
		c.Layout.RackID = v
	}
	if v := os.Getenv("DEFAULT_POLICY"); v != "" {
		c.DefaultPolicy = models.PolicyName(v)
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL inválido: %w", err)
		}
		c.SessionTTL = d
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	c.DriveCredentialsPath = os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH")
	c.DriveCredentialsJSON = os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON")
	return nil
}

func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if !c.DefaultPolicy.IsValid() {
		return fmt.Errorf("DEFAULT_POLICY %q desconocida", c.DefaultPolicy)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL debe ser positivo")
	}
	return nil
}

// DriveEnabled reports whether Drive credentials were provided.
func (c Config) DriveEnabled() bool {
	return c.DriveCredentialsPath != "" || c.DriveCredentialsJSON != ""
}

// NewLogger builds a JSON production logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL inválido: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
