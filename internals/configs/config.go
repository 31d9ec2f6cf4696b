package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres | sqlite
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"` // sqlite file
}

type Config struct {
	Server struct {
		Port         string   `yaml:"port"`
		CorsOrigins  []string `yaml:"cors_origins"`
		RateLimitMax int      `yaml:"rate_limit_max"`
	} `yaml:"server"`
	Database       DatabaseConfig `yaml:"database"`
	PruneMode      string         `yaml:"prune_mode"`
	NewEnvironment bool           `yaml:"new_environment"`
	LogLevel       string         `yaml:"log_level"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = "3000"
	cfg.Server.CorsOrigins = []string{"http://localhost:5173"}
	cfg.Server.RateLimitMax = 100
	cfg.Database.Driver = "postgres"
	cfg.Database.SSLMode = "require"
	cfg.Database.Path = "quizku.db"
	cfg.PruneMode = "threshold"
	cfg.LogLevel = "info"
	return cfg
}

// =======================
// LOADER
// =======================

// Load builds the config from defaults, then the optional YAML file, then the
// environment (.env is loaded first when present and never overrides real env).
func Load(yamlPath string) (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file, using system environment")
		} else {
			slog.Info(".env file loaded")
		}
	}

	cfg := defaults()

	if yamlPath == "" {
		yamlPath = GetEnv("QUIZ_CONFIG_FILE")
	}
	if yamlPath != "" {
		if err := loadYAML(yamlPath, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("config file close failed", "err", err)
		}
	}()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Database.Path, "DB_PATH")
	setString(&cfg.PruneMode, "QUIZ_PRUNE_MODE")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v := GetEnv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CorsOrigins = origins
	}
	if v := GetEnv("RATE_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitMax = n
		} else {
			slog.Warn("RATE_LIMIT_MAX is not an integer, keeping default", "value", v)
		}
	}
	if v := GetEnv("NEW_ENVIRONMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NewEnvironment = b
		}
	}
}

func (c *Config) validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	c.PruneMode = strings.ToLower(strings.TrimSpace(c.PruneMode))
	switch c.PruneMode {
	case "threshold", "exact":
	default:
		return fmt.Errorf("unsupported QUIZ_PRUNE_MODE %q", c.PruneMode)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
