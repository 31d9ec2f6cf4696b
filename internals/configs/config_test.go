package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAMLThenEnv(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
  rate_limit_max: 10
database:
  driver: sqlite
  path: /tmp/quiz.db
prune_mode: exact
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.RateLimitMax)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/quiz.db", cfg.Database.Path)
	assert.Equal(t, "exact", cfg.PruneMode)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CorsOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownPruneMode(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("QUIZ_PRUNE_MODE", "sometimes")

	_, err := Load("")
	assert.Error(t, err)
}

func TestGetEnv_Default(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("QUIZKU_SURELY_UNSET_KEY", "fallback"))
}
