package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "luxora", cfg.App.Name)
	require.Equal(t, ":8080", cfg.App.HTTPAddr)
	require.Equal(t, ":9090", cfg.App.MetricsAddr)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().App.HTTPAddr, cfg.App.HTTPAddr)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LUXORA_APP__HTTP_ADDR", ":18080")
	t.Setenv("LUXORA_REDIS__ADDR", "localhost:6379")
	t.Setenv("LUXORA_LEDGER__KEY", "luxora:orders:test")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, ":18080", cfg.App.HTTPAddr)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, "luxora:orders:test", cfg.Ledger.Key)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.yaml")
	raw := []byte(`
app:
  name: luxora-test
  http_addr: ":28080"
postgres:
  dsn: "postgres://localhost/luxora"
ledger:
  ttl: 24h
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "luxora-test", cfg.App.Name)
	require.Equal(t, ":28080", cfg.App.HTTPAddr)
	require.Equal(t, "postgres://localhost/luxora", cfg.Postgres.DSN)
	require.Equal(t, 24*time.Hour, cfg.Ledger.TTL)
	// Не заданные в файле поля сохраняют дефолты.
	require.Equal(t, ":9090", cfg.App.MetricsAddr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/config.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.HTTPAddr = ""
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.App.MetricsAddr = ""
	require.Error(t, cfg.Validate())
}
