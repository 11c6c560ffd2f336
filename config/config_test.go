package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	assert.Equal(t, "museme", cfg.System.Appid)
	assert.Equal(t, "Asia/Seoul", cfg.System.Location)
	assert.Equal(t, 5000, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 7, cfg.Auth.TokenExpireDays)
	assert.Equal(t, 90, cfg.Auth.LogRetentionDays)
	// the log file lives in the logs dir InitDirs creates
	assert.Equal(t, filepath.Join(cfg.System.Workdir, "logs", "museme.log"), cfg.Logger.Filename)
}

func TestLoadConfigFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "museme.yml")
	content := `
system:
  workdir: /tmp/museme-test
web:
  port: 8080
auth:
  secret: file-secret
  token_expire_days: 1
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "/tmp/museme-test", cfg.System.Workdir)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
	assert.Equal(t, 1, cfg.Auth.TokenExpireDays)
	// untouched sections keep their defaults
	assert.Equal(t, "sqlite", cfg.Database.Type)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("MUSEME_WEB_PORT", "9090")
	t.Setenv("MUSEME_AUTH_SECRET", "env-secret")
	t.Setenv("MUSEME_DB_TYPE", "postgres")

	cfg := LoadConfig("")
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestInitDirs(t *testing.T) {
	cfg := LoadConfig("")
	cfg.System.Workdir = t.TempDir()
	cfg.InitDirs()

	assert.DirExists(t, filepath.Join(cfg.System.Workdir, "data"))
	assert.DirExists(t, filepath.Join(cfg.System.Workdir, "logs"))
}
