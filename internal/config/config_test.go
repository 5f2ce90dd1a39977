package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:3000", cfg.Server.Addr)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "data/kob.db", cfg.Database.Path)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 6, cfg.Auth.MinPasswordLength)
	require.Equal(t, 13, cfg.Game.Size)
	require.Equal(t, 20, cfg.Game.InnerWalls)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KOB_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("KOB_DATABASE_DRIVER", "postgres")
	t.Setenv("KOB_DATABASE_DSN", "postgres://kob@localhost/kob")
	t.Setenv("KOB_AUTH_MINPASSWORDLENGTH", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "postgres://kob@localhost/kob", cfg.Database.DSN)
	require.Equal(t, 8, cfg.Auth.MinPasswordLength)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KOB_DATABASE_DRIVER", "mysql")

	_, err := Load()
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestValidate_PostgresNeedsDSN(t *testing.T) {
	var cfg Config
	cfg.Database.Driver = DriverPostgres
	require.ErrorContains(t, cfg.Validate(), "dsn is required")
}

func TestValidate_GameSize(t *testing.T) {
	var cfg Config
	cfg.Database.Driver = DriverSQLite
	cfg.Database.Path = "kob.db"
	cfg.Game.Size = 3
	require.ErrorContains(t, cfg.Validate(), "game size")

	cfg.Game.Size = 13
	cfg.Game.InnerWalls = -1
	require.ErrorContains(t, cfg.Validate(), "inner walls")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\n\nKOB_TEST_DOTENV_A=\"quoted\"\nKOB_TEST_DOTENV_B=plain\nKOB_TEST_DOTENV_C=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("KOB_TEST_DOTENV_C", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("KOB_TEST_DOTENV_A")
		os.Unsetenv("KOB_TEST_DOTENV_B")
	})

	require.NoError(t, loadDotEnv(path))

	require.Equal(t, "quoted", os.Getenv("KOB_TEST_DOTENV_A"))
	require.Equal(t, "plain", os.Getenv("KOB_TEST_DOTENV_B"))
	require.Equal(t, "from-env", os.Getenv("KOB_TEST_DOTENV_C"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoad_ReadsDotEnvInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KOB_SERVER_ADDR=127.0.0.1:4000\n"), 0o600))
	// t.Setenv restores the original value after the test
	t.Setenv("KOB_SERVER_ADDR", "")
	require.NoError(t, os.Unsetenv("KOB_SERVER_ADDR"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:4000", cfg.Server.Addr)
}
