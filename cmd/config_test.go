package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wms/cmd"
	"wms/internal/core/application/services"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminAccounts(t *testing.T) {
	admins, err := cmd.ParseAdminAccounts(" root@wms.bg|S3cret#pw|Root|Admin|0888000000 ; ops@wms.bg|Ops#pass1 ;")

	require.NoError(t, err)
	assert.Equal(t, []services.AdminAccount{
		{Email: "root@wms.bg", Password: "S3cret#pw", FirstName: "Root", LastName: "Admin", Phone: "0888000000"},
		{Email: "ops@wms.bg", Password: "Ops#pass1"},
	}, admins)
}

func TestParseAdminAccounts_EscapedSeparators(t *testing.T) {
	admins, err := cmd.ParseAdminAccounts(`root@wms.bg|Pa\|ss#Word1|Root|Admin; ops@wms.bg|Semi\;colon\\1A!`)

	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "Pa|ss#Word1", admins[0].Password)
	assert.Equal(t, "Root", admins[0].FirstName)
	assert.Equal(t, "Admin", admins[0].LastName)
	assert.Equal(t, `Semi;colon\1A!`, admins[1].Password)
}

func TestParseAdminAccounts_UnescapedPipeInPassword(t *testing.T) {
	_, err := cmd.ParseAdminAccounts("root@example.com|Pa|ss#Word1")

	require.Error(t, err)
}

func TestParseAdminAccounts_Empty(t *testing.T) {
	admins, err := cmd.ParseAdminAccounts("")

	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestParseAdminAccounts_Invalid(t *testing.T) {
	for _, raw := range []string{"only-email", "|pw", "a|b|c|d|e|f", `a@b.c|pw\`} {
		_, err := cmd.ParseAdminAccounts(raw)
		assert.Error(t, err, raw)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_HOST", "DB_SSLMODE", "PRUNE_GRACE_PERIOD", "ADMIN_ACCOUNTS", "LOG_LEVEL", "PRUNE_SCHEDULE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"HTTP_PORT=9090\nDB_HOST=db\nPRUNE_GRACE_PERIOD=2h\nLOG_LEVEL=debug\nADMIN_ACCOUNTS=root@wms.bg|S3cret#pw\n",
	), 0o600))

	config, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "db", config.DBHost)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, 2*time.Hour, config.PruneGracePeriod)
	assert.Equal(t, "0 0 3 * * *", config.PruneSchedule)
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
	assert.Equal(t, log.DEBUG, config.EchoLogLevel())
	require.Len(t, config.Admins, 1)
	assert.Contains(t, config.DSN(), "host=db")
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("PRUNE_GRACE_PERIOD", "")
	t.Setenv("ADMIN_ACCOUNTS", "")

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "7070", config.HTTPPort)
	assert.Equal(t, 24*time.Hour, config.PruneGracePeriod)
}

func TestLoadConfig_BadGracePeriod(t *testing.T) {
	t.Setenv("PRUNE_GRACE_PERIOD", "soon")
	t.Setenv("ADMIN_ACCOUNTS", "")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
}
