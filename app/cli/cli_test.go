package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/app/store/sqlstore"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	flagConfig = ""
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestMigrate_SQLite(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SQLITE_PATH", "LOG_LEVEL", "LOG_FORMAT", "PORT"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	chdir(t, dir)
	dbPath := filepath.Join(dir, "tasks.db")
	cfgPath := filepath.Join(dir, "taskmanager.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_driver: sqlite\nsqlite_path: "+dbPath+"\nlog_format: json\n"), 0o644))

	_, logs, err := run(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"schema up to date"`)

	ctx := context.Background()
	s, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, sqlstore.SQLiteDSN(dbPath))
	require.NoError(t, err)
	defer s.Close(ctx)

	c, err := s.CreateCollection(ctx, "Inbox")
	require.NoError(t, err)
	assert.Positive(t, c.ID)
}

func TestServe_BadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	chdir(t, t.TempDir())

	_, _, err := run(t, "serve")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown DB_DRIVER"), err.Error())
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := run(t, "frobnicate")
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test (t.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
