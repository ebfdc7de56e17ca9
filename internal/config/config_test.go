package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 9090
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "db.internal"
port = 5432
user = "svc"
password = "secret"
dbname = "bookings"
sslmode = "require"
max_open_conns = 10
max_idle_conns = 2
conn_max_lifetime = 120

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "test-service"
path = "/metrics"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.override")
	t.Setenv("DB_PASSWORD", "vault-secret")

	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "vault-secret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	bad := `
[server]
http_port = 0

[database]
host = "db"
dbname = "bookings"
`
	_, err := Load(writeConfig(t, bad))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	db := Database{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "bookings",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=bookings sslmode=disable",
		db.DSN())
}
