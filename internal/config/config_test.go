package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"nextstep/athlete-api/internal/config"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	viper.Reset()

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	require.Equal(t, "nextstep", cfg.Database.Name)
	require.Equal(t, "nextstep-api", cfg.JWT.Issuer)
	require.Equal(t, 12*time.Hour, cfg.JWT.Expiration)
	require.True(t, cfg.S3.UseSSL)
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	content := `
server:
  address: ":9090"
database:
  uri: "mongodb://db:27017"
  name: "athletes"
jwt:
  secret: "file-secret"
  expiration: "1h"
auth:
  email: "athlete@example.com"
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
s3:
  bucket_name: "profile-photos"
  use_ssl: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, "athletes", cfg.Database.Name)
	require.Equal(t, "file-secret", cfg.JWT.Secret)
	require.Equal(t, time.Hour, cfg.JWT.Expiration)
	require.Equal(t, "athlete@example.com", cfg.Auth.Email)
	require.Equal(t, "profile-photos", cfg.S3.BucketName)
	require.False(t, cfg.S3.UseSSL)
	// Untouched keys keep their defaults.
	require.Equal(t, "nextstep-api", cfg.JWT.Issuer)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_ADDRESS", ":7070")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  address: \":9090\"\n"), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Address)
}
