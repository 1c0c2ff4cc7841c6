package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5000, cfg.Import.MaxRows)
}

func TestFromViper_SinSecret_RetornaError(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_StorageInvalido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ExpiracionNoPositiva(t *testing.T) {
	for _, exp := range []any{0, -5, "0"} {
		v := viper.New()
		v.Set("JWT_SECRET", "s3cret")
		v.Set("JWT_EXPIRATION_MINUTES", exp)

		_, err := fromViper(v)
		require.Error(t, err, "JWT_EXPIRATION_MINUTES=%v", exp)
		assert.Contains(t, err.Error(), "JWT_EXPIRATION_MINUTES")
	}
}

func TestFromViper_EnterosDesdeString(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("HTTP_PORT", "9090")
	v.Set("JWT_EXPIRATION_MINUTES", "no-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration, "un valor no numérico cae al default")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "datanova", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/datanova?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
