package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "America/Bogota", cfg.App.Timezone)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr, "sin REDIS_ADDR la caché queda desactivada")
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "postgres://postgres:@localhost:5432/botica?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_SobrescribeDesdeVariables(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("REPORT_CACHE_TTL_SECONDS", "60")
	v.Set("DATABASE_URL", "postgresql://u:p@db:5432/x")
	v.Set("SCHEDULER_ENABLED", false)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "postgresql://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.False(t, cfg.Scheduler.Enabled)
}

func TestFromViper_ProduccionRequiereSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ZonaHorariaInvalida(t *testing.T) {
	v := viper.New()
	v.Set("APP_TIMEZONE", "Marte/Olympus")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5432/d?sslmode=require", c.DSN())
}
