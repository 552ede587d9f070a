package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/botica-api/pkg/logger"
)

func TestNew_ProduccionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	log.Component("ventas").Info().Str("venta_id", "v-1").Msg("venta registrada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ventas", entry["component"])
	assert.Equal(t, "v-1", entry["venta_id"])
	assert.Equal(t, "venta registrada", entry["message"])
}

func TestNew_NivelFiltraMensajes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}

func TestNop_NoFalla(t *testing.T) {
	log := logger.Nop()
	log.Error().Msg("descartado")
	log.Component("x").Debug().Msg("descartado")
}
