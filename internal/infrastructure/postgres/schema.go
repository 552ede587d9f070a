package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Canales LISTEN/NOTIFY emitidos por los triggers del esquema.
const (
	ChannelSales    = "ventas_changes"
	ChannelProducts = "medicamentos_changes"
)

// ApplySchema crea tablas, índices y triggers si no existen.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
