package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/botica-api/pkg/logger"
)

const (
	listenRetryMin = 2 * time.Second
	listenRetryMax = 30 * time.Second
)

// ChangeHandler recibe cada notificación (canal y operación INSERT/UPDATE/DELETE).
type ChangeHandler func(ctx context.Context, channel, payload string)

// ChangeListener escucha LISTEN/NOTIFY de PostgreSQL sobre una conexión dedicada del pool
// y reconecta con espera creciente si la conexión se cae.
type ChangeListener struct {
	pool     *pgxpool.Pool
	channels []string
	handler  ChangeHandler
	log      *logger.Logger
}

// NewChangeListener construye el listener para los canales indicados.
func NewChangeListener(pool *pgxpool.Pool, log *logger.Logger, handler ChangeHandler, channels ...string) *ChangeListener {
	if log == nil {
		log = logger.Nop()
	}
	return &ChangeListener{pool: pool, channels: channels, handler: handler, log: log}
}

// Run bloquea hasta que ctx se cancela.
func (l *ChangeListener) Run(ctx context.Context) {
	wait := listenRetryMin
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		l.log.Warn().Err(err).Dur("reintento", wait).Msg("listener de cambios desconectado")
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait *= 2
		if wait > listenRetryMax {
			wait = listenRetryMax
		}
	}
}

func (l *ChangeListener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer func() {
		cleanup, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = conn.Exec(cleanup, "UNLISTEN *")
		conn.Release()
	}()

	for _, ch := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			return fmt.Errorf("listen %s: %w", ch, err)
		}
	}
	l.log.Info().Strs("canales", l.channels).Msg("escuchando cambios")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("wait notification: %w", err)
		}
		l.log.Debug().Str("canal", n.Channel).Str("op", n.Payload).Msg("cambio recibido")
		l.handler(ctx, n.Channel, n.Payload)
	}
}
