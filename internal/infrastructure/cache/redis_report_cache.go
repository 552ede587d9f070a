// Package cache guarda reportes calculados en Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/botica-api/internal/application/analytics"
	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/report"
)

const (
	keyPrefix     = "botica:reporte"
	generationKey = keyPrefix + ":gen"
	defaultTTL    = 5 * time.Minute
)

var _ analytics.ReportCache = (*RedisReportCache)(nil)

// RedisReportCache guarda cada reporte bajo una clave que incluye un contador de
// generación. Invalidar incrementa el contador: las claves anteriores dejan de
// leerse y expiran solas por TTL.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache crea el cliente Redis.
func NewRedisReportCache(addr, password string, db int, ttl time.Duration) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisReportCacheWithClient(client, ttl)
}

// NewRedisReportCacheWithClient usa un cliente existente.
func NewRedisReportCacheWithClient(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

// Ping verifica la conexión.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// Get lee el reporte de la generación vigente.
func (c *RedisReportCache) Get(ctx context.Context, kind report.Kind, start time.Time) (*dto.ReportResponse, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, false, err
	}
	val, err := c.client.Get(ctx, reportKey(gen, kind, start)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}

	var resp dto.ReportResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, false, fmt.Errorf("cache: decode: %w", err)
	}
	return &resp, true, nil
}

// Set guarda el reporte en la generación vigente.
func (c *RedisReportCache) Set(ctx context.Context, kind report.Kind, start time.Time, r *dto.ReportResponse) error {
	if r == nil {
		return nil
	}
	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	return c.client.Set(ctx, reportKey(gen, kind, start), payload, c.ttl).Err()
}

// Invalidate pasa a una nueva generación.
func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("cache: invalidate: %w", err)
	}
	return nil
}

func (c *RedisReportCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache: generación: %w", err)
	}
	return gen, nil
}

func reportKey(gen int64, kind report.Kind, start time.Time) string {
	return fmt.Sprintf("%s:%d:%s:%d", keyPrefix, gen, kind, start.Unix())
}
