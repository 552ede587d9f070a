package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/report"
)

func TestReportKey(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("COT", -5*60*60))
	assert.Equal(t, "botica:reporte:0:monthly:1704085200", reportKey(0, report.Monthly, start))
	assert.NotEqual(t, reportKey(0, report.Monthly, start), reportKey(1, report.Monthly, start))
	assert.NotEqual(t, reportKey(0, report.Monthly, start), reportKey(0, report.Yearly, start))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Noop
	require.NoError(t, c.Set(ctx, report.Daily, time.Now(), &dto.ReportResponse{}))
	r, ok, err := c.Get(ctx, report.Daily, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, r)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestNewRedisReportCache_DefaultTTL(t *testing.T) {
	c := NewRedisReportCache("localhost:0", "", 0, 0)
	defer c.Close()
	assert.Equal(t, defaultTTL, c.ttl)
}
