package cache

import (
	"context"
	"time"

	"github.com/jhoicas/botica-api/internal/application/analytics"
	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/report"
)

var _ analytics.ReportCache = Noop{}

// Noop cache desactivada (REDIS_ADDR vacío): nunca encuentra nada.
type Noop struct{}

func (Noop) Get(context.Context, report.Kind, time.Time) (*dto.ReportResponse, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, report.Kind, time.Time, *dto.ReportResponse) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }
