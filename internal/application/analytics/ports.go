package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/report"
)

// ReportCache guarda reportes ya calculados por (tipo, inicio del período).
// Get devuelve (nil, false, nil) cuando no hay entrada.
type ReportCache interface {
	Get(ctx context.Context, kind report.Kind, start time.Time) (*dto.ReportResponse, bool, error)
	Set(ctx context.Context, kind report.Kind, start time.Time, r *dto.ReportResponse) error
	// Invalidate descarta todos los reportes guardados.
	Invalidate(ctx context.Context) error
}

// ReportPDFGenerator genera el PDF de un reporte.
type ReportPDFGenerator interface {
	Render(r *dto.ReportResponse) ([]byte, error)
}
