// Package analytics contiene los reportes financieros por período y el resumen
// del dashboard de la botica.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/application/sales"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/report"
	"github.com/jhoicas/botica-api/internal/domain/repository"
	"github.com/jhoicas/botica-api/pkg/logger"
)

// ReportUseCase arma los reportes diario, semanal, mensual y anual.
//
// Las ventas se leen ya acotadas al período desde el repositorio y se agregan
// en memoria con report.Aggregate. El resultado se guarda en ReportCache hasta
// que llega una notificación de cambio en ventas.
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	cache    ReportCache
	pdf      ReportPDFGenerator
	log      *logger.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso. cache y pdf pueden ser nil.
func NewReportUseCase(saleRepo repository.SaleRepository, cache ReportCache, pdf ReportPDFGenerator, loc *time.Location, log *logger.Logger) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		saleRepo: saleRepo,
		cache:    cache,
		pdf:      pdf,
		log:      log.Component("reportes"),
		loc:      loc,
		now:      time.Now,
	}
}

// Generate interpreta tipo y fecha tal como llegan por query string y arma el reporte.
// Un tipo desconocido devuelve ErrInvalidReportKind.
func (uc *ReportUseCase) Generate(ctx context.Context, kind, anchor string) (*dto.ReportResponse, error) {
	k, err := report.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	at, err := report.ParseAnchor(k, anchor, uc.now().In(uc.loc))
	if err != nil {
		return nil, err
	}
	return uc.Build(ctx, k, at)
}

// Build arma el reporte del período que contiene anchor.
func (uc *ReportUseCase) Build(ctx context.Context, kind report.Kind, anchor time.Time) (*dto.ReportResponse, error) {
	in, err := report.ResolveRange(kind, anchor.In(uc.loc))
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, kind, in.Start)
		if err != nil {
			uc.log.Warn().Err(err).Str("tipo", string(kind)).Msg("cache de reportes no disponible")
		} else if ok {
			return cached, nil
		}
	}

	list, err := uc.saleRepo.ListBetween(ctx, in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: %w", kind, err)
	}
	resp := buildResponse(kind, in, list)
	if resp.SkippedRecords > 0 {
		uc.log.Warn().Int("omitidos", resp.SkippedRecords).Str("tipo", string(kind)).Msg("ventas con datos inválidos omitidas del reporte")
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, kind, in.Start, resp); err != nil {
			uc.log.Warn().Err(err).Str("tipo", string(kind)).Msg("no se pudo guardar el reporte en cache")
		}
	}
	return resp, nil
}

// PDF arma el reporte y lo exporta. Devuelve también el nombre sugerido del archivo.
func (uc *ReportUseCase) PDF(ctx context.Context, kind, anchor string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("reportes: generador de PDF no configurado")
	}
	r, err := uc.Generate(ctx, kind, anchor)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.Render(r)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: pdf: %w", err)
	}
	name := fmt.Sprintf("reporte_%s_%s.pdf", r.Kind, r.Start.Format("2006-01-02"))
	return b, name, nil
}

// Invalidate descarta los reportes en cache. Se llama tras registrar una venta
// y al recibir NOTIFY de la tabla ventas.
func (uc *ReportUseCase) Invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la cache de reportes")
		return
	}
	uc.log.Debug().Msg("cache de reportes invalidada")
}

var _ sales.ChangeNotifier = (*ReportUseCase)(nil)

func buildResponse(kind report.Kind, in report.Interval, list []*entity.Sale) *dto.ReportResponse {
	sum := report.Aggregate(list, in)

	top := make([]dto.TopProductDTO, 0, len(sum.TopProducts))
	for _, p := range sum.TopProducts {
		top = append(top, dto.TopProductDTO{Name: p.Name, Quantity: p.Quantity})
	}
	return &dto.ReportResponse{
		Kind:             string(kind),
		Title:            report.Title(kind, in),
		Start:            in.Start,
		End:              in.End,
		TotalRevenue:     sum.TotalRevenue,
		TotalCost:        sum.TotalCost,
		TotalProfit:      sum.TotalProfit,
		Cash:             sum.ByPaymentMethod[entity.PaymentCash],
		Transfer:         sum.ByPaymentMethod[entity.PaymentTransfer],
		ByPaymentMethod:  sum.ByPaymentMethod,
		TransactionCount: sum.TransactionCount,
		TopProducts:      top,
		SkippedRecords:   sum.SkippedRecords,
		Sales:            sales.ToSaleResponses(report.Filter(list, in)),
	}
}
