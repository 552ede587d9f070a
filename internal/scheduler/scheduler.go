// Package scheduler ejecuta las tareas periódicas de la botica.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/report"
	"github.com/jhoicas/botica-api/pkg/logger"
	"github.com/jhoicas/botica-api/pkg/money"
)

const jobTimeout = 2 * time.Minute

// LowStockLister lista los medicamentos bajo el mínimo.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error)
}

// ReportBuilder arma un reporte del período que contiene anchor.
type ReportBuilder interface {
	Build(ctx context.Context, kind report.Kind, anchor time.Time) (*dto.ReportResponse, error)
}

// Config expresiones cron de 5 campos (min, hora, día, mes, día de semana).
type Config struct {
	LowStockSpec      string
	WeeklyBalanceSpec string
	Location          *time.Location
}

// Scheduler tareas programadas: alerta de stock bajo y balance semanal.
type Scheduler struct {
	cron    *cron.Cron
	cfg     Config
	stock   LowStockLister
	reports ReportBuilder
	log     *logger.Logger
	now     func() time.Time
}

// New crea el scheduler. Las tareas se evalúan en cfg.Location.
func New(cfg Config, stock LowStockLister, reports ReportBuilder, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	log = log.Component("scheduler")
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	return &Scheduler{
		cron:    c,
		cfg:     cfg,
		stock:   stock,
		reports: reports,
		log:     log,
		now:     time.Now,
	}
}

// Start registra las tareas y arranca el cron. Una expresión vacía desactiva su tarea.
func (s *Scheduler) Start() error {
	if s.cfg.LowStockSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.LowStockSpec, s.run(s.LowStockAlert)); err != nil {
			return fmt.Errorf("scheduler: LOW_STOCK_CRON %q: %w", s.cfg.LowStockSpec, err)
		}
	}
	if s.cfg.WeeklyBalanceSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.WeeklyBalanceSpec, s.run(s.WeeklyBalance)); err != nil {
			return fmt.Errorf("scheduler: WEEKLY_BALANCE_CRON %q: %w", s.cfg.WeeklyBalanceSpec, err)
		}
	}
	s.log.Info().Int("tareas", len(s.cron.Entries())).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) run(job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := job(ctx); err != nil {
			s.log.Error().Err(err).Msg("tarea programada falló")
		}
	}
}

// LowStockAlert registra una alerta por cada medicamento bajo el mínimo.
func (s *Scheduler) LowStockAlert(ctx context.Context) error {
	items, err := s.stock.LowStock(ctx)
	if err != nil {
		return fmt.Errorf("alerta de stock: %w", err)
	}
	for _, it := range items {
		s.log.Warn().
			Str("medicamento", it.Name).
			Int("stock", it.Stock).
			Int("min_stock", it.MinStock).
			Msg("stock bajo")
	}
	s.log.Info().Int("alertas", len(items)).Msg("revisión de stock completada")
	return nil
}

// WeeklyBalance calcula el balance de la semana en curso y lo deja en el log.
func (s *Scheduler) WeeklyBalance(ctx context.Context) error {
	r, err := s.reports.Build(ctx, report.Weekly, s.now().In(s.cfg.Location))
	if err != nil {
		return fmt.Errorf("balance semanal: %w", err)
	}
	s.log.Info().
		Str("titulo", r.Title).
		Str("total_venta", money.Format(r.TotalRevenue)).
		Str("ganancia", money.Format(r.TotalProfit)).
		Str("efectivo", money.Format(r.Cash)).
		Str("transferencia", money.Format(r.Transfer)).
		Int("transacciones", r.TransactionCount).
		Msg("balance semanal")
	return nil
}

// cronLogger adapta el logger de la aplicación a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
