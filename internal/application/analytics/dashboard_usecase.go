package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/application/usecase"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/report"
	"github.com/jhoicas/botica-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de la pantalla principal: alertas de stock,
// valor del inventario, totales históricos y ventas de hoy.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	loc         *time.Location
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{productRepo: productRepo, saleRepo: saleRepo, loc: loc, now: time.Now}
}

// Summary construye el DashboardSummaryDTO.
//
// Dos lecturas en paralelo:
//  1. productos → stock bajo + valor del inventario
//  2. ventas    → totales históricos + hoy (intervalo diario del resolvedor)
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now().In(uc.loc)
	today, err := report.ResolveRange(report.Daily, now)
	if err != nil {
		return nil, err
	}

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type salesResult struct {
		list []*entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.saleRepo.List(ctx)
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	salesRes := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: medicamentos: %w", products.err)
	}
	if salesRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", salesRes.err)
	}

	totalSales, totalProfit := decimal.Zero, decimal.Zero
	for _, s := range salesRes.list {
		if s == nil {
			continue
		}
		totalSales = totalSales.Add(s.TotalRevenue)
		totalProfit = totalProfit.Add(s.Profit)
	}
	todaySum := report.Aggregate(salesRes.list, today)

	return &dto.DashboardSummaryDTO{
		LowStock:    usecase.LowStockItems(products.list),
		StockValue:  usecase.StockValue(products.list),
		TotalSales:  totalSales,
		TotalProfit: totalProfit,
		TodaySales:  todaySum.TotalRevenue,
		TodayProfit: todaySum.TotalProfit,
		DateLabel:   today.Start.Format("02/01/2006"),
	}, nil
}
