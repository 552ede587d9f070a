// Package pdf exporta los reportes financieros a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la botica │ Título del reporte + período │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total venta | Costo | Ganancia | Transacciones    │
//	│  CUADRE:  Efectivo | Transferencia | otras formas de pago   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP 5 PRODUCTOS                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cant | Forma pago | Total        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/botica-api/internal/application/analytics"
	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportPDFGenerator = (*ReportPDFGenerator)(nil)

// ReportPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type ReportPDFGenerator struct {
	shopName string
}

// NewReportPDFGenerator construye el generador. shopName va en el encabezado.
func NewReportPDFGenerator(shopName string) *ReportPDFGenerator {
	return &ReportPDFGenerator{shopName: shopName}
}

// Render genera el PDF y devuelve sus bytes.
func (g *ReportPDFGenerator) Render(r *dto.ReportResponse) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(paymentRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(topProductRows(r.TopProducts)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(salesHeaderRow())
	m.AddRows(salesRows(r.Sales)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shopName string, r *dto.ReportResponse) core.Row {
	period := fmt.Sprintf("Del %s al %s",
		r.Start.Format("02/01/2006"),
		r.End.AddDate(0, 0, -1).Format("02/01/2006"))

	return row.New(16).Add(
		col.New(6).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(r *dto.ReportResponse) core.Row {
	return row.New(14).Add(
		metricCol("Total venta", money.Format(r.TotalRevenue)),
		metricCol("Costo", money.Format(r.TotalCost)),
		metricCol("Ganancia", money.Format(r.TotalProfit)),
		metricCol("Transacciones", fmt.Sprintf("%d", r.TransactionCount)),
	)
}

// paymentRow cuadre de caja: efectivo y transferencia siempre, luego las demás
// formas de pago históricas en orden alfabético.
func paymentRow(r *dto.ReportResponse) core.Row {
	cols := []core.Col{
		metricCol("Efectivo", money.Format(r.Cash)),
		metricCol("Transferencia", money.Format(r.Transfer)),
	}
	others := make([]string, 0, len(r.ByPaymentMethod))
	for m := range r.ByPaymentMethod {
		if m != entity.PaymentCash && m != entity.PaymentTransfer {
			others = append(others, m)
		}
	}
	sort.Strings(others)
	for _, m := range others {
		if len(cols) == 4 {
			break
		}
		cols = append(cols, metricCol(nonEmpty(m, "Sin forma de pago"), money.Format(r.ByPaymentMethod[m])))
	}
	return row.New(14).Add(cols...)
}

func topProductRows(top []dto.TopProductDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("TOP 5 PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(top) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin ventas en el período", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
		return rows
	}
	for i, p := range top {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", i+1), props.Text{Size: 8, Top: 1})),
			col.New(9).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d und", p.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func salesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Forma pago", 2, align.Left),
		h("Total", 3, align.Right),
	)
}

func salesRows(list []dto.SaleResponse) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, s := range list {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(s.Date.Format("02/01/2006 15:04"), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(4).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(s.PaymentMethod, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money.Format(s.TotalRevenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func metricCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
