package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/botica-api/internal/domain/entity"
)

// TopProductsLimit cantidad de productos en el ranking del reporte.
const TopProductsLimit = 5

// ProductQuantity unidades vendidas de un producto (por nombre histórico).
type ProductQuantity struct {
	Name     string
	Quantity int
}

// Summary resultado derivado de un período. Nunca se persiste.
type Summary struct {
	TotalRevenue     decimal.Decimal
	TotalCost        decimal.Decimal
	TotalProfit      decimal.Decimal
	ByPaymentMethod  map[string]decimal.Decimal
	TopProducts      []ProductQuantity
	TransactionCount int
	// SkippedRecords ventas del período descartadas por datos inválidos.
	SkippedRecords int
}

// Filter devuelve las ventas dentro del intervalo, conservando el orden de entrada.
func Filter(sales []*entity.Sale, in Interval) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if s != nil && in.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

// Aggregate calcula totales, cuadre por forma de pago y top de productos sobre
// las ventas de sales que caen en in.
//
// Los totales se suman desde los valores guardados en cada venta, no se
// recalculan desde precio × cantidad. Los productos se agrupan por el nombre
// guardado en la venta, así un medicamento renombrado sigue sumando bajo su
// nombre histórico. Formas de pago desconocidas se suman bajo su valor literal.
func Aggregate(sales []*entity.Sale, in Interval) Summary {
	sum := Summary{
		TotalRevenue:    decimal.Zero,
		TotalCost:       decimal.Zero,
		TotalProfit:     decimal.Zero,
		ByPaymentMethod: map[string]decimal.Decimal{},
		TopProducts:     []ProductQuantity{},
	}

	var ranking []ProductQuantity
	index := map[string]int{}

	for _, s := range sales {
		if s == nil || !in.Contains(s.Date) {
			continue
		}
		if !valid(s) {
			sum.SkippedRecords++
			continue
		}
		sum.TransactionCount++
		sum.TotalRevenue = sum.TotalRevenue.Add(s.TotalRevenue)
		sum.TotalCost = sum.TotalCost.Add(s.TotalCost)
		sum.TotalProfit = sum.TotalProfit.Add(s.Profit)
		sum.ByPaymentMethod[s.PaymentMethod] = sum.ByPaymentMethod[s.PaymentMethod].Add(s.TotalRevenue)

		if i, ok := index[s.Name]; ok {
			ranking[i].Quantity += s.Quantity
		} else {
			index[s.Name] = len(ranking)
			ranking = append(ranking, ProductQuantity{Name: s.Name, Quantity: s.Quantity})
		}
	}

	// Estable: a igual cantidad gana el que apareció primero.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if len(ranking) > TopProductsLimit {
		ranking = ranking[:TopProductsLimit]
	}
	sum.TopProducts = append(sum.TopProducts, ranking...)
	return sum
}

func valid(s *entity.Sale) bool {
	return s.Quantity > 0 && !s.TotalRevenue.IsNegative() && !s.TotalCost.IsNegative()
}
