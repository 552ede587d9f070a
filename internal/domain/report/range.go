// Package report contiene el núcleo de los reportes financieros: resolución de
// períodos (diario, semanal, mensual, anual) y agregación de ventas.
// Todo es cálculo puro en memoria; no hace I/O ni guarda estado.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/botica-api/internal/domain"
)

// Kind tipo de reporte.
type Kind string

const (
	Daily   Kind = "daily"
	Weekly  Kind = "weekly"
	Monthly Kind = "monthly"
	Yearly  Kind = "yearly"
)

// Interval rango semiabierto [Start, End). Una venta exactamente en End pertenece
// al período siguiente.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro de [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// ParseKind valida el tipo de reporte recibido por query string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Daily, Weekly, Monthly, Yearly:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidReportKind, s)
}

// ResolveRange calcula el período del reporte para la fecha ancla.
// Los límites siempre caen a medianoche en la zona horaria del ancla; la hora
// del ancla se ignora.
func ResolveRange(kind Kind, anchor time.Time) (Interval, error) {
	day := midnight(anchor)
	switch kind {
	case Daily:
		return Interval{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case Weekly:
		// Semana de lunes a domingo.
		back := int(day.Weekday()) - 1
		if day.Weekday() == time.Sunday {
			back = 6
		}
		start := day.AddDate(0, 0, -back)
		return Interval{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case Monthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Interval{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case Yearly:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return Interval{Start: start, End: start.AddDate(1, 0, 0)}, nil
	}
	return Interval{}, fmt.Errorf("%w: %q", domain.ErrInvalidReportKind, string(kind))
}

// ParseAnchor interpreta la fecha seleccionada en la pantalla de reportes.
// Acepta YYYY-MM-DD siempre, YYYY-MM para mensual y YYYY para anual.
// Vacío significa "hoy" según now.
func ParseAnchor(kind Kind, s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return midnight(now), nil
	}
	layouts := []string{"2006-01-02"}
	switch kind {
	case Monthly:
		layouts = append(layouts, "2006-01")
	case Yearly:
		layouts = append(layouts, "2006")
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
