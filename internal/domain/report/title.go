package report

import (
	"fmt"
	"time"
)

const dateLabel = "02/01/2006"

var months = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

// Title arma el título del reporte para la pantalla y el PDF.
// En el semanal el último día mostrado es End menos un día.
func Title(kind Kind, in Interval) string {
	switch kind {
	case Daily:
		return "Reporte Diario: " + in.Start.Format(dateLabel)
	case Weekly:
		last := in.End.AddDate(0, 0, -1)
		return fmt.Sprintf("Balance Semanal: Del %s al %s", in.Start.Format(dateLabel), last.Format(dateLabel))
	case Monthly:
		return "Reporte Mensual: " + MonthLabel(in.Start)
	case Yearly:
		return fmt.Sprintf("Reporte Anual: %d", in.Start.Year())
	}
	return "Reporte General"
}
