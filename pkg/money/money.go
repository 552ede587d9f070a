// Package money formatea montos en pesos colombianos para reportes y PDF.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Format redondea a pesos enteros y agrupa miles con punto: 1190000 → "$1.190.000".
func Format(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-" + printer.Sprintf("$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}
