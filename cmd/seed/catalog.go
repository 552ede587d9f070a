package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/botica-api/internal/application/dto"
)

// Columnas esperadas (en cualquier orden, con encabezado):
// nombre, lab, contenido, costo, precio, stock, min_stock
var requiredColumns = []string{"nombre", "costo", "precio", "stock"}

// sampleCatalog inventario inicial de la botica.
func sampleCatalog() []dto.AddStockRequest {
	item := func(name, lab, content string, cost, price int64, stock, minStock int) dto.AddStockRequest {
		return dto.AddStockRequest{
			Name: name, Lab: lab, Content: content,
			Cost: decimal.NewFromInt(cost), Price: decimal.NewFromInt(price),
			Stock: stock, MinStock: &minStock,
		}
	}
	return []dto.AddStockRequest{
		item("Agraricus Muscarius D9", "DH MEDICAL", "Gotas", 40000, 62000, 15, 5),
		item("Anacardium Orientale D9", "DH MEDICAL", "Gotas", 40000, 62000, 8, 5),
		item("Drotox Jarabe", "LHA", "Jarabe", 44500, 90000, 3, 10),
		item("Apis Mellifica D9", "DH MEDICAL", "Gotas", 40000, 62000, 20, 5),
		item("Chimal Gotas", "LHA", "Gotas", 29600, 60000, 12, 7),
	}
}

// decodeText devuelve el contenido en UTF-8. Los CSV exportados desde Excel en
// Windows suelen venir en ISO-8859-1; si el archivo no es UTF-8 válido se convierte.
func decodeText(r io.Reader) (io.Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	if utf8.Valid(b) {
		return bytes.NewReader(b), nil
	}
	return transform.NewReader(bytes.NewReader(b), charmap.ISO8859_1.NewDecoder()), nil
}

// parseCatalog lee el CSV (separado por coma o punto y coma).
func parseCatalog(r io.Reader) ([]dto.AddStockRequest, error) {
	text, err := decodeText(r)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(text)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	if firstLine, _, _ := strings.Cut(string(raw), "\n"); strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []dto.AddStockRequest
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		item, err := parseRow(get, rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func parseRow(get func([]string, string) string, rec []string) (dto.AddStockRequest, error) {
	item := dto.AddStockRequest{
		Name:    get(rec, "nombre"),
		Lab:     get(rec, "lab"),
		Content: get(rec, "contenido"),
	}
	var err error
	if item.Cost, err = parseMoney(get(rec, "costo")); err != nil {
		return item, fmt.Errorf("costo: %w", err)
	}
	if item.Price, err = parseMoney(get(rec, "precio")); err != nil {
		return item, fmt.Errorf("precio: %w", err)
	}
	if item.Stock, err = strconv.Atoi(get(rec, "stock")); err != nil {
		return item, fmt.Errorf("stock: %w", err)
	}
	if s := get(rec, "min_stock"); s != "" {
		minStock, err := strconv.Atoi(s)
		if err != nil {
			return item, fmt.Errorf("min_stock: %w", err)
		}
		item.MinStock = &minStock
	}
	return item, nil
}

// parseMoney acepta "62000", "62.000" o "$62.000" (pesos sin decimales).
func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
