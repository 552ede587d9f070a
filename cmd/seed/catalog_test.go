package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseCatalog_Comma(t *testing.T) {
	in := "nombre,lab,contenido,costo,precio,stock,min_stock\n" +
		"Drotox Jarabe,LHA,Jarabe,44500,90000,3,10\n" +
		"Chimal Gotas,LHA,Gotas,$29.600,$60.000,12,\n"
	items, err := parseCatalog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Drotox Jarabe", items[0].Name)
	assert.Equal(t, "44500", items[0].Cost.String())
	require.NotNil(t, items[0].MinStock)
	assert.Equal(t, 10, *items[0].MinStock)
	assert.Equal(t, "29600", items[1].Cost.String())
	assert.Equal(t, "60000", items[1].Price.String())
	assert.Nil(t, items[1].MinStock)
}

func TestParseCatalog_Latin1Semicolon(t *testing.T) {
	utf := "nombre;lab;costo;precio;stock\nCaléndula Crema;Homeópata;10000;18000;4\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	items, err := parseCatalog(bytes.NewReader([]byte(latin)))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Caléndula Crema", items[0].Name)
	assert.Equal(t, "Homeópata", items[0].Lab)
	assert.Equal(t, 4, items[0].Stock)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := parseCatalog(strings.NewReader("nombre,lab\nX,Y\n"))
	assert.ErrorContains(t, err, "costo")

	_, err = parseCatalog(strings.NewReader("nombre,costo,precio,stock\nX,1,2,muchos\n"))
	assert.ErrorContains(t, err, "línea 2")
}

func TestSampleCatalog(t *testing.T) {
	items := sampleCatalog()
	require.Len(t, items, 5)
	for _, it := range items {
		assert.NotEmpty(t, it.Name)
		assert.True(t, it.Price.GreaterThan(it.Cost))
		require.NotNil(t, it.MinStock)
	}
}
