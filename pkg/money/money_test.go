package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/botica-api/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$62.000", money.Format(decimal.NewFromInt(62000)))
	assert.Equal(t, "$1.190.000", money.Format(decimal.NewFromInt(1190000)))
	assert.Equal(t, "$0", money.Format(decimal.Zero))
	assert.Equal(t, "$90.001", money.Format(decimal.RequireFromString("90000.5")))
	assert.Equal(t, "-$44.500", money.Format(decimal.NewFromInt(-44500)))
}
