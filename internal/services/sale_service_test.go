package services

import (
	"testing"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() map[string]*models.InventoryItem {
	return map[string]*models.InventoryItem{
		"Mala":  {Name: "Mala", UnitPrice: decimal.NewFromInt(100), StockQuantity: 10},
		"Shawl": {Name: "Shawl", UnitPrice: decimal.NewFromInt(150), StockQuantity: 1},
	}
}

func TestBuildSaleLinesPricesCart(t *testing.T) {
	lines := []models.CartLine{
		{ItemName: "Mala", Quantity: 2},
		{ItemName: "Shawl", Quantity: 1},
	}

	lineItems, total, err := buildSaleLines(lines, testItems())
	require.NoError(t, err)
	require.Len(t, lineItems, 2)

	assert.True(t, lineItems[0].LineTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, lineItems[0].UnitPriceAtSale.Equal(decimal.NewFromInt(100)))
	assert.True(t, lineItems[1].LineTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, total.Equal(decimal.NewFromInt(350)))
}

func TestBuildSaleLinesRejectsInsufficientStock(t *testing.T) {
	lines := []models.CartLine{
		{ItemName: "Mala", Quantity: 1},
		{ItemName: "Shawl", Quantity: 2},
	}

	_, _, err := buildSaleLines(lines, testItems())
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestBuildSaleLinesRejectsUnknownItem(t *testing.T) {
	lines := []models.CartLine{{ItemName: "Bell", Quantity: 1}}

	_, _, err := buildSaleLines(lines, testItems())
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestBuildSaleLinesRejectsNonPositiveQuantity(t *testing.T) {
	lines := []models.CartLine{{ItemName: "Mala", Quantity: 0}}

	_, _, err := buildSaleLines(lines, testItems())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildSaleLinesExactStockAllowed(t *testing.T) {
	lines := []models.CartLine{{ItemName: "Shawl", Quantity: 1}}

	lineItems, total, err := buildSaleLines(lines, testItems())
	require.NoError(t, err)
	assert.Len(t, lineItems, 1)
	assert.True(t, total.Equal(decimal.NewFromInt(150)))
}
