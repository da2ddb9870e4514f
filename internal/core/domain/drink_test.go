package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrink(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		drink   string
		price   string
		wantErr string
	}{
		{"valid", "A1", "Coca Cola", "1.50", ""},
		{"free drink allowed", "Z0", "Sample", "0", ""},
		{"empty id", "", "Coca Cola", "1.50", "ID is required"},
		{"blank name", "A1", "   ", "1.50", "name is required"},
		{"negative price", "A1", "Coca Cola", "-0.25", "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDrink(tt.id, tt.drink, decimal.RequireFromString(tt.price))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, d.ID())
			assert.Equal(t, tt.drink, d.Name())
			assert.True(t, d.Price().Equal(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestDrink_String(t *testing.T) {
	d, err := NewDrink("A1", "Coca Cola", decimal.RequireFromString("1.5"))
	require.NoError(t, err)

	assert.Equal(t, "A1: Coca Cola - $1.50", d.String())
	assert.Equal(t, "$1.50", FormatMoney(d.Price()))
}

func TestDrink_IsZero(t *testing.T) {
	assert.True(t, Drink{}.IsZero())

	d, err := NewDrink("B3", "Water", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.False(t, d.IsZero())
}

func TestDefaultCatalog(t *testing.T) {
	entries := DefaultCatalog(10)
	require.Len(t, entries, 9)

	assert.Equal(t, "A1", entries[0].Drink.ID())
	assert.Equal(t, "C3", entries[8].Drink.ID())
	assert.Equal(t, "B1: Orange Juice - $2.00", entries[3].Drink.String())
	for _, e := range entries {
		assert.Equal(t, 10, e.Quantity)
	}
}

func TestStockLevel_Status(t *testing.T) {
	assert.Equal(t, "IN STOCK", StockLevel{Quantity: 1}.Status())
	assert.Equal(t, "OUT OF STOCK", StockLevel{Quantity: 0}.Status())
}
