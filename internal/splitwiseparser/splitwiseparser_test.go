package splitwiseparser

import (
	"strings"
	"testing"

	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `Date,Description,Category,Cost,Currency
2024-03-15,Dinner at cafe,Dining out,1200.00,INR
2024-03-16,Refund from landlord,Rent,5000.00,INR
2024-03-17,Cancelled plan,Entertainment,0.00,INR
2024-03-18,Total balance,Payment,350.00,INR
`
	txs, err := Parse(strings.NewReader(input), "", nil)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	dinner := txs[0]
	assert.Equal(t, "Dinner at cafe", dinner.Description)
	assert.Equal(t, "1200.00", dinner.Amount.StringFixed(2))
	assert.Equal(t, models.TypeExpense, dinner.Type)
	assert.Equal(t, "Dining out", dinner.Category)
	assert.Equal(t, models.SourceSplitwise, dinner.Source)
	assert.Equal(t, "INR", dinner.Currency)

	refund := txs[1]
	assert.Equal(t, models.TypeIncome, refund.Type)
}

func TestParseMissingRequiredHeader(t *testing.T) {
	input := `Date,Description,Category
2024-03-15,Dinner,Dining out
`
	_, err := Parse(strings.NewReader(input), "", nil)
	require.Error(t, err)
	assert.True(t, parsererror.IsFormatError(err))
	assert.Contains(t, err.Error(), `"Cost"`)
}

func TestParseUserShareColumn(t *testing.T) {
	input := `Date,Description,Category,Cost,Currency,Alice
2024-03-15,Dinner,Dining out,1200.00,INR,400.00
2024-03-16,Not my expense,Groceries,800.00,INR,0.00
`
	txs, err := Parse(strings.NewReader(input), "Alice", nil)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Dinner", txs[0].Description)
}

func TestParseMissingUserShareColumn(t *testing.T) {
	input := `Date,Description,Category,Cost
2024-03-15,Dinner,Dining out,1200.00
`
	_, err := Parse(strings.NewReader(input), "Alice", nil)
	require.Error(t, err)
	assert.True(t, parsererror.IsFormatError(err))
	assert.Contains(t, err.Error(), `"Alice"`)
}

func TestParseDefaultsCurrency(t *testing.T) {
	input := `Date,Description,Category,Cost
2024-03-15,Dinner,Dining out,1200.00
`
	txs, err := Parse(strings.NewReader(input), "", nil)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.DefaultCurrency, txs[0].Currency)
}

func TestParseAllRowsFiltered(t *testing.T) {
	input := `Date,Description,Category,Cost
2024-03-15,Cancelled,Dining out,0.00
`
	_, err := Parse(strings.NewReader(input), "", nil)
	require.Error(t, err)
	assert.True(t, parsererror.IsEmptyResult(err))
}

func TestHasSplitwiseHeaders(t *testing.T) {
	assert.True(t, HasSplitwiseHeaders([]string{"Date", "Description", "Category", "Cost", "Currency"}))
	assert.True(t, HasSplitwiseHeaders([]string{"date", "description", "category", "cost"}))
	assert.False(t, HasSplitwiseHeaders([]string{"Date", "Description", "Amount"}))
}
