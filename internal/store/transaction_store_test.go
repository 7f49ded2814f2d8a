package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meghaa105/personal-finance-sub000/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Description: "Coffee Shop",
			Amount:      decimal.RequireFromString("150.00"),
			Type:        models.TypeExpense,
			Category:    models.CategoryFood,
			Source:      models.SourceCSV,
		},
		{
			Date:        time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
			Description: "Salary March",
			Amount:      decimal.RequireFromString("50000.00"),
			Type:        models.TypeIncome,
			Category:    models.CategoryIncome,
			Source:      models.SourceCSV,
		},
	}
}

func TestAddManyAndGetAll(t *testing.T) {
	s := NewTransactionStore(filepath.Join(t.TempDir(), "transactions.yaml"), nil)

	added, err := s.AddMany(testTransactions(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	stored, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Coffee Shop", stored[0].Transaction.Description)
	assert.Equal(t, "batch-1", stored[0].ImportBatch)
	assert.NotEmpty(t, stored[0].ID)
}

func TestAddManyIsIdempotent(t *testing.T) {
	s := NewTransactionStore(filepath.Join(t.TempDir(), "transactions.yaml"), nil)

	added, err := s.AddMany(testTransactions(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = s.AddMany(testTransactions(), "batch-2")
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	stored, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestAddManyDeduplicatesWithinBatch(t *testing.T) {
	s := NewTransactionStore(filepath.Join(t.TempDir(), "transactions.yaml"), nil)

	txs := testTransactions()
	txs = append(txs, txs[0])
	added, err := s.AddMany(txs, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, added)
}

func TestKeyIsDeterministic(t *testing.T) {
	tx := testTransactions()[0]
	assert.Equal(t, Key(tx), Key(tx))

	other := tx
	other.Amount = decimal.RequireFromString("150.01")
	assert.NotEqual(t, Key(tx), Key(other))
}

func TestKeyIgnoresProvenance(t *testing.T) {
	// Identity is content-derived: the same transaction arriving from a
	// different source or category is still the same transaction.
	tx := testTransactions()[0]
	other := tx
	other.Source = models.SourcePDF
	other.Category = models.CategoryOther
	assert.Equal(t, Key(tx), Key(other))
}

func TestGetAllMissingFile(t *testing.T) {
	s := NewTransactionStore(filepath.Join(t.TempDir(), "transactions.yaml"), nil)
	stored, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPersistenceAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.yaml")

	first := NewTransactionStore(path, nil)
	_, err := first.AddMany(testTransactions(), "batch-1")
	require.NoError(t, err)

	second := NewTransactionStore(path, nil)
	stored, err := second.GetAll()
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// Amounts survive the round trip exactly.
	assert.Equal(t, "150.00", stored[0].Transaction.Amount.StringFixed(2))
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	s := NewTransactionStore(filepath.Join(dir, "transactions.yaml"), nil)
	_, err := s.AddMany(testTransactions(), "batch-1")
	require.NoError(t, err)

	out := filepath.Join(dir, "export.csv")
	require.NoError(t, s.ExportCSV(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Coffee Shop")
	assert.Contains(t, content, "2024-03-15")
	assert.Contains(t, content, "150.00")
}
