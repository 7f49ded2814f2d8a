package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meghaa105/personal-finance-sub000/internal/categorizer"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"
	"github.com/meghaa105/personal-finance-sub000/internal/pdfparser"
	"github.com/meghaa105/personal-finance-sub000/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T, extractor pdfparser.TextExtractor) (*Coordinator, *store.TransactionStore) {
	t.Helper()
	dir := t.TempDir()
	categoryStore := store.NewCategoryStore(filepath.Join(dir, "categories.yaml"), nil)
	txStore := store.NewTransactionStore(filepath.Join(dir, "transactions.yaml"), nil)
	cat := categorizer.New(categoryStore, nil)
	return New(cat, txStore, extractor, "", nil), txStore
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestPreviewBankCSV(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	path := writeFile(t, "statement.csv", `Date,Description,Amount
15/03/2024,SWIGGY ORDER,-450.00
16/03/2024,UBER TRIP,-320.00
`)

	p, err := c.Preview(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	assert.Equal(t, models.SourceCSV, p.Source)
	assert.NotEmpty(t, p.BatchID)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, p.Headers)
	require.Len(t, p.Transactions, 2)

	// Categories are filled uniformly during preview.
	assert.Equal(t, models.CategoryFood, p.Transactions[0].Category)
	assert.Equal(t, models.CategoryTransportation, p.Transactions[1].Category)
}

func TestPreviewDetectsSplitwise(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	path := writeFile(t, "splitwise.csv", `Date,Description,Category,Cost
2024-03-15,Dinner,Dining out,1200.00
`)

	p, err := c.Preview(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	assert.Equal(t, models.SourceSplitwise, p.Source)
	require.Len(t, p.Transactions, 1)
	assert.Equal(t, "Dining out", p.Transactions[0].Category)
}

func TestPreviewPDF(t *testing.T) {
	extractor := pdfparser.MockExtractor{Text: "15/03/2024 SWIGGY ORDER 450.00 Dr\n"}
	c, _ := newTestCoordinator(t, extractor)
	path := writeFile(t, "statement.pdf", "%PDF-1.4 placeholder")

	p, err := c.Preview(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	assert.Equal(t, models.SourcePDF, p.Source)
	assert.NotEmpty(t, p.RawText)
	require.Len(t, p.Transactions, 1)
	assert.Equal(t, models.CategoryFood, p.Transactions[0].Category)
}

func TestPreviewUnknownExtension(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	path := writeFile(t, "statement.txt", "not importable")

	_, err := c.Preview(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.Error(t, err)
	assert.True(t, parsererror.IsFormatError(err))
}

func TestConfirmCommitsAndDeduplicates(t *testing.T) {
	c, txStore := newTestCoordinator(t, nil)
	path := writeFile(t, "statement.csv", `Date,Description,Amount
15/03/2024,SWIGGY ORDER,-450.00
`)

	added, err := c.Import(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// Re-importing the same file adds nothing.
	added, err = c.Import(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	stored, err := txStore.GetAll()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestConfirmEmptyPreview(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	_, err := c.Confirm(&Preview{File: "statement.pdf"})
	require.Error(t, err)
	assert.True(t, parsererror.IsEmptyResult(err))
}

func TestIncomeFallsBackToIncomeCategory(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	// "NEFT INWARD XXXX" matches no category keyword; the credit column
	// makes it income, so the Income category applies instead of Other.
	path := writeFile(t, "statement.csv", `Date,Description,Debit,Credit
15/03/2024,NEFT INWARD XXXX,,9000.00
`)

	p, err := c.Preview(path, FileTypeAuto, pdfparser.IssuerAuto)
	require.NoError(t, err)
	require.Len(t, p.Transactions, 1)
	assert.Equal(t, models.TypeIncome, p.Transactions[0].Type)
	assert.Equal(t, models.CategoryIncome, p.Transactions[0].Category)
}

func TestParseFileType(t *testing.T) {
	for _, valid := range []string{"", "auto", "csv", "splitwise", "pdf"} {
		_, err := ParseFileType(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseFileType("xlsx")
	assert.Error(t, err)
}
