package csvparser

import (
	"strings"
	"testing"

	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenericCSV(t *testing.T) {
	input := `Date,Description,Amount,Type
15/03/2024,Coffee Shop,-150.00,
16/03/2024,SALARY CREDIT,50000.00,Credit
`
	result, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "generic", result.Profile)

	coffee := result.Transactions[0]
	assert.Equal(t, "Coffee Shop", coffee.Description)
	assert.Equal(t, "150.00", coffee.Amount.StringFixed(2))
	assert.Equal(t, models.TypeExpense, coffee.Type)
	assert.Equal(t, models.SourceCSV, coffee.Source)
	assert.Equal(t, "2024-03-15", coffee.Date.Format("2006-01-02"))

	salary := result.Transactions[1]
	assert.Equal(t, models.TypeIncome, salary.Type)
	assert.Equal(t, "50000.00", salary.Amount.StringFixed(2))
}

func TestParseDebitCreditColumns(t *testing.T) {
	input := `Date,Narration,Withdrawal Amt,Deposit Amt
15/03/2024,ATM CASH,2000.00,
16/03/2024,NEFT RECEIVED,,5000.00
`
	result, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "hdfc", result.Profile)

	assert.Equal(t, models.TypeExpense, result.Transactions[0].Type)
	assert.Equal(t, "2000.00", result.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, models.TypeIncome, result.Transactions[1].Type)
}

func TestParseSkipsBadRows(t *testing.T) {
	input := `Date,Description,Amount
not-a-date,Broken Row,100.00
15/03/2024,Good Row,100.00
15/03/2024,Zero Row,0.00
`
	result, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Good Row", result.Transactions[0].Description)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isEmpty bool
	}{
		{"Empty file", "", false},
		{"Header only", "Date,Description,Amount\n", true},
		{"All rows invalid", "Date,Description,Amount\nbad,Row,abc\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), nil)
			require.Error(t, err)
			if tc.isEmpty {
				assert.True(t, parsererror.IsEmptyResult(err))
			} else {
				assert.True(t, parsererror.IsFormatError(err))
			}
		})
	}
}

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected string
	}{
		{"Axis", []string{"Tran Date", "Particulars", "Amount (INR)", "Dr/Cr"}, "axis"},
		{"HDFC", []string{"Date", "Narration", "Withdrawal Amt", "Deposit Amt"}, "hdfc"},
		{"ICICI", []string{"Value Date", "Transaction Remarks", "Amount"}, "icici"},
		{"SBI", []string{"Txn Date", "Ref No", "Description", "Amount"}, "sbi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DetectProfile(tc.headers)
			require.NotNil(t, p)
			assert.Equal(t, tc.expected, p.Name)
		})
	}

	assert.Nil(t, DetectProfile([]string{"Date", "Description", "Amount"}))
}
