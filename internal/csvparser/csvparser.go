// Package csvparser parses bank account CSV exports into normalized
// transactions. The column layout is detected from the headers against a
// small ordered list of known bank profiles, with a generic mapping as the
// fallback.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/meghaa105/personal-finance-sub000/internal/amountutils"
	"github.com/meghaa105/personal-finance-sub000/internal/dateutils"
	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Result carries the normalized transactions plus the original headers and
// rows for diagnostics.
type Result struct {
	Transactions []models.Transaction
	Headers      []string
	Rows         [][]string
	Profile      string
}

// Parse reads a bank CSV export and returns normalized transactions. A row
// that fails date or amount extraction is logged and skipped; it never aborts
// the batch. Zero data rows or zero valid transactions yield an
// EmptyResultError.
func Parse(r io.Reader, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.FormatError{Reason: fmt.Sprintf("unreadable CSV: %v", err)}
	}
	if len(records) == 0 {
		return nil, &parsererror.FormatError{Reason: "file is empty"}
	}

	headers := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return nil, &parsererror.EmptyResultError{Msg: "no data rows after header"}
	}

	profile := DetectProfile(headers)
	profileName := "generic"
	mapping := &genericProfile
	if profile != nil {
		profileName = profile.Name
		mapping = profile
	}
	logger.Info("Detected bank format",
		logging.Field{Key: "profile", Value: profileName},
		logging.Field{Key: "rows", Value: len(rows)})

	var transactions []models.Transaction
	for i, row := range rows {
		tx, err := parseRow(headers, row, mapping)
		if err != nil {
			logger.WithError(&parsererror.RowError{Line: i + 2, Field: "row", Value: strings.Join(row, ","), Err: err}).
				Debug("Skipping unparseable row")
			continue
		}
		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		return nil, &parsererror.EmptyResultError{Msg: "no valid transactions in file"}
	}

	return &Result{
		Transactions: transactions,
		Headers:      headers,
		Rows:         rows,
		Profile:      profileName,
	}, nil
}

// parseRow extracts a single transaction from a row using the profile's
// synonym lists, falling back to debit/credit column scanning for amount and
// type when the direct columns are missing or blank.
func parseRow(headers, row []string, p *BankProfile) (models.Transaction, error) {
	value := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	dateStr := value(findColumn(headers, p.DateHeaders))
	if dateStr == "" {
		dateStr = value(findColumn(headers, []string{"date"}))
	}
	if dateStr == "" {
		return models.Transaction{}, fmt.Errorf("missing date")
	}
	date, err := dateutils.ParseDate(dateStr)
	if err != nil {
		return models.Transaction{}, err
	}

	description := value(findColumn(headers, p.DescriptionHeaders))
	if description == "" {
		return models.Transaction{}, fmt.Errorf("missing description")
	}

	debitVal := value(findColumn(headers, []string{"debit", "withdrawal"}))
	creditVal := value(findColumn(headers, []string{"credit", "deposit"}))

	amountStr := ""
	for _, syn := range p.AmountHeaders {
		if v := value(findColumn(headers, []string{syn})); v != "" {
			amountStr = v
			break
		}
	}
	if amountStr == "" {
		// Debit/credit column pair fallback: a debit amount is an expense,
		// a credit amount an income.
		switch {
		case debitVal != "":
			amountStr = "-" + strings.TrimPrefix(debitVal, "-")
		case creditVal != "":
			amountStr = creditVal
		default:
			return models.Transaction{}, fmt.Errorf("missing amount")
		}
	}

	amount, err := amountutils.ParseAmount(amountStr)
	if err != nil {
		return models.Transaction{}, err
	}
	if amount.Equal(decimal.Zero) {
		return models.Transaction{}, fmt.Errorf("zero amount")
	}

	typeField := value(findColumn(headers, p.TypeHeaders))
	txType := models.InferType(amount, typeField, debitVal, creditVal)

	category := value(findColumn(headers, []string{"category"}))

	tx := models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        txType,
		Category:    category,
		Source:      models.SourceCSV,
	}
	tx.Normalize()
	return tx, nil
}
