// Package splitwiseparser parses Splitwise CSV exports. Splitwise's schema is
// fixed, so required headers are validated up front and a missing one fails
// the whole import with a FormatError naming it.
package splitwiseparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/meghaa105/personal-finance-sub000/internal/amountutils"
	"github.com/meghaa105/personal-finance-sub000/internal/dateutils"
	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// RequiredHeaders must all be present in a Splitwise export.
var RequiredHeaders = []string{"Date", "Description", "Category", "Cost"}

// creditPattern upgrades a Splitwise entry to income; everything else is an
// expense by default.
var creditPattern = regexp.MustCompile(`(?i)refund|reimburs|cashback|settle`)

// splitwiseRow maps the fixed Splitwise columns. The current user's share
// column is named after the user, so it is read positionally instead.
type splitwiseRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Cost        string `csv:"Cost"`
	Currency    string `csv:"Currency"`
}

// Parse reads a Splitwise CSV export. When userName is non-empty the user's
// share column must exist and rows with a zero share are filtered out along
// with zero-cost rows.
func Parse(r io.Reader, userName string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading Splitwise CSV: %w", err)
	}

	headerReader := csv.NewReader(bytes.NewReader(data))
	headerReader.FieldsPerRecord = -1
	headers, err := headerReader.Read()
	if err != nil {
		return nil, &parsererror.FormatError{Reason: fmt.Sprintf("unreadable CSV: %v", err)}
	}

	for _, required := range RequiredHeaders {
		if headerIndex(headers, required) < 0 {
			return nil, &parsererror.FormatError{
				Reason: fmt.Sprintf("missing required header %q", required),
			}
		}
	}

	shareIdx := -1
	if userName != "" {
		shareIdx = headerIndex(headers, userName)
		if shareIdx < 0 {
			return nil, &parsererror.FormatError{
				Reason: fmt.Sprintf("missing required header %q", userName),
			}
		}
	}

	var rows []splitwiseRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, &parsererror.FormatError{Reason: fmt.Sprintf("malformed Splitwise CSV: %v", err)}
	}

	// Raw records for the user-share column, which gocsv cannot map.
	rawRecords, err := headerReader.ReadAll()
	if err != nil {
		return nil, &parsererror.FormatError{Reason: fmt.Sprintf("malformed Splitwise CSV: %v", err)}
	}

	var transactions []models.Transaction
	for i, row := range rows {
		// Splitwise closes exports with a "Total balance" summary row.
		if strings.EqualFold(strings.TrimSpace(row.Description), "total balance") {
			continue
		}

		cost, err := amountutils.ParseAmount(row.Cost)
		if err != nil || cost.Equal(decimal.Zero) {
			logger.Debug("Skipping zero-cost Splitwise row",
				logging.Field{Key: "line", Value: i + 2})
			continue
		}

		if shareIdx >= 0 && i < len(rawRecords) && shareIdx < len(rawRecords[i]) {
			share, err := amountutils.ParseAmount(rawRecords[i][shareIdx])
			if err != nil || share.Equal(decimal.Zero) {
				logger.Debug("Skipping zero-share Splitwise row",
					logging.Field{Key: "line", Value: i + 2})
				continue
			}
		}

		date, err := dateutils.ParseDate(row.Date)
		if err != nil {
			logger.WithError(&parsererror.RowError{Line: i + 2, Field: "Date", Value: row.Date, Err: err}).
				Debug("Skipping Splitwise row with bad date")
			continue
		}

		txType := models.TypeExpense
		if creditPattern.MatchString(row.Description) {
			txType = models.TypeIncome
		}

		currency := strings.TrimSpace(row.Currency)
		if currency == "" {
			currency = models.DefaultCurrency
		}

		tx := models.Transaction{
			Date:        date,
			Description: row.Description,
			Amount:      cost.Abs(),
			Type:        txType,
			Category:    strings.TrimSpace(row.Category),
			Source:      models.SourceSplitwise,
			Currency:    currency,
		}
		tx.Normalize()
		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		return nil, &parsererror.EmptyResultError{Msg: "no valid Splitwise entries in file"}
	}

	logger.Info("Parsed Splitwise export",
		logging.Field{Key: "count", Value: len(transactions)})
	return transactions, nil
}

// HasSplitwiseHeaders reports whether the header row carries Splitwise's
// fixed schema. The coordinator uses it to tell a Splitwise export apart from
// a bank CSV.
func HasSplitwiseHeaders(headers []string) bool {
	for _, required := range RequiredHeaders {
		if headerIndex(headers, required) < 0 {
			return false
		}
	}
	return true
}

func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
