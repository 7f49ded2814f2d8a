package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"

	"github.com/gocarina/gocsv"
)

func timeFromISO(value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayoutISO, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", value, err)
	}
	return t, nil
}

// exportRow is the CSV form of a stored transaction.
type exportRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
	Currency    string `csv:"Currency"`
}

// ExportCSV writes every stored transaction to a CSV file so the data is
// usable by spreadsheet tools downstream.
func (s *TransactionStore) ExportCSV(csvFile string) error {
	stored, err := s.GetAll()
	if err != nil {
		return err
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]exportRow, 0, len(stored))
	for _, st := range stored {
		rows = append(rows, exportRow{
			ID:          st.ID,
			Date:        st.Transaction.Date.Format(models.DateLayoutISO),
			Description: st.Transaction.Description,
			Amount:      st.Transaction.Amount.StringFixed(2),
			Type:        string(st.Transaction.Type),
			Category:    st.Transaction.Category,
			Source:      string(st.Transaction.Source),
			Currency:    st.Transaction.Currency,
		})
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	s.logger.Info("Exported transactions to CSV",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)})
	return nil
}
