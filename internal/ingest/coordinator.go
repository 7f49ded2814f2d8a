// Package ingest orchestrates the import flow: detect the file type, run the
// right parser, fill in missing categories, and commit the surviving rows to
// the transaction store as one batch.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meghaa105/personal-finance-sub000/internal/categorizer"
	"github.com/meghaa105/personal-finance-sub000/internal/csvparser"
	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"
	"github.com/meghaa105/personal-finance-sub000/internal/pdfparser"
	"github.com/meghaa105/personal-finance-sub000/internal/splitwiseparser"
	"github.com/meghaa105/personal-finance-sub000/internal/store"

	"github.com/google/uuid"
)

// FileType names the supported input formats. Auto dispatches on extension
// and, for CSV, on the header row.
type FileType string

const (
	FileTypeAuto      FileType = "auto"
	FileTypeCSV       FileType = "csv"
	FileTypeSplitwise FileType = "splitwise"
	FileTypePDF       FileType = "pdf"
)

// ParseFileType validates a user-supplied file type name.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case "", FileTypeAuto:
		return FileTypeAuto, nil
	case FileTypeCSV:
		return FileTypeCSV, nil
	case FileTypeSplitwise:
		return FileTypeSplitwise, nil
	case FileTypePDF:
		return FileTypePDF, nil
	default:
		return "", fmt.Errorf("unsupported file type %q (supported: auto, csv, splitwise, pdf)", s)
	}
}

// Coordinator wires the parsers, the categorizer and the store together.
type Coordinator struct {
	categorizer   *categorizer.Categorizer
	store         *store.TransactionStore
	extractor     pdfparser.TextExtractor
	splitwiseUser string
	logger        logging.Logger
}

// New creates a Coordinator. A nil extractor defaults to reading real PDFs.
func New(cat *categorizer.Categorizer, txStore *store.TransactionStore, extractor pdfparser.TextExtractor, splitwiseUser string, logger logging.Logger) *Coordinator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = pdfparser.DocumentExtractor{}
	}
	return &Coordinator{
		categorizer:   cat,
		store:         txStore,
		extractor:     extractor,
		splitwiseUser: splitwiseUser,
		logger:        logger,
	}
}

// Preview holds parsed transactions before they are committed, so callers
// can show the user what an import would add.
type Preview struct {
	BatchID      string
	File         string
	Source       models.Source
	Transactions []models.Transaction
	Headers      []string
	Rows         [][]string
	RawText      string
}

// Preview parses the file without touching the store.
func (c *Coordinator) Preview(path string, fileType FileType, issuer pdfparser.Issuer) (*Preview, error) {
	resolved, err := c.resolveType(path, fileType)
	if err != nil {
		return nil, err
	}

	p := &Preview{
		BatchID: uuid.New().String(),
		File:    path,
	}

	switch resolved {
	case FileTypePDF:
		result, err := pdfparser.Parse(path, issuer, c.extractor, c.logger)
		if err != nil {
			return nil, err
		}
		p.Source = models.SourcePDF
		p.Transactions = result.Transactions
		p.RawText = result.RawText

	case FileTypeSplitwise:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}
		defer f.Close()
		txs, err := splitwiseparser.Parse(f, c.splitwiseUser, c.logger)
		if err != nil {
			return nil, decorate(err, path)
		}
		p.Source = models.SourceSplitwise
		p.Transactions = txs

	case FileTypeCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}
		defer f.Close()
		result, err := csvparser.Parse(f, c.logger)
		if err != nil {
			return nil, decorate(err, path)
		}
		p.Source = models.SourceCSV
		p.Transactions = result.Transactions
		p.Headers = result.Headers
		p.Rows = result.Rows
	}

	c.fillCategories(p.Transactions)
	c.logger.Info("Prepared import preview",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "source", Value: string(p.Source)},
		logging.Field{Key: "count", Value: len(p.Transactions)})
	return p, nil
}

// Confirm commits a preview to the store and reports how many transactions
// were actually added after deduplication.
func (c *Coordinator) Confirm(p *Preview) (int, error) {
	if len(p.Transactions) == 0 {
		return 0, &parsererror.EmptyResultError{File: p.File, Msg: "nothing to import"}
	}
	added, err := c.store.AddMany(p.Transactions, p.BatchID)
	if err != nil {
		return 0, err
	}
	c.logger.Info("Committed import batch",
		logging.Field{Key: "batch", Value: p.BatchID},
		logging.Field{Key: "added", Value: added},
		logging.Field{Key: "duplicates", Value: len(p.Transactions) - added})
	return added, nil
}

// Import is Preview followed immediately by Confirm.
func (c *Coordinator) Import(path string, fileType FileType, issuer pdfparser.Issuer) (int, error) {
	p, err := c.Preview(path, fileType, issuer)
	if err != nil {
		return 0, err
	}
	return c.Confirm(p)
}

// fillCategories runs category inference for rows the parser left blank. An
// income row that inference could not place lands in Income rather than
// Other.
func (c *Coordinator) fillCategories(txs []models.Transaction) {
	if c.categorizer == nil {
		return
	}
	for i := range txs {
		if txs[i].Category == "" {
			txs[i].Category = c.categorizer.Infer(txs[i].Description)
		}
		if txs[i].Category == models.CategoryOther && txs[i].Type == models.TypeIncome {
			txs[i].Category = models.CategoryIncome
		}
	}
}

// resolveType turns FileTypeAuto into a concrete type. CSV files are sniffed
// by header row to separate Splitwise exports from bank statements.
func (c *Coordinator) resolveType(path string, fileType FileType) (FileType, error) {
	if fileType != FileTypeAuto {
		return fileType, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FileTypePDF, nil
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		headers, err := r.Read()
		if err != nil {
			return "", &parsererror.FormatError{File: path, Reason: fmt.Sprintf("unreadable CSV: %v", err)}
		}
		if splitwiseparser.HasSplitwiseHeaders(headers) {
			return FileTypeSplitwise, nil
		}
		return FileTypeCSV, nil
	default:
		return "", &parsererror.FormatError{
			File:   path,
			Reason: fmt.Sprintf("unsupported file extension %q", filepath.Ext(path)),
		}
	}
}

// decorate attaches the file name to parser errors that lack one.
func decorate(err error, path string) error {
	switch e := err.(type) {
	case *parsererror.FormatError:
		if e.File == "" {
			e.File = path
		}
	case *parsererror.EmptyResultError:
		if e.File == "" {
			e.File = path
		}
	}
	return err
}
