// Package pdfparser extracts transactions from bank statement PDFs. Text is
// pulled from the document once, then a chain of layout strategies runs in
// order until one of them finds transactions. A statement where no strategy
// matches parses successfully with zero transactions; only unreadable files
// fail.
package pdfparser

import (
	"fmt"

	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/parsererror"
)

// Issuer selects which statement layouts to try first.
type Issuer string

const (
	IssuerAuto Issuer = "auto"
	IssuerHDFC Issuer = "hdfc"
	IssuerAxis Issuer = "axis"
)

// ParseIssuer validates a user-supplied issuer name.
func ParseIssuer(s string) (Issuer, error) {
	switch Issuer(s) {
	case "", IssuerAuto:
		return IssuerAuto, nil
	case IssuerHDFC:
		return IssuerHDFC, nil
	case IssuerAxis:
		return IssuerAxis, nil
	default:
		return "", fmt.Errorf("unsupported issuer %q (supported: auto, hdfc, axis)", s)
	}
}

// Result carries the extracted transactions plus the raw statement text for
// preview display.
type Result struct {
	Transactions []models.Transaction
	RawText      string
	Strategy     string
}

// Parse extracts transactions from the PDF at path using the issuer's
// strategy chain.
func Parse(path string, issuer Issuer, extractor TextExtractor, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = DocumentExtractor{}
	}

	text, err := extractor.ExtractText(path)
	if err != nil {
		return nil, &parsererror.FormatError{File: path, Reason: err.Error()}
	}

	for _, s := range chainFor(issuer) {
		txs := s.TryExtract(text)
		if len(txs) > 0 {
			logger.Info("Extracted transactions from PDF",
				logging.Field{Key: "strategy", Value: s.Name()},
				logging.Field{Key: "count", Value: len(txs)})
			return &Result{Transactions: txs, RawText: text, Strategy: s.Name()}, nil
		}
	}

	logger.Warn("No transactions matched any PDF layout",
		logging.Field{Key: "file", Value: path})
	return &Result{RawText: text}, nil
}
