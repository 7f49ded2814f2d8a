// Package models provides the data structures shared by all parsers and stores.
package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Source records where a transaction was imported from.
type Source string

const (
	SourceManual    Source = "manual"
	SourceCSV       Source = "csv"
	SourcePDF       Source = "pdf"
	SourceSplitwise Source = "splitwise"
)

// Transaction is the canonical normalized record emitted by every parser.
// Amount is always a non-negative magnitude; the direction is carried by Type.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Source      Source
	Currency    string
}

// Normalize trims the description, substitutes the placeholder when it is
// empty, strips the time component from the date and forces the amount to a
// non-negative magnitude.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		t.Description = DescriptionPlaceholder
	}
	t.Date = time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
	t.Amount = t.Amount.Abs()
	if t.Source == "" {
		t.Source = SourceManual
	}
}

// IncomePattern matches descriptions that indicate incoming money. It is used
// both for category inference and for the PDF strategies' type heuristics.
var IncomePattern = regexp.MustCompile(`(?i)salary|deposit|payment received|refund|transfer from|cashback|credit received`)

var (
	expenseTypePattern = regexp.MustCompile(`(?i)debit|payment|purchase|withdrawal`)
	incomeTypePattern  = regexp.MustCompile(`(?i)credit|deposit|refund|transfer from`)
)

// InferType resolves the transaction direction from a signed amount, an
// optional type-field string and the values of a debit/credit column pair.
// The rules are ordered; the first match wins:
//
//  1. negative amount -> expense
//  2. type field contains a debit keyword -> expense
//  3. type field contains a credit keyword -> income
//  4. non-empty debit column -> expense
//  5. non-empty credit column -> income
//  6. default -> expense
func InferType(amount decimal.Decimal, typeField, debitField, creditField string) TransactionType {
	if amount.IsNegative() {
		return TypeExpense
	}
	if typeField != "" {
		if expenseTypePattern.MatchString(typeField) {
			return TypeExpense
		}
		if incomeTypePattern.MatchString(typeField) {
			return TypeIncome
		}
	}
	if strings.TrimSpace(debitField) != "" {
		return TypeExpense
	}
	if strings.TrimSpace(creditField) != "" {
		return TypeIncome
	}
	return TypeExpense
}

// CustomMapping is a user-defined mapping from a category to the lowercase
// substring patterns that select it. Mappings are consulted in insertion order
// and take precedence over the built-in keyword table.
type CustomMapping struct {
	Category string   `yaml:"category"`
	Patterns []string `yaml:"patterns"`
}

// CategoryConfig names a built-in category and its keyword list.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
