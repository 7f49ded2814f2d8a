package pdfparser

import (
	"regexp"
	"strings"

	"github.com/meghaa105/personal-finance-sub000/internal/amountutils"
	"github.com/meghaa105/personal-finance-sub000/internal/dateutils"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
)

// strategy tries to lift transactions from extracted statement text. The
// first strategy in a chain that yields at least one transaction wins.
type strategy interface {
	Name() string
	TryExtract(text string) []models.Transaction
}

// hdfcStrategy matches HDFC statement lines where date, narration and amount
// share a single line, optionally suffixed with a Cr/Dr marker.
type hdfcStrategy struct{}

var hdfcLine = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(?:₹|Rs\.?|INR)?\s*([\d,]+\.\d{2})\s*(Cr|Dr)?\s*$`)

func (hdfcStrategy) Name() string { return "hdfc" }

func (hdfcStrategy) TryExtract(text string) []models.Transaction {
	var txs []models.Transaction
	for _, line := range strings.Split(text, "\n") {
		m := hdfcLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		tx, ok := buildTransaction(m[1], m[2], m[3], m[4])
		if ok {
			txs = append(txs, tx)
		}
	}
	return txs
}

// axisStrategy handles Axis statements where the narration wraps onto the
// line after the date. It only engages when the text names the bank, so it
// cannot shadow the generic strategies on other issuers.
type axisStrategy struct{}

var (
	axisMarker = regexp.MustCompile(`(?i)axis\s+bank`)
	axisLine   = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\s+(.*?)\s*([\d,]+\.\d{2})\s*(CR|DR)?\s*$`)
	axisDate   = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\s*(.*)$`)
	bareAmount = regexp.MustCompile(`^([\d,]+\.\d{2})\s*(CR|DR)?\s*$`)
)

func (axisStrategy) Name() string { return "axis" }

func (axisStrategy) TryExtract(text string) []models.Transaction {
	if !axisMarker.MatchString(text) {
		return nil
	}

	lines := strings.Split(text, "\n")
	var txs []models.Transaction
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if m := axisLine.FindStringSubmatch(line); m != nil && m[2] != "" {
			if tx, ok := buildTransaction(m[1], m[2], m[3], m[4]); ok {
				txs = append(txs, tx)
			}
			continue
		}

		// Date alone or date plus partial narration, amount on the next line.
		m := axisDate.FindStringSubmatch(line)
		if m == nil || i+1 >= len(lines) {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		if am := bareAmount.FindStringSubmatch(next); am != nil && m[2] != "" {
			if tx, ok := buildTransaction(m[1], m[2], am[1], am[2]); ok {
				txs = append(txs, tx)
				i++
			}
		}
	}
	return txs
}

// genericPatternStrategy tries a fixed list of combined line patterns and
// keeps the first pattern that matches anything, so one statement never mixes
// two layouts.
type genericPatternStrategy struct{}

var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^(\d{1,2}/\d{1,2}/\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*(Cr|Dr|CR|DR)?\s*$`),
	regexp.MustCompile(`(?m)^(\d{1,2}-\d{1,2}-\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*(Cr|Dr|CR|DR)?\s*$`),
	regexp.MustCompile(`(?m)^(\d{1,2}\s+[A-Za-z]{3}\s+\d{2,4})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s*(Cr|Dr|CR|DR)?\s*$`),
}

func (genericPatternStrategy) Name() string { return "generic-pattern" }

func (genericPatternStrategy) TryExtract(text string) []models.Transaction {
	for _, pattern := range genericPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		var txs []models.Transaction
		for _, m := range matches {
			if tx, ok := buildTransaction(m[1], m[2], m[3], m[4]); ok {
				txs = append(txs, tx)
			}
		}
		if len(txs) > 0 {
			return txs
		}
	}
	return nil
}

// lineScanStrategy is the loosest fallback. Any line holding both a date-like
// and an amount-like token becomes a candidate, with the text between them as
// the description. A bare following line is folded into the description.
type lineScanStrategy struct{}

var (
	dateToken   = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}-\d{2}-\d{2}|\d{1,2}\s+[A-Za-z]{3}\s+\d{2,4}`)
	amountToken = regexp.MustCompile(`-?[\d,]+\.\d{2}`)
)

func (lineScanStrategy) Name() string { return "line-scan" }

func (lineScanStrategy) TryExtract(text string) []models.Transaction {
	lines := strings.Split(text, "\n")
	var txs []models.Transaction
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		dateLoc := dateToken.FindStringIndex(line)
		if dateLoc == nil {
			continue
		}
		rest := line[dateLoc[1]:]
		amountLoc := amountToken.FindStringIndex(rest)
		if amountLoc == nil {
			continue
		}

		desc := strings.TrimSpace(rest[:amountLoc[0]])
		if desc == "" && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !dateToken.MatchString(next) && !amountToken.MatchString(next) {
				desc = next
				i++
			}
		}
		if desc == "" {
			continue
		}

		if tx, ok := buildTransaction(line[dateLoc[0]:dateLoc[1]], desc, rest[amountLoc[0]:amountLoc[1]], ""); ok {
			txs = append(txs, tx)
		}
	}
	return txs
}

// buildTransaction assembles a transaction from raw captures, rejecting rows
// whose date or amount do not parse or whose amount is zero.
func buildTransaction(dateStr, desc, amountStr, crDr string) (models.Transaction, bool) {
	date, err := dateutils.ParseDate(dateStr)
	if err != nil {
		return models.Transaction{}, false
	}
	amount, err := amountutils.ParseAmount(amountStr)
	if err != nil || amount.IsZero() {
		return models.Transaction{}, false
	}

	txType := models.TypeExpense
	switch {
	case strings.EqualFold(crDr, "cr"):
		txType = models.TypeIncome
	case strings.EqualFold(crDr, "dr"):
		txType = models.TypeExpense
	case amount.IsNegative():
		txType = models.TypeExpense
	case models.IncomePattern.MatchString(desc):
		txType = models.TypeIncome
	}

	tx := models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount.Abs(),
		Type:        txType,
		Source:      models.SourcePDF,
	}
	tx.Normalize()
	return tx, true
}

// chainFor returns the strategies for an issuer. Naming an issuer
// short-circuits to that issuer's strategy alone: if its layout does not
// match, the parse yields nothing rather than falling through to the generic
// heuristics. Only the auto chain runs every layout plus the fallbacks.
func chainFor(issuer Issuer) []strategy {
	switch issuer {
	case IssuerHDFC:
		return []strategy{hdfcStrategy{}}
	case IssuerAxis:
		return []strategy{axisStrategy{}}
	default:
		return []strategy{hdfcStrategy{}, axisStrategy{}, genericPatternStrategy{}, lineScanStrategy{}}
	}
}
