package csvparser

import (
	"strings"
)

// BankProfile is a named header-mapping scheme. Detection tests header
// presence against each profile's signature in a fixed priority order; the
// checks are not mutually exclusive, so the ordering below is a behavioral
// contract, not an optimization.
type BankProfile struct {
	Name string

	// Signature headers that must all be present for the profile to match.
	Signature []string

	// Header synonyms per field, tested case-insensitively, exact match
	// first and substring match second.
	DateHeaders        []string
	DescriptionHeaders []string
	AmountHeaders      []string
	TypeHeaders        []string
}

// profiles in detection priority order.
var profiles = []BankProfile{
	{
		Name:               "axis",
		Signature:          []string{"tran date", "particulars"},
		DateHeaders:        []string{"tran date"},
		DescriptionHeaders: []string{"particulars"},
		AmountHeaders:      []string{"amount (inr)", "debit", "credit"},
		TypeHeaders:        []string{"dr/cr"},
	},
	{
		Name:               "hdfc",
		Signature:          []string{"narration", "withdrawal amt"},
		DateHeaders:        []string{"date"},
		DescriptionHeaders: []string{"narration"},
		AmountHeaders:      []string{"withdrawal amt", "deposit amt"},
		TypeHeaders:        nil,
	},
	{
		Name:               "icici",
		Signature:          []string{"transaction remarks"},
		DateHeaders:        []string{"value date", "transaction date"},
		DescriptionHeaders: []string{"transaction remarks"},
		AmountHeaders:      []string{"withdrawal amount", "deposit amount"},
		TypeHeaders:        nil,
	},
	{
		Name:               "sbi",
		Signature:          []string{"txn date", "ref no"},
		DateHeaders:        []string{"txn date", "value date"},
		DescriptionHeaders: []string{"description"},
		AmountHeaders:      []string{"debit", "credit"},
		TypeHeaders:        nil,
	},
}

// genericProfile is the fallback mapping used when no named profile matches.
var genericProfile = BankProfile{
	Name:               "generic",
	DateHeaders:        []string{"date"},
	DescriptionHeaders: []string{"description", "details", "particulars", "narration", "remarks"},
	AmountHeaders:      []string{"amount", "value"},
	TypeHeaders:        []string{"type", "dr/cr", "transaction type"},
}

// DetectProfile returns the first profile whose signature headers are all
// present, or nil for the generic mapping.
func DetectProfile(headers []string) *BankProfile {
	for i := range profiles {
		if profileMatches(&profiles[i], headers) {
			return &profiles[i]
		}
	}
	return nil
}

func profileMatches(p *BankProfile, headers []string) bool {
	for _, sig := range p.Signature {
		if findColumn(headers, []string{sig}) < 0 {
			return false
		}
	}
	return len(p.Signature) > 0
}

// findColumn locates the first header matching one of the synonyms, trying
// case-insensitive exact matches across all synonyms before falling back to
// substring containment.
func findColumn(headers []string, synonyms []string) int {
	for _, syn := range synonyms {
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), syn) {
				return i
			}
		}
	}
	for _, syn := range synonyms {
		for i, h := range headers {
			if strings.Contains(strings.ToLower(h), strings.ToLower(syn)) {
				return i
			}
		}
	}
	return -1
}
