package models

// Category identifiers. CategoryOther is the sentinel assigned when nothing
// matches; CategoryIncome is assigned by the income-keyword rule.
const (
	CategoryOther          = "Other"
	CategoryIncome         = "Income"
	CategoryFood           = "Food & Dining"
	CategoryGroceries      = "Groceries"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryHealth         = "Health"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryInsurance      = "Insurance"
	CategoryBanking        = "Banking & Finance"
	CategorySports         = "Sports & Fitness"
)

// DescriptionPlaceholder replaces empty descriptions so the field is never blank.
const DescriptionPlaceholder = "Unknown transaction"

// DefaultCurrency is applied to Splitwise rows without a currency column.
const DefaultCurrency = "INR"

// DateLayoutISO is the canonical date encoding used by the store and exports.
const DateLayoutISO = "2006-01-02"
