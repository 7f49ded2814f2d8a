package categorizer

import (
	"github.com/meghaa105/personal-finance-sub000/internal/models"
)

// DefaultCategories is the built-in keyword table, consulted after custom
// mappings. Order matters: the first category whose keyword list contains a
// substring match wins. Keywords are lowercase; matching is case-insensitive
// substring containment, not word-boundary matching, so short patterns can
// over-match.
var DefaultCategories = []models.CategoryConfig{
	{
		Name: models.CategoryFood,
		Keywords: []string{
			"swiggy", "zomato", "restaurant", "cafe", "coffee", "pizza",
			"burger", "dominos", "mcdonald", "kfc", "barbeque", "dhaba",
			"biryani", "eatery", "bakery",
		},
	},
	{
		Name: models.CategoryGroceries,
		Keywords: []string{
			"bigbasket", "blinkit", "zepto", "grofers", "dmart", "grocery",
			"supermarket", "kirana", "reliance fresh", "more retail", "vegetables",
		},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{
			"amazon", "flipkart", "myntra", "ajio", "nykaa", "snapdeal",
			"meesho", "mall", "lifestyle", "shopping",
		},
	},
	{
		Name: models.CategoryTransportation,
		Keywords: []string{
			"uber", "ola", "rapido", "metro", "fuel", "petrol", "diesel",
			"parking", "toll", "fastag", "auto rickshaw", "bus ticket",
		},
	},
	{
		Name: models.CategoryEntertainment,
		Keywords: []string{
			"netflix", "prime video", "hotstar", "spotify", "bookmyshow",
			"movie", "cinema", "pvr", "inox", "gaming",
		},
	},
	{
		Name: models.CategoryHousing,
		Keywords: []string{
			"rent", "maintenance", "society", "landlord", "apartment",
			"furniture", "home depot",
		},
	},
	{
		Name: models.CategoryUtilities,
		Keywords: []string{
			"electricity", "water bill", "gas bill", "broadband", "wifi",
			"airtel", "jio", "vodafone", "bsnl", "recharge", "dth", "postpaid",
		},
	},
	{
		Name: models.CategoryHealth,
		Keywords: []string{
			"pharmacy", "apollo", "medplus", "hospital", "clinic", "doctor",
			"medicine", "netmeds", "pharmeasy", "diagnostic", "dental",
		},
	},
	{
		Name: models.CategoryEducation,
		Keywords: []string{
			"udemy", "coursera", "school", "college", "tuition", "course fee",
			"exam fee", "textbook",
		},
	},
	{
		Name: models.CategoryTravel,
		Keywords: []string{
			"makemytrip", "goibibo", "oyo", "airbnb", "hotel", "flight",
			"indigo", "spicejet", "vistara", "irctc", "train ticket", "yatra",
		},
	},
	{
		Name: models.CategoryInsurance,
		Keywords: []string{
			"insurance", "lic ", "policy premium", "premium payment",
		},
	},
	{
		Name: models.CategoryBanking,
		Keywords: []string{
			"emi", "loan", "interest", "bank charge", "fixed deposit",
			"mutual fund", "sip", "zerodha", "groww", "brokerage",
		},
	},
	{
		Name: models.CategorySports,
		Keywords: []string{
			"gym", "fitness", "cult.fit", "decathlon", "sports", "yoga",
			"swimming",
		},
	},
}
