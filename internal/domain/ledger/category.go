package ledger

import "fmt"

// Category groups transaction types for cash flow summaries
type Category string

const (
	CategoryTradingRevenue     Category = "TRADING_REVENUE"
	CategoryUpgradeInvestments Category = "UPGRADE_INVESTMENTS"
	CategoryRefiningCosts      Category = "REFINING_COSTS"
)

var typeCategories = map[TransactionType]Category{
	TransactionTypeSellRefined: CategoryTradingRevenue,
	TransactionTypeBuyUpgrade:  CategoryUpgradeInvestments,
	TransactionTypeRefiningFee: CategoryRefiningCosts,
}

func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryTradingRevenue, CategoryUpgradeInvestments, CategoryRefiningCosts:
		return true
	default:
		return false
	}
}

// IsIncome returns true if the category represents income
func (c Category) IsIncome() bool {
	return c == CategoryTradingRevenue
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
