package ledger

import "fmt"

// TransactionType is the kind of credit movement recorded in the journal
type TransactionType string

const (
	// TransactionTypeSellRefined is income from selling refined goods at a trade station
	TransactionTypeSellRefined TransactionType = "SELL_REFINED"

	// TransactionTypeBuyUpgrade is a permanent ship upgrade purchase
	TransactionTypeBuyUpgrade TransactionType = "BUY_UPGRADE"

	// TransactionTypeRefiningFee is the up-front charge for a refining job
	TransactionTypeRefiningFee TransactionType = "REFINING_FEE"
)

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeSellRefined,
		TransactionTypeBuyUpgrade,
		TransactionTypeRefiningFee,
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	_, ok := typeCategories[t]
	return ok
}

// ToCategory maps the transaction type to its reporting category
func (t TransactionType) ToCategory() (Category, error) {
	category, exists := typeCategories[t]
	if !exists {
		return "", fmt.Errorf("unknown transaction type: %s", t)
	}
	return category, nil
}

// ParseTransactionType parses a string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}
