package models

import "time"

// Sentinel category values. Categories are open-ended strings populated at
// parse time; these two are the only names the pipeline treats specially.
const (
	CategoryUnknown       = "Unknown"
	CategoryStartingPoint = "Starting Point"
)

// TransactionType classifies a transaction by the sign of its price.
// It is always derived from the sign, never stored.
type TransactionType string

const (
	TypeAll     TransactionType = "all"
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single dated, categorized monetary record.
// Price is signed: negative = expense, zero or positive = income.
type Transaction struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes"`
}

// Type returns the derived income/expense classification.
func (t Transaction) Type() TransactionType {
	if t.Price < 0 {
		return TypeExpense
	}
	return TypeIncome
}

// MatchesType reports whether the transaction belongs to the given type.
// TypeAll matches every transaction.
func (t Transaction) MatchesType(typ TransactionType) bool {
	switch typ {
	case TypeIncome:
		return t.Price >= 0
	case TypeExpense:
		return t.Price < 0
	default:
		return true
	}
}
