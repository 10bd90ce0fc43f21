package models

import "time"

// DateRange bounds a filter on the transaction date. Either end may be nil,
// leaving that side of the interval open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// PriceRange bounds a filter on the signed price. Either end may be nil.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// TransactionFilters is the transient predicate set the UI passes into the
// filter engine on every interaction. Zero value means "no restriction".
type TransactionFilters struct {
	// Categories is an allow-list; nil or empty means all categories pass.
	Categories []string `json:"categories,omitempty"`
	// ExcludeStartingPoint drops the "Starting Point" sentinel category.
	ExcludeStartingPoint bool `json:"excludeStartingPoint,omitempty"`
	// TransactionType restricts by sign; empty is treated as TypeAll.
	TransactionType TransactionType `json:"transactionType,omitempty"`
	// Month restricts to a single "YYYY-MM" bucket when non-empty.
	Month      string     `json:"month,omitempty"`
	DateRange  DateRange  `json:"dateRange,omitempty"`
	PriceRange PriceRange `json:"priceRange,omitempty"`
	// SearchTerm is matched case-insensitively against name, category,
	// notes and the decimal form of the price.
	SearchTerm string `json:"searchTerm,omitempty"`
}

// SortField selects the transaction attribute to order by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByPrice    SortField = "price"
	SortByCategory SortField = "category"
	SortByName     SortField = "name"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TransactionSort pairs a sort field with a direction.
type TransactionSort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort is the order a freshly loaded dataset is presented in.
func DefaultSort() TransactionSort {
	return TransactionSort{Field: SortByDate, Direction: SortDesc}
}
