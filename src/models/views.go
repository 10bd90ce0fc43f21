package models

// PeriodSummary accumulates income, expense magnitude and signed balance
// for one time bucket (day, week or month).
type PeriodSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CategoryBreakdownEntry is one slice of the category pie: the summed
// magnitude for a category and its share of the total, in percent.
type CategoryBreakdownEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// TopCategory is one row of the category leaderboard. TransactionType
// records whether the category as a whole reads as income or expense.
type TopCategory struct {
	Name            string          `json:"name"`
	Value           float64         `json:"value"`
	TransactionType TransactionType `json:"transactionType"`
}

// MonthOption is a selectable month bucket: the "YYYY-MM" key the filter
// engine understands plus a human-readable label.
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
