package services

import (
	"io"

	"github.com/username/finboard/src/models"
)

// ImportResult is returned to the client after a successful CSV import.
// Categories and Months seed the UI's filter option lists without a
// second round trip.
type ImportResult struct {
	DatasetID  string               `json:"datasetId"`
	Imported   int                  `json:"imported"`
	Dropped    int                  `json:"dropped"`
	Categories []string             `json:"categories"`
	Months     []models.MonthOption `json:"months"`
}

// Summary is the headline dashboard view of a (possibly filtered) dataset.
type Summary struct {
	TotalIncome       float64                         `json:"totalIncome"`
	TotalExpense      float64                         `json:"totalExpense"`
	NetBalance        float64                         `json:"netBalance"`
	CategoryBreakdown []models.CategoryBreakdownEntry `json:"categoryBreakdown"`
	TopCategories     []models.TopCategory            `json:"topCategories"`
	TopIncome         []models.Transaction            `json:"topIncome"`
	TopExpenses       []models.Transaction            `json:"topExpenses"`
}

// DashboardService defines the core import-and-derive logic behind the API.
// Derived views recompute from scratch on every call; only the imported
// dataset itself is held, in memory, until its TTL lapses.
type DashboardService interface {
	ImportCSV(fileReader io.Reader) (*ImportResult, error)
	Transactions(datasetID string, filters models.TransactionFilters, sortBy models.TransactionSort) ([]models.Transaction, error)
	Summary(datasetID string, filters models.TransactionFilters, typ models.TransactionType, limit int) (*Summary, error)
	DailyTotals(datasetID string, filters models.TransactionFilters, typ models.TransactionType) (map[string]float64, error)
	WeeklyTotals(datasetID string, filters models.TransactionFilters) (map[string]models.PeriodSummary, error)
	MonthlySummary(datasetID string, filters models.TransactionFilters) (map[string]models.PeriodSummary, error)
	Categories(datasetID string) ([]string, error)
	Months(datasetID string) ([]models.MonthOption, error)
	DeleteDataset(datasetID string) error
}
