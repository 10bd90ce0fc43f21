package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/finboard/src/logger"
	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/parsers"
	"github.com/username/finboard/src/processors"
	"github.com/username/finboard/src/security/validation"
)

var (
	ErrParsingFailed   = errors.New("parsing failed")
	ErrNoTransactions  = errors.New("no valid transactions found in file")
	ErrDatasetNotFound = errors.New("dataset not found")
)

const (
	ckDataset = "dataset_%s"

	// DefaultTopLimit caps leaderboard views when the caller does not ask
	// for a specific size.
	DefaultTopLimit = 10
)

type dashboardServiceImpl struct {
	parser       parsers.TransactionParser
	datasetCache *cache.Cache
}

func NewDashboardService(parser parsers.TransactionParser, datasetCache *cache.Cache) DashboardService {
	return &dashboardServiceImpl{
		parser:       parser,
		datasetCache: datasetCache,
	}
}

// ImportCSV validates the upload's header, parses the rows, and stores the
// dataset under a fresh ID. Header validation and the zero-rows check
// happen here, not in the parser: the parser recovers row by row, while an
// import with no usable data is rejected wholesale.
func (s *dashboardServiceImpl) ImportCSV(fileReader io.Reader) (*ImportResult, error) {
	startTime := time.Now()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %v", ErrParsingFailed, err)
	}

	content := strings.TrimSpace(string(data))
	headerLine, _, _ := strings.Cut(content, "\n")
	if err := validation.ValidateCSVHeader(headerLine); err != nil {
		return nil, err
	}

	transactions, err := s.parser.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}

	dataRows := strings.Count(content, "\n")
	dropped := dataRows - len(transactions)

	datasetID := uuid.NewString()
	s.datasetCache.Set(fmt.Sprintf(ckDataset, datasetID), transactions, cache.DefaultExpiration)

	logger.L.Info("CSV import complete",
		"datasetID", datasetID,
		"imported", len(transactions),
		"dropped", dropped,
		"duration", time.Since(startTime))

	return &ImportResult{
		DatasetID:  datasetID,
		Imported:   len(transactions),
		Dropped:    dropped,
		Categories: processors.UniqueCategories(transactions),
		Months:     processors.AvailableMonths(transactions),
	}, nil
}

func (s *dashboardServiceImpl) Transactions(datasetID string, filters models.TransactionFilters, sortBy models.TransactionSort) ([]models.Transaction, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	filtered := processors.FilterTransactions(transactions, filters)
	return processors.SortTransactions(filtered, sortBy), nil
}

func (s *dashboardServiceImpl) Summary(datasetID string, filters models.TransactionFilters, typ models.TransactionType, limit int) (*Summary, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultTopLimit
	}

	filtered := processors.FilterTransactions(transactions, filters)
	return &Summary{
		TotalIncome:       processors.TotalIncome(filtered),
		TotalExpense:      processors.TotalExpense(filtered),
		NetBalance:        processors.NetBalance(filtered),
		CategoryBreakdown: processors.CategoryBreakdown(filtered, typ),
		TopCategories:     processors.TopCategories(filtered, typ, limit),
		TopIncome:         processors.TopTransactions(filtered, models.TypeIncome, limit),
		TopExpenses:       processors.TopTransactions(filtered, models.TypeExpense, limit),
	}, nil
}

func (s *dashboardServiceImpl) DailyTotals(datasetID string, filters models.TransactionFilters, typ models.TransactionType) (map[string]float64, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return processors.DailyTotals(processors.FilterTransactions(transactions, filters), typ), nil
}

func (s *dashboardServiceImpl) WeeklyTotals(datasetID string, filters models.TransactionFilters) (map[string]models.PeriodSummary, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return processors.WeeklyTotals(processors.FilterTransactions(transactions, filters)), nil
}

func (s *dashboardServiceImpl) MonthlySummary(datasetID string, filters models.TransactionFilters) (map[string]models.PeriodSummary, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return processors.MonthlySummary(processors.FilterTransactions(transactions, filters)), nil
}

// Categories and Months intentionally ignore filters: option lists need the
// global context of the whole dataset.
func (s *dashboardServiceImpl) Categories(datasetID string) ([]string, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return processors.UniqueCategories(transactions), nil
}

func (s *dashboardServiceImpl) Months(datasetID string) ([]models.MonthOption, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return processors.AvailableMonths(transactions), nil
}

func (s *dashboardServiceImpl) DeleteDataset(datasetID string) error {
	key := fmt.Sprintf(ckDataset, datasetID)
	if _, found := s.datasetCache.Get(key); !found {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetID)
	}
	s.datasetCache.Delete(key)
	logger.L.Info("Dataset deleted", "datasetID", datasetID)
	return nil
}

func (s *dashboardServiceImpl) dataset(datasetID string) ([]models.Transaction, error) {
	if cached, found := s.datasetCache.Get(fmt.Sprintf(ckDataset, datasetID)); found {
		return cached.([]models.Transaction), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetID)
}
