package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/security/validation"
	"github.com/username/finboard/src/utils"
)

// parseFilters maps query parameters onto a TransactionFilters value.
// Absent parameters leave their predicate unrestricted.
func parseFilters(r *http.Request) (models.TransactionFilters, error) {
	q := r.URL.Query()
	var filters models.TransactionFilters

	if raw := q.Get("categories"); raw != "" {
		for _, category := range strings.Split(raw, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filters.Categories = append(filters.Categories, category)
			}
		}
	}

	filters.ExcludeStartingPoint = q.Get("excludeStartingPoint") == "true"

	typ, err := parseTransactionType(q.Get("type"))
	if err != nil {
		return filters, err
	}
	filters.TransactionType = typ

	filters.Month = q.Get("month")

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(utils.DayKeyFormat, raw)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date %q, expected YYYY-MM-DD", raw)
		}
		filters.DateRange.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(utils.DayKeyFormat, raw)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date %q, expected YYYY-MM-DD", raw)
		}
		filters.DateRange.To = &t
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid 'minPrice' value %q", raw)
		}
		filters.PriceRange.Min = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid 'maxPrice' value %q", raw)
		}
		filters.PriceRange.Max = &v
	}

	filters.SearchTerm = validation.StripUnprintable(q.Get("search"))
	return filters, nil
}

// parseSort reads sort/dir parameters. Selecting a field without an
// explicit direction applies descending order.
func parseSort(r *http.Request) models.TransactionSort {
	q := r.URL.Query()
	sortBy := models.DefaultSort()

	switch field := models.SortField(q.Get("sort")); field {
	case models.SortByDate, models.SortByPrice, models.SortByCategory, models.SortByName:
		sortBy.Field = field
	}
	if q.Get("dir") == string(models.SortAsc) {
		sortBy.Direction = models.SortAsc
	}
	return sortBy
}

func parseTransactionType(raw string) (models.TransactionType, error) {
	switch typ := models.TransactionType(raw); typ {
	case "", models.TypeAll:
		return models.TypeAll, nil
	case models.TypeIncome, models.TypeExpense:
		return typ, nil
	default:
		return models.TypeAll, fmt.Errorf("invalid 'type' value %q, expected income, expense or all", raw)
	}
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid 'limit' value %q", raw)
	}
	return limit, nil
}
