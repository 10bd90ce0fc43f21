package processors

import (
	"strconv"
	"strings"

	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/utils"
)

// FilterTransactions returns the subset of transactions matching the given
// predicate set. Inputs are never mutated.
func FilterTransactions(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matchesFilters(tx, filters) {
			out = append(out, tx)
		}
	}
	return out
}

// matchesFilters evaluates the predicates in a fixed order, failing closed
// on the first miss. A non-empty search term is special: once a transaction
// has survived the earlier predicates, the search match alone decides the
// outcome. Callers rely on that exact behaviour; see DESIGN.md before
// changing it.
func matchesFilters(tx models.Transaction, filters models.TransactionFilters) bool {
	if filters.ExcludeStartingPoint && tx.Category == models.CategoryStartingPoint {
		return false
	}

	if len(filters.Categories) > 0 && !containsString(filters.Categories, tx.Category) {
		return false
	}

	typ := filters.TransactionType
	if typ != "" && typ != models.TypeAll && !tx.MatchesType(typ) {
		return false
	}

	if filters.Month != "" && utils.MonthKey(tx.Date) != filters.Month {
		return false
	}

	from, to := filters.DateRange.From, filters.DateRange.To
	switch {
	case from != nil && to != nil:
		if tx.Date.Before(*from) || tx.Date.After(*to) {
			return false
		}
	case from != nil:
		if tx.Date.Before(*from) {
			return false
		}
	case to != nil:
		if tx.Date.After(*to) {
			return false
		}
	}

	if filters.PriceRange.Min != nil && tx.Price < *filters.PriceRange.Min {
		return false
	}
	if filters.PriceRange.Max != nil && tx.Price > *filters.PriceRange.Max {
		return false
	}

	if filters.SearchTerm != "" {
		return matchesSearch(tx, filters.SearchTerm)
	}

	return true
}

// matchesSearch does a case-insensitive substring match against name,
// category, notes and the decimal string form of the price.
func matchesSearch(tx models.Transaction, term string) bool {
	q := strings.ToLower(term)
	return strings.Contains(strings.ToLower(tx.Name), q) ||
		strings.Contains(strings.ToLower(tx.Category), q) ||
		strings.Contains(strings.ToLower(tx.Notes), q) ||
		strings.Contains(strconv.FormatFloat(tx.Price, 'f', -1, 64), q)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
