package processors

import (
	"log"
	"math"
	"sort"

	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/utils"
)

// UniqueCategories returns the distinct non-empty categories present in the
// transactions, sorted alphabetically. Used to populate filter option lists.
func UniqueCategories(transactions []models.Transaction) []string {
	seen := make(map[string]bool)
	for _, tx := range transactions {
		if tx.Category != "" {
			seen[tx.Category] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// TopTransactions returns the limit transactions of the given sign class
// with the greatest magnitude: income ordered by signed price descending,
// expenses by absolute value descending.
func TopTransactions(transactions []models.Transaction, typ models.TransactionType, limit int) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if typ == models.TypeIncome {
			if tx.Price >= 0 {
				filtered = append(filtered, tx)
			}
		} else if tx.Price < 0 {
			filtered = append(filtered, tx)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if typ == models.TypeIncome {
			return filtered[i].Price > filtered[j].Price
		}
		return math.Abs(filtered[i].Price) > math.Abs(filtered[j].Price)
	})
	return filtered[:utils.ClampLimit(limit, len(filtered))]
}

// AvailableMonths returns the distinct month buckets present in the data in
// chronological order, each paired with a display label. Transactions
// without a resolvable date are skipped here only.
func AvailableMonths(transactions []models.Transaction) []models.MonthOption {
	seen := make(map[string]bool)
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			log.Printf("Skipping transaction %s in month options: no valid date", tx.ID)
			continue
		}
		seen[utils.MonthKey(tx.Date)] = true
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	months := make([]models.MonthOption, 0, len(keys))
	for _, key := range keys {
		months = append(months, models.MonthOption{Value: key, Label: utils.MonthLabel(key)})
	}
	return months
}
