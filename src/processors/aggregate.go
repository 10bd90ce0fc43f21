package processors

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/utils"
)

// TotalExpense sums the magnitude of every negative-priced transaction.
func TotalExpense(transactions []models.Transaction) float64 {
	var sum float64
	for _, tx := range transactions {
		if tx.Price < 0 {
			sum += math.Abs(tx.Price)
		}
	}
	return sum
}

// TotalIncome sums the price of every non-negative transaction.
func TotalIncome(transactions []models.Transaction) float64 {
	var sum float64
	for _, tx := range transactions {
		if tx.Price >= 0 {
			sum += tx.Price
		}
	}
	return sum
}

// NetBalance sums the signed price over all transactions. It always equals
// TotalIncome minus TotalExpense.
func NetBalance(transactions []models.Transaction) float64 {
	var sum float64
	for _, tx := range transactions {
		sum += tx.Price
	}
	return sum
}

// CategoryTotals groups transactions of the given type by category, summing
// price magnitudes. A blank category is coerced to the Unknown sentinel.
func CategoryTotals(transactions []models.Transaction, typ models.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		if !matchesAggregationType(tx, typ) {
			continue
		}
		category := tx.Category
		if category == "" {
			category = models.CategoryUnknown
		}
		totals[category] += math.Abs(tx.Price)
	}
	return totals
}

// DailyTotals groups transactions of the given type by calendar day. For
// the expense type the stored value is the magnitude; otherwise the signed
// price accumulates. Transactions without a resolvable date are skipped.
func DailyTotals(transactions []models.Transaction, typ models.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		if !matchesAggregationType(tx, typ) {
			continue
		}
		if tx.Date.IsZero() {
			log.Printf("Skipping transaction %s in daily totals: no valid date", tx.ID)
			continue
		}
		key := utils.DayKey(tx.Date)
		if typ == models.TypeExpense {
			totals[key] += math.Abs(tx.Price)
		} else {
			totals[key] += tx.Price
		}
	}
	return totals
}

// MonthlySummary buckets transactions by month, accumulating income,
// expense magnitude and signed balance per bucket. Transactions are walked
// chronologically; ones without a resolvable date are skipped.
func MonthlySummary(transactions []models.Transaction) map[string]models.PeriodSummary {
	return bucketSummary(transactions, utils.MonthKey, "monthly summary")
}

// WeeklyTotals buckets transactions by the custom YYYY-Www week key with
// the same income/expense/balance accumulation as MonthlySummary.
func WeeklyTotals(transactions []models.Transaction) map[string]models.PeriodSummary {
	return bucketSummary(transactions, utils.WeekKey, "weekly totals")
}

// CategoryBreakdown derives chart-ready {name, value, percentage} entries
// from CategoryTotals, sorted descending by value. Percentages are shares
// of the type's own total and are zero when that total is zero.
func CategoryBreakdown(transactions []models.Transaction, typ models.TransactionType) []models.CategoryBreakdownEntry {
	totals := CategoryTotals(transactions, typ)

	var total float64
	for _, value := range totals {
		total += value
	}

	entries := make([]models.CategoryBreakdownEntry, 0, len(totals))
	for _, name := range sortedKeys(totals) {
		value := totals[name]
		percentage := 0.0
		if total > 0 {
			percentage = value / total * 100
		}
		entries = append(entries, models.CategoryBreakdownEntry{
			Name:       name,
			Value:      value,
			Percentage: percentage,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	return entries
}

// TopCategories ranks categories of the given type by summed magnitude and
// truncates to limit. Each category is classified income or expense from
// the sign of its first matching transaction; the Starting Point sentinel
// always reads as income.
func TopCategories(transactions []models.Transaction, typ models.TransactionType, limit int) []models.TopCategory {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matchesAggregationType(tx, typ) {
			filtered = append(filtered, tx)
		}
	}

	totals := make(map[string]float64)
	for _, tx := range filtered {
		totals[tx.Category] += math.Abs(tx.Price)
	}

	entries := make([]models.TopCategory, 0, len(totals))
	for _, name := range sortedKeys(totals) {
		entries = append(entries, models.TopCategory{
			Name:            name,
			Value:           totals[name],
			TransactionType: classifyCategory(name, filtered),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	return entries[:utils.ClampLimit(limit, len(entries))]
}

// classifyCategory infers whether a category reads as income or expense
// from the first transaction carrying it.
func classifyCategory(name string, transactions []models.Transaction) models.TransactionType {
	if name == models.CategoryStartingPoint {
		return models.TypeIncome
	}
	for _, tx := range transactions {
		if tx.Category == name {
			return tx.Type()
		}
	}
	return models.TypeExpense
}

// bucketSummary is the shared monthly/weekly reduction.
func bucketSummary(transactions []models.Transaction, keyFn func(t time.Time) string, what string) map[string]models.PeriodSummary {
	buckets := make(map[string]models.PeriodSummary)

	// Walk chronologically so balances accumulate in calendar order.
	ordered := SortTransactions(transactions, models.TransactionSort{
		Field:     models.SortByDate,
		Direction: models.SortAsc,
	})

	for _, tx := range ordered {
		if tx.Date.IsZero() {
			log.Printf("Skipping transaction %s in %s: no valid date", tx.ID, what)
			continue
		}
		key := keyFn(tx.Date)
		summary := buckets[key]
		if tx.Price >= 0 {
			summary.Income += tx.Price
		} else {
			summary.Expense += math.Abs(tx.Price)
		}
		summary.Balance += tx.Price
		buckets[key] = summary
	}
	return buckets
}

// matchesAggregationType treats an empty type as "all", mirroring the
// filter engine.
func matchesAggregationType(tx models.Transaction, typ models.TransactionType) bool {
	return typ == "" || tx.MatchesType(typ)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
