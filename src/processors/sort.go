package processors

import (
	"sort"
	"strings"

	"github.com/username/finboard/src/models"
)

// SortTransactions returns a copy of the transactions ordered by the given
// field and direction. The sort is stable; equal keys keep their relative
// input order and no secondary tie-break is applied.
func SortTransactions(transactions []models.Transaction, by models.TransactionSort) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch by.Field {
		case models.SortByPrice:
			less = out[i].Price < out[j].Price
		case models.SortByCategory:
			less = strings.ToLower(out[i].Category) < strings.ToLower(out[j].Category)
		case models.SortByName:
			less = strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		default: // date
			less = out[i].Date.Before(out[j].Date)
		}
		if by.Direction == models.SortAsc {
			return less
		}
		return !less
	})
	return out
}
