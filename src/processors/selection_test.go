package processors

import (
	"testing"
	"time"

	"github.com/username/finboard/src/models"
)

func TestUniqueCategories(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Category: "Rent", Price: -900, Date: day(2023, time.April, 2)},
		{ID: "2", Category: "Food", Price: -50, Date: day(2023, time.May, 3)},
		{ID: "3", Category: "Food", Price: -120.5, Date: day(2023, time.May, 3)},
		{ID: "4", Category: "", Price: -5, Date: day(2023, time.May, 4)},
	}
	got := UniqueCategories(txs)
	want := []string{"Food", "Rent"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTopTransactionsExpensesByMagnitude(t *testing.T) {
	txs := []models.Transaction{
		{ID: "small", Price: -10, Date: day(2023, time.May, 1)},
		{ID: "big", Price: -99, Date: day(2023, time.May, 2)},
		{ID: "income", Price: 500, Date: day(2023, time.May, 3)},
		{ID: "mid", Price: -40, Date: day(2023, time.May, 4)},
	}
	got := TopTransactions(txs, models.TypeExpense, 2)
	assertIDs(t, got, "big", "mid")
}

func TestTopTransactionsIncomeBySignedPrice(t *testing.T) {
	txs := []models.Transaction{
		{ID: "zero", Price: 0, Date: day(2023, time.May, 1)},
		{ID: "big", Price: 2000, Date: day(2023, time.May, 2)},
		{ID: "expense", Price: -99, Date: day(2023, time.May, 3)},
		{ID: "mid", Price: 500, Date: day(2023, time.May, 4)},
	}
	got := TopTransactions(txs, models.TypeIncome, 10)
	assertIDs(t, got, "big", "mid", "zero")
}

func TestTopTransactionsLimitClamping(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Price: -10, Date: day(2023, time.May, 1)},
		{ID: "2", Price: -20, Date: day(2023, time.May, 2)},
	}
	if got := TopTransactions(txs, models.TypeExpense, 100); len(got) != 2 {
		t.Errorf("oversized limit: got %d, want 2", len(got))
	}
	if got := TopTransactions(txs, models.TypeExpense, 0); len(got) != 0 {
		t.Errorf("zero limit: got %d, want 0", len(got))
	}
	if got := TopTransactions(txs, models.TypeExpense, -3); len(got) != 0 {
		t.Errorf("negative limit: got %d, want 0", len(got))
	}
}

func TestAvailableMonths(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Price: -50, Date: day(2023, time.May, 3)},
		{ID: "2", Price: 2000, Date: day(2023, time.May, 1)},
		{ID: "3", Price: -900, Date: day(2023, time.April, 2)},
		{ID: "nodate", Price: -5},
	}
	got := AvailableMonths(txs)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2: %v", len(got), got)
	}
	if got[0].Value != "2023-04" || got[0].Label != "April 2023" {
		t.Errorf("first month = %+v, want 2023-04 / April 2023", got[0])
	}
	if got[1].Value != "2023-05" || got[1].Label != "May 2023" {
		t.Errorf("second month = %+v, want 2023-05 / May 2023", got[1])
	}
}
