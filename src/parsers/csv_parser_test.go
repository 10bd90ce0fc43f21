package parsers

import (
	"strings"
	"testing"
	"time"

	"github.com/username/finboard/src/models"
)

const sampleCSV = "Category,Name,Price,Date,Notes\n" +
	"Food,Lunch,-50,May 3, 2023,\n" +
	"Salary,Paycheck,2000,May 1, 2023,monthly\n"

func parseSample(t *testing.T, content string) []models.Transaction {
	t.Helper()
	p := NewCSVTransactionParser()
	txs, err := p.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return txs
}

func TestParseSampleCSV(t *testing.T) {
	txs := parseSample(t, sampleCSV)
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	// Newest first.
	if txs[0].Name != "Lunch" {
		t.Errorf("first transaction = %q, want Lunch", txs[0].Name)
	}
	if txs[0].Price != -50 {
		t.Errorf("Lunch price = %v, want -50", txs[0].Price)
	}
	if txs[1].Name != "Paycheck" {
		t.Errorf("second transaction = %q, want Paycheck", txs[1].Name)
	}
	if txs[1].Price != 2000 {
		t.Errorf("Paycheck price = %v, want 2000", txs[1].Price)
	}
}

func TestParseQuotedFields(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		`Food,"Dinner, with friends",-80,"May 3, 2023","notes, with comma"` + "\n"

	txs := parseSample(t, content)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	tx := txs[0]
	if tx.Name != "Dinner, with friends" {
		t.Errorf("name = %q, want the comma preserved and quotes stripped", tx.Name)
	}
	if tx.Notes != "notes, with comma" {
		t.Errorf("notes = %q, want %q", tx.Notes, "notes, with comma")
	}
	want := time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("date = %v, want %v", tx.Date, want)
	}
}

func TestParseDropsInvalidDateRow(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		"Food,Lunch,-50,not a date,\n" +
		"Salary,Paycheck,2000,May 1, 2023,\n"

	txs := parseSample(t, content)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1 (bad-date row dropped)", len(txs))
	}
	if txs[0].Name != "Paycheck" {
		t.Errorf("surviving transaction = %q, want Paycheck", txs[0].Name)
	}
}

func TestParseDropsShortRow(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		"Food,Lunch\n" +
		"Salary,Paycheck,2000,May 1, 2023,\n"

	txs := parseSample(t, content)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1 (short row dropped)", len(txs))
	}
}

func TestParseInvalidPriceDefaultsToZero(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		"Food,Lunch,abc,May 3, 2023,\n"

	txs := parseSample(t, content)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Price != 0 {
		t.Errorf("price = %v, want 0 for unparseable cell", txs[0].Price)
	}
}

func TestParseBlankCategoryBecomesUnknown(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		",Mystery,-10,May 3, 2023,\n"

	txs := parseSample(t, content)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Category != models.CategoryUnknown {
		t.Errorf("category = %q, want %q", txs[0].Category, models.CategoryUnknown)
	}
}

func TestParseEmptyAndHeaderOnly(t *testing.T) {
	for _, content := range []string{"", "Category,Name,Price,Date,Notes", "Category,Name,Price,Date,Notes\n"} {
		txs := parseSample(t, content)
		if len(txs) != 0 {
			t.Errorf("content %q: got %d transactions, want 0", content, len(txs))
		}
	}
}

func TestParseOrdersNewestFirst(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\n" +
		"A,oldest,-1,2023-01-01,\n" +
		"B,newest,-1,2023-03-01,\n" +
		"C,middle,-1,2023-02-01,\n"

	txs := parseSample(t, content)
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}
	for i := 0; i < len(txs)-1; i++ {
		if txs[i].Date.Before(txs[i+1].Date) {
			t.Errorf("transactions out of order at %d: %v before %v", i, txs[i].Date, txs[i+1].Date)
		}
	}
	if txs[0].Name != "newest" || txs[2].Name != "oldest" {
		t.Errorf("order = [%s %s %s], want [newest middle oldest]", txs[0].Name, txs[1].Name, txs[2].Name)
	}
}

func TestParseIDsAreUnique(t *testing.T) {
	var b strings.Builder
	b.WriteString("Category,Name,Price,Date,Notes\n")
	for i := 0; i < 50; i++ {
		b.WriteString("Food,Row,-1,2023-05-03,\n")
	}

	txs := parseSample(t, b.String())
	if len(txs) != 50 {
		t.Fatalf("got %d transactions, want 50", len(txs))
	}
	seen := make(map[string]bool, len(txs))
	for _, tx := range txs {
		if tx.ID == "" {
			t.Fatal("transaction with empty ID")
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate ID %q", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestParseKeepsNotesVerbatim(t *testing.T) {
	content := "Category,Name,Price,Date,Notes\r\n" +
		"Food,Lunch,-50,2023-05-03,keep me\r\n" +
		"Salary,Paycheck,2000,2023-05-01,last row\n"

	txs := parseSample(t, content)
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	// Windows line endings leave a \r on every row but the last; the
	// notes column carries it through untouched.
	if txs[0].Notes != "keep me\r" {
		t.Errorf("notes = %q, want trailing carriage return preserved", txs[0].Notes)
	}
}

func TestParseTransactionDateFallbacks(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"May 3, 2023", time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{"2023-05-03", time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{"2023/05/03", time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{"05/03/2023", time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{`"May 3, 2023"`, time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC)},
		// Year-less remainder of an unquoted "May 3, 2023" cell split at
		// its comma.
		{"May 3", time.Date(0, time.May, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := parseTransactionDate(tc.raw)
		if !ok {
			t.Errorf("parseTransactionDate(%q) failed, want %v", tc.raw, tc.want)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseTransactionDate(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	if _, ok := parseTransactionDate("garbage"); ok {
		t.Error("parseTransactionDate accepted garbage input")
	}
	if _, ok := parseTransactionDate("   "); ok {
		t.Error("parseTransactionDate accepted blank input")
	}
}

func TestSplitCSVRow(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`a,"b,c",d`, []string{"a", "b,c", "d"}},
		{`"a","b"`, []string{"a", "b"}},
		{"", []string{""}},
		{"a,,c", []string{"a", "", "c"}},
	}
	for _, tc := range cases {
		got := splitCSVRow(tc.line)
		if len(got) != len(tc.want) {
			t.Errorf("splitCSVRow(%q) = %v, want %v", tc.line, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitCSVRow(%q)[%d] = %q, want %q", tc.line, i, got[i], tc.want[i])
			}
		}
	}
}
