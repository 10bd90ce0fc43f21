package parsers

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/username/finboard/src/models"
)

// primaryDateLayout is the human-readable format the export tool writes,
// e.g. "May 3, 2023".
const primaryDateLayout = "January 2, 2006"

// fallbackDateLayouts are tried in order when the primary layout fails.
var fallbackDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC3339,
	// Like lenient Date constructors elsewhere, a bare "May 3" still
	// resolves to a calendar day rather than dropping the row.
	"January 2",
	"Jan 2",
}

// CSVTransactionParser parses the dashboard's CSV export format: a header
// row followed by positional data rows (category, name, price, date, notes)
// with double-quote escaped fields.
type CSVTransactionParser struct{}

func NewCSVTransactionParser() *CSVTransactionParser {
	return &CSVTransactionParser{}
}

// Parse reads the whole input and converts it row by row. The returned
// error only reflects a failed read of the input itself; malformed rows
// are dropped and malformed prices default to zero.
func (p *CSVTransactionParser) Parse(file io.Reader) ([]models.Transaction, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read csv input: %w", err)
	}
	return p.ParseString(string(data)), nil
}

// ParseString converts raw CSV text into transactions, newest first.
// Header-only or empty input yields an empty result, not an error.
func (p *CSVTransactionParser) ParseString(content string) []models.Transaction {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) <= 1 {
		return nil
	}

	loadedAt := time.Now()
	transactions := make([]models.Transaction, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		row := splitCSVRow(lines[i])
		if len(row) < 4 {
			continue
		}

		date, ok := parseTransactionDate(row[3])
		if !ok {
			log.Printf("Skipping row %d due to invalid date: %q", i+1, row[3])
			continue
		}

		category := strings.TrimSpace(row[0])
		if category == "" {
			category = models.CategoryUnknown
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			price = 0
		}

		// The notes column is optional and kept verbatim, trailing
		// carriage returns included; consumers decide how to render it.
		notes := ""
		if len(row) > 4 {
			notes = row[4]
		}

		transactions = append(transactions, models.Transaction{
			ID:       rowID(i, loadedAt),
			Category: category,
			Name:     strings.TrimSpace(row[1]),
			Price:    price,
			Date:     date,
			Notes:    notes,
		})
	}

	sort.SliceStable(transactions, func(a, b int) bool {
		return transactions[a].Date.After(transactions[b].Date)
	})
	return transactions
}

// splitCSVRow splits one CSV line on commas, honouring double quotes: a
// comma inside a quoted field is part of the field, and the quote
// characters themselves are not kept.
func splitCSVRow(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// parseTransactionDate resolves a date cell to a calendar day. It tries the
// primary human-readable layout first, then the generic fallbacks.
func parseTransactionDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if cleaned == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(primaryDateLayout, cleaned); err == nil {
		return t, true
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// rowID builds a batch-unique transaction ID from the row index, the load
// timestamp and a random suffix. Only uniqueness is contractual.
func rowID(index int, loadedAt time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%d-%s", index, loadedAt.UnixMilli(), suffix)
}
