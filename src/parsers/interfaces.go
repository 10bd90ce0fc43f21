package parsers

import (
	"io"

	"github.com/username/finboard/src/models"
)

// TransactionParser defines the interface for turning raw CSV input into
// validated transactions. Parsing is best-effort: rows that cannot be
// salvaged are dropped, never fatal for the whole import.
type TransactionParser interface {
	Parse(file io.Reader) ([]models.Transaction, error)
}
