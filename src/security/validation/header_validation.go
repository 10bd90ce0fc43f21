package validation

import (
	"fmt"
	"strings"
)

// RequiredCSVHeaders are the column names an import must declare, compared
// case-insensitively after trimming. Notes is optional.
var RequiredCSVHeaders = []string{"category", "name", "price", "date"}

// ValidateCSVHeader checks the first line of an upload for the required
// column names. The parser itself never re-checks this; a missing header
// rejects the whole import before any row is parsed.
func ValidateCSVHeader(headerLine string) error {
	present := make(map[string]bool)
	for _, field := range strings.Split(headerLine, ",") {
		name := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(field, `"`, "")))
		present[name] = true
	}

	var missing []string
	for _, required := range RequiredCSVHeaders {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required CSV column(s): %s", ErrValidationFailed, strings.Join(missing, ", "))
	}
	return nil
}
