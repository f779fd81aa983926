package validate

// errors.go defines the structural failures that abort a run before (or
// instead of) producing row-level findings, and the distinguished
// cancellation signal. Callers branch on these with errors.Is / errors.As:
// a cancelled run is not an invalid file.

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned when the spreadsheet decodes successfully but
// contains no data rows.
var ErrNoData = errors.New("no data rows found in spreadsheet")

// HeaderMismatchError is returned when the spreadsheet header is missing
// columns the schema requires. It is a structural failure: no rows are
// processed and no partial data is available.
type HeaderMismatchError struct {
	Missing  []string
	Expected []string
	Found    []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("header mismatch: missing columns [%s]", strings.Join(e.Missing, ", "))
}

// Cancelled is the distinguished cancellation signal. It carries every
// error accumulated before the cancellation point so the caller can still
// inspect partial findings after a user-initiated stop.
type Cancelled struct {
	Errors []RowError
}

func (c *Cancelled) Error() string {
	return fmt.Sprintf("validation cancelled after %d errors", len(c.Errors))
}

// IsCancelled reports whether err is (or wraps) a cancellation signal.
func IsCancelled(err error) bool {
	var c *Cancelled
	return errors.As(err, &c)
}
