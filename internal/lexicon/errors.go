package lexicon

import (
	"errors"
	"fmt"
)

// ErrMissingTable indicates a required lexicon file was not found. Loading is
// all-or-nothing: the process must not score contacts against a partial
// lexicon.
var ErrMissingTable = errors.New("lexicon table missing")

// TableError wraps a failure to load or validate one of the reference tables.
type TableError struct {
	Table string
	Path  string
	Cause error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("lexicon table %s (%s): %v", e.Table, e.Path, e.Cause)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}
