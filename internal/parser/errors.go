package parser

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the structural parse failures. All of them
// abort the run for the file they concern; none are retried.
type ErrorKind string

const (
	NoValidHeader    ErrorKind = "NoValidHeader"
	MissingColumns   ErrorKind = "MissingColumns"
	NoValidRecords   ErrorKind = "NoValidRecords"
	InsufficientData ErrorKind = "InsufficientData"
	NoCategories     ErrorKind = "NoCategories"
)

// Error is a typed, recoverable-at-the-boundary parse failure.
type Error struct {
	Kind    ErrorKind
	Columns []string
}

func (e *Error) Error() string {
	if len(e.Columns) > 0 {
		return fmt.Sprintf("parse error: %s (%s)", e.Kind, strings.Join(e.Columns, ", "))
	}
	return fmt.Sprintf("parse error: %s", e.Kind)
}

// IsKind reports whether err is a parser Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	pe, ok := err.(*Error)
	return ok && pe.Kind == kind
}
