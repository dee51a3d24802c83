package model

import (
	"errors"
	"fmt"
)

// Sentinel reasons carried by ParseError.
var (
	ErrNoTable        = errors.New("no table was found on the source page")
	ErrEmptyTable     = errors.New("timetable table is empty")
	ErrNoGroupColumns = errors.New("could not detect group columns in timetable table")
)

// ParseError reports a page-level structural failure. Callers processing
// many pages record it and move on.
type ParseError struct {
	Layout Layout
	Err    error
}

func (e *ParseError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("timetable: %v", e.Err)
	}
	return fmt.Sprintf("timetable (%s layout): %v", e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
