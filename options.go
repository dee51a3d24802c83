package timetable

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/timetable/htmldoc"
)

// ParseOptions holds configuration for timetable parsing.
type ParseOptions struct {
	// Expected groups; nil means keep every detected group
	groups []int

	// Reader filtering; timetable pages often put group labels and
	// tables in <header> or <aside>, so nothing is skipped by default
	navigation htmldoc.NavigationExclusionMode

	logger zerolog.Logger
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		groups:     nil,
		navigation: htmldoc.NavigationExclusionNone,
		logger:     zerolog.Nop(),
	}
}

// clone creates a deep copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	newOpts := ParseOptions{
		navigation: o.navigation,
		logger:     o.logger,
	}

	if o.groups != nil {
		newOpts.groups = make([]int, len(o.groups))
		copy(newOpts.groups, o.groups)
	}

	return newOpts
}
