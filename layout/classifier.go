package layout

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/tables"
)

// Config holds configuration for the layout classifier.
type Config struct {
	// HeaderScanRows is how many leading rows are searched for an
	// explicit header row.
	HeaderScanRows int

	// GroupScanRows is how many leading rows are searched for group
	// numbers in a columnar table.
	GroupScanRows int

	// Tables weights the choice of the main table in a columnar page.
	Tables tables.Config

	// Logger receives debug traces of the decisions taken.
	Logger zerolog.Logger
}

// DefaultConfig returns the configuration used by NewClassifier.
func DefaultConfig() Config {
	return Config{
		HeaderScanRows: 4,
		GroupScanRows:  12,
		Tables:         tables.DefaultConfig(),
		Logger:         zerolog.Nop(),
	}
}

// Classifier extracts a Timetable from a page's blocks. It holds no state
// between calls and is safe for concurrent use.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
// Zero scan limits fall back to the defaults.
func NewClassifierWithConfig(config Config) *Classifier {
	def := DefaultConfig()
	if config.HeaderScanRows <= 0 {
		config.HeaderScanRows = def.HeaderScanRows
	}
	if config.GroupScanRows <= 0 {
		config.GroupScanRows = def.GroupScanRows
	}
	if config.Tables == (tables.Config{}) {
		config.Tables = def.Tables
	}
	return &Classifier{config: config}
}

// Classify parses blocks as a sectioned page, and as a columnar page when
// no sectioned table yields an entry. expected restricts the output to
// those groups; when empty, every detected group is kept.
func (c *Classifier) Classify(blocks []htmldoc.Block, expected []int) (*model.Timetable, error) {
	set := newGroupSet(expected)
	log := c.config.Logger

	if tt, ok := c.sectioned(blocks, set); ok {
		log.Debug().
			Str("layout", string(tt.Layout)).
			Ints("detected", tt.DetectedGroups).
			Int("entries", tt.EntryCount()).
			Msg("timetable parsed")
		return tt, nil
	}

	tt, err := c.columnar(blocks, set)
	if err != nil {
		log.Debug().Err(err).Msg("no timetable layout matched")
		return nil, err
	}
	log.Debug().
		Str("layout", string(tt.Layout)).
		Ints("detected", tt.DetectedGroups).
		Int("entries", tt.EntryCount()).
		Msg("timetable parsed")
	return tt, nil
}

// Classify parses blocks with a default Classifier.
func Classify(blocks []htmldoc.Block, expected ...int) (*model.Timetable, error) {
	return NewClassifier().Classify(blocks, expected)
}
