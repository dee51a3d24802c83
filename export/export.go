package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/tsawler/timetable/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports one JSON document
	FormatJSON Format = iota
	// FormatCSV exports comma-separated values, one row per entry
	FormatCSV
)

// String returns a human-readable representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// ParseFormat resolves a format name such as "json" or "CSV".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", name)
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// PrettyPrint indents JSON output
	PrettyPrint bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune
}

// DefaultConfig returns the JSON export configuration.
func DefaultConfig() Config {
	return Config{
		Format:       FormatJSON,
		PrettyPrint:  false,
		CSVDelimiter: ',',
	}
}

// CSVConfig returns config for CSV export
func CSVConfig() Config {
	config := DefaultConfig()
	config.Format = FormatCSV
	return config
}

// Exporter writes timetables in the configured format.
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	if config.CSVDelimiter == 0 {
		config.CSVDelimiter = ','
	}
	return &Exporter{
		config: config,
	}
}

// Document is the JSON form of a timetable.
type Document struct {
	Layout         model.Layout  `json:"layout"`
	DetectedGroups []int         `json:"detected_groups"`
	Groups         []GroupRecord `json:"groups"`
}

// GroupRecord is the schedule of one group.
type GroupRecord struct {
	Group int                 `json:"group"`
	Days  []model.DaySchedule `json:"days"`
}

// Row is one entry in flat CSV form.
type Row struct {
	Group      int    `csv:"group"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	Frequency  string `csv:"frequency"`
	Type       string `csv:"type"`
	Course     string `csv:"course"`
	Room       string `csv:"room"`
	Instructor string `csv:"instructor"`
}

// NewDocument converts tt to its JSON form, groups in ascending order.
func NewDocument(tt *model.Timetable) Document {
	doc := Document{
		DetectedGroups: []int{},
		Groups:         []GroupRecord{},
	}
	if tt == nil {
		return doc
	}
	doc.Layout = tt.Layout
	if tt.DetectedGroups != nil {
		doc.DetectedGroups = tt.DetectedGroups
	}
	for _, g := range tt.GroupIDs() {
		days := tt.Days(g)
		if days == nil {
			days = []model.DaySchedule{}
		}
		doc.Groups = append(doc.Groups, GroupRecord{Group: g, Days: days})
	}
	return doc
}

// Rows flattens tt into one row per entry: groups ascending, then days
// Monday to Friday, then page order.
func Rows(tt *model.Timetable) []*Row {
	var rows []*Row
	for _, g := range tt.GroupIDs() {
		for _, ds := range tt.Days(g) {
			for _, e := range ds.Entries {
				rows = append(rows, &Row{
					Group:      g,
					Day:        string(ds.Day),
					Time:       e.Time,
					Frequency:  string(e.Frequency),
					Type:       string(e.Type),
					Course:     e.Course,
					Room:       e.Room,
					Instructor: e.Instructor,
				})
			}
		}
	}
	return rows
}

// Export writes tt to w.
func (e *Exporter) Export(w io.Writer, tt *model.Timetable) error {
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(w, tt)
	case FormatCSV:
		return e.exportCSV(w, tt)
	default:
		return fmt.Errorf("unsupported export format: %s", e.config.Format)
	}
}

// ExportString returns tt in the configured format.
func (e *Exporter) ExportString(tt *model.Timetable) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(&buf, tt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Exporter) exportJSON(w io.Writer, tt *model.Timetable) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewDocument(tt)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func (e *Exporter) exportCSV(w io.Writer, tt *model.Timetable) error {
	rows := Rows(tt)
	if rows == nil {
		rows = []*Row{}
	}
	cw := csv.NewWriter(w)
	cw.Comma = e.config.CSVDelimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	return nil
}
