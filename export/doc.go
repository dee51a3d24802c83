// Package export writes a parsed timetable as JSON or CSV.
//
// JSON output is one document holding every group with its days and
// entries. CSV output is flat, one row per entry:
//
//	group,day,time,frequency,type,course,room,instructor
//	511,monday,08–10,weekly,lecture,Programare,CR1,Prof. Ada Lovelace
//
// Use [NewExporterWithConfig] to pick the format:
//
//	e := export.NewExporterWithConfig(export.CSVConfig())
//	err := e.Export(os.Stdout, tt)
package export
