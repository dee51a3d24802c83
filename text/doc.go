// Package text provides the whitespace normalization and accent folding
// used by every timetable heuristic.
//
// Source pages mix Romanian, Hungarian and English labels and are not
// consistent about diacritics ("Marți", "Marţi", "Marti"). Matching is
// therefore done on folded text:
//
//	text.Fold("Marți")      // "marti"
//	text.Fold("Csütörtök")  // "csutortok"
//
// Cell text keeps its line structure. [NormalizeLines] collapses spaces
// inside each line and keeps at most one blank line between blocks, and
// [Chunks] splits on those blank lines so that several entries stacked
// in one cell can be classified independently.
package text
