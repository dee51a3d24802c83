// Package tables resolves HTML table structure into a rectangular grid.
//
// Source tables merge cells with rowspan and colspan. Later stages want to
// ask "what text is at row r, column c" without caring about merges, so
// [BuildGrid] materializes every spanned cell at each position it visually
// occupies:
//
//	<tr><td rowspan="2">Luni</td><td>08-10</td></tr>
//	<tr><td>10-12</td></tr>
//
// becomes
//
//	Luni | 08-10
//	Luni | 10-12
//
// All rows of a [Grid] have the same width; rows shorter than the widest
// one are padded with empty strings.
package tables
