package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/model"
)

const columnarHTML = `
<html>
  <body>
    <table>
      <tr><th>Ziua</th><th>Ora</th><th>511</th><th>512</th></tr>
      <tr>
        <td rowspan="2">Luni</td>
        <td>08-10</td>
        <td>Programare (C)<br/>Prof. Ada Lovelace<br/>Sala CR1</td>
        <td>-</td>
      </tr>
      <tr>
        <td>10-12</td>
        <td>Programare (L)<br/>Asist. Alan Turing<br/>Laborator 2<br/>sapt. 1</td>
        <td>Programare (L)<br/>Asist. Grace Hopper<br/>Laborator 3<br/>sapt. 2</td>
      </tr>
      <tr>
        <td>Marti</td>
        <td>12-14</td>
        <td>Algebra (S)<br/>Conf. Emmy Noether<br/>sala 101</td>
        <td>Algebra (S)<br/>Conf. Emmy Noether<br/>sala 101</td>
      </tr>
    </table>
  </body>
</html>`

const sectionedHTML = `
<html>
  <body>
    <h2>Grupa 211</h2>
    <table>
      <tr><th>Ziua</th><th>Orele</th><th>Frecventa</th><th>Sala</th><th>Tipul</th><th>Disciplina</th><th>Cadrul didactic</th></tr>
      <tr><td>Luni</td><td>8-10</td><td>sapt. 1</td><td>CR406</td><td>Seminar</td><td>Programare functionala</td><td>Asist. John Doe</td></tr>
    </table>
    <h2>Grupa 212</h2>
    <table>
      <tr><th>Ziua</th><th>Orele</th><th>Frecventa</th><th>Sala</th><th>Tipul</th><th>Disciplina</th><th>Cadrul didactic</th></tr>
      <tr><td>Marti</td><td>10-12</td><td>sapt. 2</td><td>CR1</td><td>Laborator</td><td>Baze de date</td><td>Asist. Jane Doe</td></tr>
    </table>
  </body>
</html>`

const formationHTML = `
<table>
  <tr><th>Ziua</th><th>Ora</th><th>511</th></tr>
  <tr><td>Luni</td><td>10-12</td><td>IM1<br/>Fundamentele programarii<br/>Asist. Alice Bob<br/>CR1</td></tr>
</table>`

const inlineHTML = `
<table>
  <tr><th>Ziua</th><th>Ora</th><th>511</th></tr>
  <tr><td>Marti</td><td>14-16</td><td>sapt. 1: Programare WEB (RUFF Laura), 9/I</td></tr>
</table>`

func blocks(t *testing.T, src string) []htmldoc.Block {
	t.Helper()
	r, err := htmldoc.OpenReader(strings.NewReader(src))
	require.NoError(t, err)
	return r.Blocks()
}

func TestClassify_Columnar(t *testing.T) {
	tt, err := Classify(blocks(t, columnarHTML), 511, 512)
	require.NoError(t, err)

	assert.Equal(t, model.LayoutColumnar, tt.Layout)
	assert.Equal(t, []int{511, 512}, tt.DetectedGroups)
	require.Contains(t, tt.Groups, 511)
	require.Contains(t, tt.Groups, 512)

	days511 := tt.Days(511)
	require.Len(t, days511, 2)
	assert.Equal(t, model.Monday, days511[0].Day)
	assert.Equal(t, model.Tuesday, days511[1].Day)

	monday := days511[0].Entries
	require.Len(t, monday, 2)
	assert.Equal(t, model.Entry{
		Time:       "08–10",
		Frequency:  model.Weekly,
		Course:     "Programare",
		Type:       model.Lecture,
		Room:       "CR1",
		Instructor: "Prof. Ada Lovelace",
	}, monday[0])
	assert.Equal(t, model.Week1, monday[1].Frequency)
	assert.Equal(t, model.Lab, monday[1].Type)
	assert.Equal(t, "10–12", monday[1].Time)

	monday512 := tt.Day(512, model.Monday)
	require.Len(t, monday512, 1)
	assert.Equal(t, model.Week2, monday512[0].Frequency)
	assert.Equal(t, "Asist. Grace Hopper", monday512[0].Instructor)

	tuesday512 := tt.Day(512, model.Tuesday)
	require.Len(t, tuesday512, 1)
	assert.Equal(t, model.Seminar, tuesday512[0].Type)
	assert.Equal(t, "101", tuesday512[0].Room)
}

func TestClassify_ColumnarWithoutExpectedGroups(t *testing.T) {
	tt, err := Classify(blocks(t, columnarHTML))
	require.NoError(t, err)
	assert.Equal(t, []int{511, 512}, tt.DetectedGroups)
	assert.Equal(t, []int{511, 512}, tt.GroupIDs())
}

func TestClassify_ColumnarEmptyGroupStillDetected(t *testing.T) {
	src := `<table>
		<tr><th>Ziua</th><th>Ora</th><th>511</th><th>512</th></tr>
		<tr><td>Luni</td><td>08-10</td><td>Programare (C)<br>Prof. Ada Lovelace<br>Sala CR1</td><td>-</td></tr>
	</table>`
	tt, err := Classify(blocks(t, src), 511, 512)
	require.NoError(t, err)

	assert.Equal(t, []int{511, 512}, tt.DetectedGroups)
	assert.Empty(t, tt.Day(512, model.Monday))
	assert.NotNil(t, tt.Groups[512])

	e := tt.Day(511, model.Monday)
	require.Len(t, e, 1)
	assert.Equal(t, model.Lecture, e[0].Type)
	assert.Equal(t, "CR1", e[0].Room)
	assert.Equal(t, "Prof. Ada Lovelace", e[0].Instructor)
	assert.Equal(t, model.Weekly, e[0].Frequency)
}

func TestClassify_Sectioned(t *testing.T) {
	tt, err := Classify(blocks(t, sectionedHTML))
	require.NoError(t, err)

	assert.Equal(t, model.LayoutSectioned, tt.Layout)
	assert.Equal(t, []int{211, 212}, tt.DetectedGroups)

	d211 := tt.Days(211)
	require.Len(t, d211, 1)
	assert.Equal(t, model.Monday, d211[0].Day)
	assert.Equal(t, model.Entry{
		Time:       "8–10",
		Frequency:  model.Week1,
		Course:     "Programare functionala",
		Type:       model.Seminar,
		Room:       "CR406",
		Instructor: "Asist. John Doe",
	}, d211[0].Entries[0])

	d212 := tt.Days(212)
	require.Len(t, d212, 1)
	assert.Equal(t, model.Tuesday, d212[0].Day)
	assert.Equal(t, model.Lab, d212[0].Entries[0].Type)
	assert.Equal(t, model.Week2, d212[0].Entries[0].Frequency)
}

func TestClassify_SectionedExpectedGroups(t *testing.T) {
	tt, err := Classify(blocks(t, sectionedHTML), 212, 213)
	require.NoError(t, err)

	assert.Equal(t, []int{212}, tt.DetectedGroups)
	assert.Equal(t, []int{212, 213}, tt.GroupIDs())
	assert.Empty(t, tt.Days(213))
	assert.NotContains(t, tt.Groups, 211)
}

func TestClassify_SectionedGroupFromCaption(t *testing.T) {
	src := `<table>
		<caption>Orar Grupa 311</caption>
		<tr><th>Ziua</th><th>Ora</th><th>Disciplina</th></tr>
		<tr><td>Vineri</td><td>12 - 14</td><td>Statistica</td></tr>
	</table>`
	tt, err := Classify(blocks(t, src))
	require.NoError(t, err)
	assert.Equal(t, model.LayoutSectioned, tt.Layout)
	assert.Equal(t, []int{311}, tt.DetectedGroups)

	e := tt.Day(311, model.Friday)
	require.Len(t, e, 1)
	assert.Equal(t, "12–14", e[0].Time)
	assert.Equal(t, "Statistica", e[0].Course)
}

func TestClassify_SectionedFallbackFields(t *testing.T) {
	src := `<p><strong>Grupa 411</strong></p>
	<table>
		<tr><th>Ziua</th><th>Ora</th><th>Detalii</th></tr>
		<tr><td>Joi</td><td>16-18</td><td>Retele (L)<br>Lect. Radia Perlman<br>Sala L302<br>sapt. 2</td></tr>
		<tr><td>Joi</td><td>-</td><td>Fara ora</td></tr>
	</table>`
	tt, err := Classify(blocks(t, src))
	require.NoError(t, err)

	e := tt.Day(411, model.Thursday)
	require.Len(t, e, 1)
	assert.Equal(t, model.Entry{
		Time:       "16–18",
		Frequency:  model.Week2,
		Course:     "Retele",
		Type:       model.Lab,
		Room:       "L302",
		Instructor: "Lect. Radia Perlman",
	}, e[0])
}

func TestClassify_NestedInLayoutTable(t *testing.T) {
	sectioned := `<table><tr><td>
		<h2>Grupa 211</h2>
		<table>
			<tr><th>Ziua</th><th>Ora</th><th>Disciplina</th></tr>
			<tr><td>Luni</td><td>8-10</td><td>Algebra</td></tr>
		</table>
		<h2>Grupa 212</h2>
		<table>
			<tr><th>Ziua</th><th>Ora</th><th>Disciplina</th></tr>
			<tr><td>Marti</td><td>10-12</td><td>Geometrie</td></tr>
		</table>
	</td></tr></table>`

	tt, err := Classify(blocks(t, sectioned))
	require.NoError(t, err)
	assert.Equal(t, model.LayoutSectioned, tt.Layout)
	assert.Equal(t, []int{211, 212}, tt.DetectedGroups)
	require.Len(t, tt.Day(211, model.Monday), 1)
	assert.Equal(t, "Algebra", tt.Day(211, model.Monday)[0].Course)
	require.Len(t, tt.Day(212, model.Tuesday), 1)
	assert.Equal(t, "Geometrie", tt.Day(212, model.Tuesday)[0].Course)

	inner := columnarHTML[strings.Index(columnarHTML, "<table>") : strings.LastIndex(columnarHTML, "</table>")+len("</table>")]
	columnar := `<table><tr><td><h1>Orar anul I</h1>` + inner + `</td></tr></table>`
	tt, err = Classify(blocks(t, columnar), 511, 512)
	require.NoError(t, err)
	assert.Equal(t, model.LayoutColumnar, tt.Layout)
	assert.Equal(t, []int{511, 512}, tt.DetectedGroups)
	require.NotEmpty(t, tt.Day(511, model.Monday))
	assert.Equal(t, "CR1", tt.Day(511, model.Monday)[0].Room)
}

func TestClassify_FormationMarker(t *testing.T) {
	tt, err := Classify(blocks(t, formationHTML), 511)
	require.NoError(t, err)

	e := tt.Day(511, model.Monday)
	require.Len(t, e, 1)
	assert.Equal(t, "Fundamentele programarii", e[0].Course)
	assert.Equal(t, "Asist. Alice Bob", e[0].Instructor)
	assert.Equal(t, "CR1", e[0].Room)
}

func TestClassify_InlineCompact(t *testing.T) {
	tt, err := Classify(blocks(t, inlineHTML), 511)
	require.NoError(t, err)

	e := tt.Day(511, model.Tuesday)
	require.Len(t, e, 1)
	assert.Equal(t, "Programare WEB", e[0].Course)
	assert.Equal(t, "RUFF Laura", e[0].Instructor)
	assert.Equal(t, "9/I", e[0].Room)
	assert.Equal(t, model.Week1, e[0].Frequency)
	assert.Equal(t, "14–16", e[0].Time)
}

func TestClassify_PicksMainTable(t *testing.T) {
	src := `<table><tr><td>Acasa</td><td>Contact</td></tr></table>` + columnarHTML +
		`<table><tr><td>Sala</td><td>Adresa</td></tr><tr><td>CR1</td><td>Str. Mihail Kogalniceanu 1</td></tr></table>`
	tt, err := Classify(blocks(t, src), 511, 512)
	require.NoError(t, err)
	assert.Len(t, tt.Day(511, model.Monday), 2)
}

func TestClassify_HeaderFallbackColumns(t *testing.T) {
	src := `<table>
		<tr><th>Ziua</th><th>Ora</th><th>Anul I</th><th>Anul I</th></tr>
		<tr><td>Luni</td><td>8-10</td><td>Algebra</td><td>Geometrie</td></tr>
	</table>`
	tt, err := Classify(blocks(t, src), 101, 102)
	require.NoError(t, err)

	assert.Equal(t, "Algebra", tt.Day(101, model.Monday)[0].Course)
	assert.Equal(t, "Geometrie", tt.Day(102, model.Monday)[0].Course)
	assert.Equal(t, []int{101, 102}, tt.DetectedGroups)
}

func TestClassify_HeaderFallbackNotDetectedWithoutEntries(t *testing.T) {
	src := `<table>
		<tr><th>Ziua</th><th>Ora</th><th>A</th><th>B</th></tr>
		<tr><td>Luni</td><td>8-10</td><td>Algebra</td><td>-</td></tr>
	</table>`
	tt, err := Classify(blocks(t, src), 101, 102)
	require.NoError(t, err)
	assert.Equal(t, []int{101}, tt.DetectedGroups)
	assert.Equal(t, []int{101, 102}, tt.GroupIDs())
}

func TestClassify_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []int
		want     error
	}{
		{
			name: "no table",
			src:  `<h1>Grupa 211</h1><p>Orarul nu este disponibil.</p>`,
			want: model.ErrNoTable,
		},
		{
			name: "empty table",
			src:  `<table></table>`,
			want: model.ErrEmptyTable,
		},
		{
			name: "no header and no group columns",
			src:  `<h2>Grupa 211</h2><table><tr><td>Luni</td><td>Algebra</td></tr></table>`,
			want: model.ErrNoGroupColumns,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt, err := Classify(blocks(t, tc.src), tc.expected...)
			require.Error(t, err)
			assert.Nil(t, tt)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			var pe *model.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, model.LayoutColumnar, pe.Layout)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	b := blocks(t, columnarHTML)
	first, err := Classify(b, 511, 512)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Classify(b, 511, 512)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
