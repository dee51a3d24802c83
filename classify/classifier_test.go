package classify

import (
	"reflect"
	"testing"

	"github.com/tsawler/timetable/model"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.Entry
	}{
		{
			name: "formation marker suppressed",
			text: "IM1\nFundamentele programarii\nAsist. Alice Bob\nCR1",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Weekly, Course: "Fundamentele programarii",
				Type: model.Lecture, Room: "CR1", Instructor: "Asist. Alice Bob",
			}},
		},
		{
			name: "inline compact form",
			text: "sapt. 1: Programare WEB (RUFF Laura), 9/I",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Week1, Course: "Programare WEB",
				Type: model.Lecture, Room: "9/I", Instructor: "RUFF Laura",
			}},
		},
		{
			name: "lecture marker with titled instructor",
			text: "Programare (C)\nProf. Ada Lovelace\nSala CR1",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Weekly, Course: "Programare",
				Type: model.Lecture, Room: "CR1", Instructor: "Prof. Ada Lovelace",
			}},
		},
		{
			name: "lab marker with week 1",
			text: "Programare (L)\nAsist. Alan Turing\nSala 2\nsapt. 1",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Week1, Course: "Programare",
				Type: model.Lab, Room: "2", Instructor: "Asist. Alan Turing",
			}},
		},
		{
			name: "seminar keyword and week 2",
			text: "Analiza seminar\nsapt. 2\nSala 101",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Week2, Course: "Analiza seminar",
				Type: model.Seminar, Room: "101",
			}},
		},
		{
			name: "both weeks means weekly",
			text: "Algebra\nsapt. 1\nsapt. 2",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Weekly, Course: "Algebra", Type: model.Lecture,
			}},
		},
		{
			name: "stacked entries",
			text: "Algebra (C)\nSala A1\n\nGeometrie (S)\nSala B2",
			want: []model.Entry{
				{Time: "8–10", Frequency: model.Weekly, Course: "Algebra", Type: model.Lecture, Room: "A1"},
				{Time: "8–10", Frequency: model.Weekly, Course: "Geometrie", Type: model.Seminar, Room: "B2"},
			},
		},
		{
			name: "duplicate chunks collapse",
			text: "Algebra\nSala A1\n\nAlgebra\nSala A1",
			want: []model.Entry{
				{Time: "8–10", Frequency: model.Weekly, Course: "Algebra", Type: model.Lecture, Room: "A1"},
			},
		},
		{
			name: "only formation marker becomes course",
			text: "MIE",
			want: []model.Entry{{
				Time: "8–10", Frequency: model.Weekly, Course: "MIE", Type: model.Lecture,
			}},
		},
		{name: "empty", text: "", want: nil},
		{name: "whitespace", text: "  \n ", want: nil},
		{name: "dash placeholder", text: "–", want: nil},
		{name: "day label", text: "Luni", want: nil},
		{name: "time label", text: "8 - 10", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Cell(tc.text, "8–10")
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Cell(%q) =\n  %+v\nwant\n  %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCellIdempotent(t *testing.T) {
	inputs := []string{
		"IM1\nFundamentele programarii\nAsist. Alice Bob\nCR1",
		"sapt. 1: Programare WEB (RUFF Laura), 9/I",
		"Algebra (C)\nSala A1\n\nGeometrie (S)\nSala B2",
	}
	for _, in := range inputs {
		a := Cell(in, "10–12")
		b := Cell(in, "10–12")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Cell(%q) not stable: %+v vs %+v", in, a, b)
		}
	}
}

func TestCellTimePassthrough(t *testing.T) {
	got := Cell("Algebra", "")
	if len(got) != 1 || got[0].Time != "" {
		t.Fatalf("Cell with empty time = %+v", got)
	}
}

func TestIsFormationMarker(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"IM1", true},
		{"MIE", true},
		{"511", true},
		{"511/2", true},
		{"(IM2)", true},
		{"CR1", false},
		{"L302", false},
		{"LAB3", false},
		{"Sala 2", false},
		{"Algebra", false},
		{"im1", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsFormationMarker(tc.line); got != tc.want {
			t.Errorf("IsFormationMarker(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want model.Frequency
	}{
		{"sapt. 1", model.Week1},
		{"Săpt. 2", model.Week2},
		{"week 1", model.Week1},
		{"impar", model.Week1},
		{"para", model.Week2},
		{"sapt. 1, sapt. 2", model.Weekly},
		{"saptamanal", model.Weekly},
		{"", model.Weekly},
	}
	for _, tc := range tests {
		if got := Frequency(tc.in); got != tc.want {
			t.Errorf("Frequency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		in   string
		want model.SessionType
	}{
		{"Algebra (C)", model.Lecture},
		{"Algebra (s)", model.Seminar},
		{"Algebra (L)", model.Lab},
		{"Laborator", model.Lab},
		{"seminar", model.Seminar},
		{"Curs", model.Lecture},
		{"Algebra", model.Lecture},
		// Markers outrank keywords.
		{"Seminar de laborator (L)", model.Lab},
	}
	for _, tc := range tests {
		if got := Type(tc.in); got != tc.want {
			t.Errorf("Type(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLines(t *testing.T) {
	f := Lines([]string{"Baze de date", "Conf. Grace Hopper", "Luni", "Amf. 3"})
	if f.Course != "Baze de date" {
		t.Errorf("Course = %q", f.Course)
	}
	if f.Instructor != "Conf. Grace Hopper" {
		t.Errorf("Instructor = %q", f.Instructor)
	}
	if f.Room != "3" {
		t.Errorf("Room = %q", f.Room)
	}
}

func TestDedupe(t *testing.T) {
	a := model.Entry{Course: "A"}
	b := model.Entry{Course: "B"}
	got := Dedupe([]model.Entry{a, b, a, b, a})
	want := []model.Entry{a, b}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe = %+v, want %+v", got, want)
	}
	if Dedupe(nil) != nil {
		t.Error("Dedupe(nil) should be nil")
	}
}
