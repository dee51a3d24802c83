package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/timetable/model"
)

func TestAssembler_Build(t *testing.T) {
	a := NewAssembler()
	mon1 := model.Entry{Time: "8–10", Course: "Algebra"}
	mon2 := model.Entry{Time: "10–12", Course: "Geometrie"}
	fri := model.Entry{Time: "8–10", Course: "Logica"}

	a.Add(511, model.Friday, fri)
	a.Add(511, model.Monday, mon1)
	a.Add(511, model.Monday, mon2)
	a.Add(511, model.Day("sunday"), mon1)
	a.Add(512, model.Tuesday)
	a.MarkDetected(511)

	tt := a.Build(model.LayoutColumnar, []int{511, 512})

	want := []model.DaySchedule{
		{Day: model.Monday, Entries: []model.Entry{mon1, mon2}},
		{Day: model.Friday, Entries: []model.Entry{fri}},
	}
	if !reflect.DeepEqual(tt.Groups[511], want) {
		t.Errorf("group 511 = %+v, want %+v", tt.Groups[511], want)
	}
	if days, ok := tt.Groups[512]; !ok || days == nil || len(days) != 0 {
		t.Errorf("group 512 = %#v, want empty non-nil list", days)
	}
	if !reflect.DeepEqual(tt.DetectedGroups, []int{511}) {
		t.Errorf("DetectedGroups = %v", tt.DetectedGroups)
	}
	if tt.Layout != model.LayoutColumnar {
		t.Errorf("Layout = %q", tt.Layout)
	}
}

func TestAssembler_BuildOnlyTargets(t *testing.T) {
	a := NewAssembler()
	a.Add(511, model.Monday, model.Entry{Course: "Algebra"})
	a.Add(999, model.Monday, model.Entry{Course: "Algebra"})

	tt := a.Build(model.LayoutSectioned, []int{511})
	if _, ok := tt.Groups[999]; ok {
		t.Error("non-target group should not be emitted")
	}
	if !a.HasEntries(999) || a.HasEntries(512) {
		t.Error("HasEntries mismatch")
	}
}

func TestAssembler_BuildCopiesEntries(t *testing.T) {
	a := NewAssembler()
	a.Add(511, model.Monday, model.Entry{Course: "Algebra"})
	tt := a.Build(model.LayoutSectioned, []int{511})
	tt.Groups[511][0].Entries[0].Course = "changed"

	again := a.Build(model.LayoutSectioned, []int{511})
	if got := again.Groups[511][0].Entries[0].Course; got != "Algebra" {
		t.Errorf("Build shares entry storage: %q", got)
	}
}
