package model

import (
	"reflect"
	"testing"
)

func newABCD() *FileList {
	l := NewFileList()
	l.SelectInitial([]string{"A", "B", "C", "D"})
	return l
}

func TestFileList_SelectInitial(t *testing.T) {
	l := NewFileList()
	if l.CanAdd() {
		t.Error("Expected additive selection to be disabled before initial selection")
	}

	l.AddFiles([]string{"old"})
	l.SelectInitial([]string{"b.png", "a.png"})

	if !reflect.DeepEqual(l.Paths(), []string{"b.png", "a.png"}) {
		t.Errorf("Expected list to be replaced in given order, got %v", l.Paths())
	}
	if !l.CanAdd() {
		t.Error("Expected additive selection to be enabled")
	}
	if l.Selected() != NoSelection {
		t.Errorf("Expected no selection, got %d", l.Selected())
	}
}

func TestFileList_AddFiles(t *testing.T) {
	l := newABCD()
	l.AddFiles([]string{"F", "E"})

	expected := []string{"A", "B", "C", "D", "F", "E"}
	if !reflect.DeepEqual(l.Paths(), expected) {
		t.Errorf("Expected %v, got %v", expected, l.Paths())
	}
}

func TestFileList_Move(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected []string
		moved    bool
	}{
		{"front to middle", 0, 2, []string{"B", "C", "A", "D"}, true},
		{"back to front", 3, 0, []string{"D", "A", "B", "C"}, true},
		{"adjacent down", 1, 2, []string{"A", "C", "B", "D"}, true},
		{"to end", 0, 3, []string{"B", "C", "D", "A"}, true},
		{"same index", 2, 2, []string{"A", "B", "C", "D"}, false},
		{"old out of range", 4, 0, []string{"A", "B", "C", "D"}, false},
		{"new out of range", 0, 4, []string{"A", "B", "C", "D"}, false},
		{"negative", -1, 0, []string{"A", "B", "C", "D"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newABCD()
			moved := l.Move(tt.from, tt.to)
			if moved != tt.moved {
				t.Errorf("Move(%d, %d) = %v, expected %v", tt.from, tt.to, moved, tt.moved)
			}
			if !reflect.DeepEqual(l.Paths(), tt.expected) {
				t.Errorf("Move(%d, %d) produced %v, expected %v", tt.from, tt.to, l.Paths(), tt.expected)
			}
		})
	}
}

func TestFileList_MoveMatchesSplice(t *testing.T) {
	base := []string{"A", "B", "C", "D", "E"}
	for from := range base {
		for to := range base {
			if from == to {
				continue
			}
			l := NewFileList()
			l.SelectInitial(base)
			l.Move(from, to)

			spliced := append([]string{}, base[:from]...)
			spliced = append(spliced, base[from+1:]...)
			spliced = append(spliced[:to], append([]string{base[from]}, spliced[to:]...)...)

			if !reflect.DeepEqual(l.Paths(), spliced) {
				t.Errorf("Move(%d, %d) = %v, expected %v", from, to, l.Paths(), spliced)
			}
		}
	}
}

func TestFileList_RemoveAt(t *testing.T) {
	l := newABCD()

	if !l.RemoveAt(1) {
		t.Fatal("Expected removal to succeed")
	}
	if !reflect.DeepEqual(l.Paths(), []string{"A", "C", "D"}) {
		t.Errorf("Unexpected list after removal: %v", l.Paths())
	}
	if l.Selected() != 1 {
		t.Errorf("Expected cursor at 1, got %d", l.Selected())
	}

	// Removing the last entry moves the cursor to the new last entry
	l.RemoveAt(2)
	if l.Selected() != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", l.Selected())
	}

	l.RemoveAt(0)
	l.RemoveAt(0)
	if l.Len() != 0 {
		t.Fatalf("Expected empty list, got %v", l.Paths())
	}
	if l.Selected() != NoSelection {
		t.Errorf("Expected no selection on empty list, got %d", l.Selected())
	}
}

func TestFileList_RemoveAtOutOfRange(t *testing.T) {
	l := newABCD()
	for _, index := range []int{-1, 4, 100} {
		if l.RemoveAt(index) {
			t.Errorf("RemoveAt(%d) should be a no-op", index)
		}
	}
	if !reflect.DeepEqual(l.Paths(), []string{"A", "B", "C", "D"}) {
		t.Errorf("List changed after out-of-range removals: %v", l.Paths())
	}

	empty := NewFileList()
	if empty.RemoveAt(0) {
		t.Error("RemoveAt on empty list should be a no-op")
	}
}

func TestFileList_OnChanged(t *testing.T) {
	l := NewFileList()
	calls := 0
	l.SetOnChanged(func() { calls++ })

	l.SelectInitial([]string{"A", "B", "C"})
	l.AddFiles([]string{"D"})
	l.Move(0, 1)
	l.RemoveAt(0)
	if calls != 4 {
		t.Errorf("Expected 4 notifications, got %d", calls)
	}

	// No-ops do not notify
	l.Move(1, 1)
	l.RemoveAt(10)
	l.AddFiles(nil)
	if calls != 4 {
		t.Errorf("Expected no extra notifications for no-ops, got %d", calls)
	}
}

func TestFileList_PathsIsCopy(t *testing.T) {
	l := newABCD()
	snapshot := l.Paths()
	snapshot[0] = "Z"

	if p, _ := l.At(0); p != "A" {
		t.Errorf("Mutating the snapshot changed the list: %s", p)
	}
	if _, ok := l.At(9); ok {
		t.Error("At(9) should report an invalid index")
	}
}

func TestFileList_MoveKeepsSelection(t *testing.T) {
	l := newABCD()
	l.Select(0)
	l.Move(0, 3)
	if l.Selected() != 3 {
		t.Errorf("Expected selection to follow moved entry, got %d", l.Selected())
	}
	l.Select(10)
	if l.Selected() != NoSelection {
		t.Errorf("Expected out-of-range select to clear selection, got %d", l.Selected())
	}
}

func TestFileList_MoveShiftsSelection(t *testing.T) {
	for from := 0; from < 4; from++ {
		for to := 0; to < 4; to++ {
			for selected := 0; selected < 4; selected++ {
				l := newABCD()
				l.Select(selected)
				want, _ := l.At(selected)

				l.Move(from, to)

				got, ok := l.At(l.Selected())
				if !ok || got != want {
					t.Errorf("Move(%d, %d) with selection %d: cursor on %q, expected %q", from, to, selected, got, want)
				}
			}
		}
	}

	l := newABCD()
	l.Move(0, 3)
	if l.Selected() != NoSelection {
		t.Errorf("Expected no selection to stay unselected, got %d", l.Selected())
	}
}
