package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/mode"
)

func noop(action string) Binding {
	return NewBinding(action, func(*Context) error { return nil })
}

func TestTableSet(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Set(mode.Normal, "Ctrl+Shift+i", noop("first"), false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	b, ok := tbl.Lookup(mode.Normal, "C-S-I")
	if !ok || b.Action != "first" {
		t.Fatalf("Lookup(C-S-I) = %+v, %v", b, ok)
	}

	err := tbl.Set(mode.Normal, "<C-S-i>", noop("second"), false)
	if !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("Set() without override error = %v, want ErrAlreadyBound", err)
	}
	if err := tbl.Set(mode.Normal, "C-S-I", noop("second"), true); err != nil {
		t.Errorf("Set() with override error = %v", err)
	}
	if b, _ := tbl.Lookup(mode.Normal, "C-S-I"); b.Action != "second" {
		t.Errorf("Action after override = %q, want second", b.Action)
	}

	if _, ok := tbl.Lookup(mode.Insert, "C-S-I"); ok {
		t.Error("bindings must be per mode")
	}
}

func TestTableSetErrors(t *testing.T) {
	tbl := NewTable()

	tests := []struct {
		name    string
		mode    mode.Mode
		combo   string
		binding Binding
		wantErr error
	}{
		{"invalid combo", mode.Normal, "C-Bogus", noop("x"), key.ErrInvalidCombo},
		{"empty combo", mode.Normal, "", noop("x"), key.ErrEmptyCombo},
		{"unknown mode", mode.Mode("visual"), "h", noop("x"), mode.ErrUnknownMode},
		{"no handler", mode.Normal, "h", Binding{Action: "x"}, ErrInvalidBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.Set(tt.mode, tt.combo, tt.binding, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTableRename(t *testing.T) {
	tbl := NewTable()
	tbl.Set(mode.Normal, "h", noop("left"), false)
	tbl.Set(mode.Normal, "l", noop("right"), false)

	if err := tbl.Rename(mode.Normal, "h", "b"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if tbl.Has(mode.Normal, "h") {
		t.Error("old combination should be unbound after rename")
	}
	if b, ok := tbl.Lookup(mode.Normal, "b"); !ok || b.Action != "left" {
		t.Errorf("Lookup(b) = %+v, %v", b, ok)
	}

	if err := tbl.Rename(mode.Normal, "h", "x"); !errors.Is(err, ErrNotBound) {
		t.Errorf("Rename(unbound) error = %v, want ErrNotBound", err)
	}
	if err := tbl.Rename(mode.Normal, "b", "l"); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("Rename(onto bound) error = %v, want ErrAlreadyBound", err)
	}
	if err := tbl.Rename(mode.Normal, "b", "b"); err != nil {
		t.Errorf("Rename(same) error = %v", err)
	}
}

func TestTableAlias(t *testing.T) {
	tbl := NewTable()
	tbl.Set(mode.Normal, "j", noop("down"), false)
	tbl.Set(mode.Normal, "n", noop("next"), false)

	if err := tbl.Alias(mode.Normal, "n", "j"); err != nil {
		t.Fatalf("Alias() error = %v", err)
	}
	if b, _ := tbl.Lookup(mode.Normal, "n"); b.Action != "down" {
		t.Errorf("alias action = %q, want down", b.Action)
	}

	if err := tbl.Alias(mode.Normal, "q", "j"); !errors.Is(err, ErrNotBound) {
		t.Errorf("Alias(unbound combo) error = %v, want ErrNotBound", err)
	}
	if err := tbl.Alias(mode.Normal, "n", "q"); !errors.Is(err, ErrNotBound) {
		t.Errorf("Alias(unbound target) error = %v, want ErrNotBound", err)
	}
}

func TestTableUnset(t *testing.T) {
	tbl := NewTable()
	tbl.Set(mode.Insert, "Escape", noop("normal"), false)

	if !tbl.Unset(mode.Insert, "Esc") {
		t.Error("Unset(Esc) = false, want true")
	}
	if tbl.Unset(mode.Insert, "Escape") {
		t.Error("second Unset should report false")
	}
	if tbl.Unset(mode.Insert, "C-Bogus") {
		t.Error("Unset of invalid combo should report false")
	}
}

func TestTableMatch(t *testing.T) {
	tbl := NewTable()
	tbl.Set(mode.Normal, "I", noop("insertStart"), false)
	tbl.Set(mode.Normal, "C-S-I", noop("devtools"), false)
	tbl.Set(mode.Normal, "h", noop("left"), false)

	tests := []struct {
		name      string
		ev        key.Event
		wantOK    bool
		wantCombo string
		action    string
	}{
		{"plain letter", key.FromDOM("h", false, false, false, false), true, "h", "left"},
		{"shifted capital", key.FromDOM("I", false, true, false, false), true, "I", "insertStart"},
		{"caps lock capital", key.FromDOM("I", false, false, false, false), true, "I", "insertStart"},
		{"ctrl shift", key.FromDOM("I", true, true, false, false), true, "C-S-I", "devtools"},
		{"unbound", key.FromDOM("q", false, false, false, false), false, "q", ""},
		{"modifier only", key.FromDOM("Shift", false, true, false, false), false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, combo, ok := tbl.Match(mode.Normal, tt.ev)
			if ok != tt.wantOK || combo != tt.wantCombo || b.Action != tt.action {
				t.Errorf("Match() = %q, %q, %v; want %q, %q, %v",
					b.Action, combo, ok, tt.action, tt.wantCombo, tt.wantOK)
			}
		})
	}
}

func TestTableBindingsSortedAndClone(t *testing.T) {
	tbl := NewTable()
	for _, c := range []string{"l", "C-Tab", "h", "F1"} {
		tbl.Set(mode.Normal, c, noop(c), false)
	}

	entries := tbl.Bindings(mode.Normal)
	want := []string{"C-Tab", "F1", "h", "l"}
	if len(entries) != len(want) {
		t.Fatalf("Bindings() = %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Combo != want[i] {
			t.Errorf("Bindings()[%d] = %q, want %q", i, e.Combo, want[i])
		}
	}

	clone := tbl.Clone()
	clone.Unset(mode.Normal, "h")
	if !tbl.Has(mode.Normal, "h") {
		t.Error("Clone should not share bindings with the original")
	}
	if clone.Len(mode.Normal) != 3 || tbl.Len(mode.Normal) != 4 {
		t.Errorf("Len() = %d/%d, want 3/4", clone.Len(mode.Normal), tbl.Len(mode.Normal))
	}
}
