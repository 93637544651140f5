package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/mode"
)

func TestApply(t *testing.T) {
	actions := NewActions()
	tbl, err := Defaults(actions)
	if err != nil {
		t.Fatal(err)
	}

	err = Apply(tbl, actions, Overrides{
		"normal": {
			"w":       ActionFocusRight,
			"h":       ActionFocusAnchor,
			"C-Bogus": ActionFocusLeft,
			"x":       "no.such.action",
		},
		"insert": {"C-c": ActionModeNormal},
		"visual": {"v": ActionModeNormal},
	})

	if err == nil {
		t.Fatal("Apply() should report the rejected entries")
	}
	for _, want := range []error{key.ErrInvalidCombo, ErrUnknownAction, mode.ErrUnknownMode} {
		if !errors.Is(err, want) {
			t.Errorf("Apply() error %v does not wrap %v", err, want)
		}
	}

	checks := []struct {
		mode   mode.Mode
		combo  string
		action string
	}{
		{mode.Normal, "w", ActionFocusRight},
		{mode.Normal, "h", ActionFocusAnchor},
		{mode.Insert, "C-c", ActionModeNormal},
		{mode.Insert, "Escape", ActionModeNormal},
	}
	for _, c := range checks {
		b, ok := tbl.Lookup(c.mode, c.combo)
		if !ok || b.Action != c.action {
			t.Errorf("%s %q = %q, %v; want %q", c.mode, c.combo, b.Action, ok, c.action)
		}
	}
	if tbl.Has(mode.Normal, "x") {
		t.Error("entry with unknown action should not be bound")
	}
}

func TestApplyEmpty(t *testing.T) {
	actions := NewActions()
	if err := Apply(NewTable(), actions, nil); err != nil {
		t.Errorf("Apply(nil) error = %v", err)
	}
}

func TestExport(t *testing.T) {
	actions := NewActions()
	tbl, _ := Defaults(actions)
	tbl.Set(mode.Normal, "z", NewBinding("lua:bind", func(*Context) error { return nil }), false)

	o := Export(tbl, actions)
	if o["normal"]["h"] != ActionFocusLeft {
		t.Errorf("exported normal h = %q", o["normal"]["h"])
	}
	if o["insert"]["Escape"] != ActionModeNormal {
		t.Errorf("exported insert Escape = %q", o["insert"]["Escape"])
	}
	if _, ok := o["normal"]["z"]; ok {
		t.Error("script bindings should not be exported")
	}
}
