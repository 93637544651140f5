package key

import "testing"

func TestEventCombo(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain letter", NewRuneEvent('h', ModNone), "h"},
		{"caps letter", NewRuneEvent('H', ModNone), "H"},
		{"shifted letter", NewRuneEvent('h', ModShift), "S-H"},
		{"ctrl shift letter", NewRuneEvent('i', ModCtrl|ModShift), "C-S-I"},
		{"ctrl letter lowercased", NewRuneEvent('S', ModCtrl), "C-s"},
		{"all modifiers", NewRuneEvent('x', ModCtrl|ModShift|ModAlt|ModMeta), "C-S-A-M-X"},
		{"digit", NewRuneEvent('2', ModNone), "2"},
		{"ctrl tab", NewSpecialEvent(KeyTab, ModCtrl), "C-Tab"},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), "Escape"},
		{"arrow", NewSpecialEvent(KeyArrowLeft, ModNone), "ArrowLeft"},
		{"function", NewSpecialEvent(KeyF12, ModNone), "F12"},
		{"space", NewRuneEvent(' ', ModNone), "Space"},
		{"none", Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Combo(); got != tt.want {
				t.Errorf("Combo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromDOM(t *testing.T) {
	tests := []struct {
		key                     string
		ctrl, shift, alt, meta  bool
		want                    string
	}{
		{"j", false, false, false, false, "j"},
		{"I", true, true, false, false, "C-S-I"},
		{"J", true, true, false, false, "C-S-J"},
		{"Tab", true, false, false, false, "C-Tab"},
		{"F5", false, false, false, false, "F5"},
		{"ArrowDown", false, false, false, false, "ArrowDown"},
		{"Escape", false, false, false, false, "Escape"},
		{" ", false, false, false, false, "Space"},
		{"r", false, false, false, true, "M-r"},
		{"Shift", false, true, false, false, ""},
	}

	for _, tt := range tests {
		got := FromDOM(tt.key, tt.ctrl, tt.shift, tt.alt, tt.meta).Combo()
		if got != tt.want {
			t.Errorf("FromDOM(%q).Combo() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEventDigit(t *testing.T) {
	tests := []struct {
		event Event
		want  int
		ok    bool
	}{
		{NewRuneEvent('0', ModNone), 0, true},
		{NewRuneEvent('7', ModNone), 7, true},
		{NewRuneEvent('7', ModCtrl), 0, false},
		{NewRuneEvent('a', ModNone), 0, false},
		{NewSpecialEvent(KeyF1, ModNone), 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.event.Digit()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%#v.Digit() = (%d, %v), want (%d, %v)", tt.event, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	shifted := NewRuneEvent('A', ModShift)
	if shifted.IsModified() {
		t.Error("Shift alone should not count as modified")
	}
	if !NewRuneEvent('a', ModAlt).IsModified() {
		t.Error("Alt should count as modified")
	}

	if !NewRuneEvent('i', ModCtrl|ModShift).Equals(MustParseCombo("<C-S-i>")) {
		t.Error("event should equal its vim-style combination")
	}
	if NewRuneEvent('i', ModCtrl).Equals(MustParseCombo("C-S-I")) {
		t.Error("event without shift should not equal C-S-I")
	}
}
