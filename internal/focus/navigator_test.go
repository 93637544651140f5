package focus

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolveSkipsIneligible(t *testing.T) {
	els := row(3, 0)
	disabled(els[1])
	g := NewGraph(nil)
	g.Register(elements(els)...)
	nav := NewNavigator(g)

	got, ok := nav.Resolve(els[0], Right)
	if !ok || name(got) != "c" {
		t.Errorf("Resolve(a, right) = %s, want c", name(got))
	}
	got, ok = nav.Resolve(els[2], Left)
	if !ok || name(got) != "a" {
		t.Errorf("Resolve(c, left) = %s, want a", name(got))
	}
}

func TestResolveSkipsLinkWithoutHref(t *testing.T) {
	els := row(3, 0)
	els[1] = &fakeElement{name: "link", tag: "a", attrs: map[string]string{"tabindex": "0"}, rect: els[1].rect}
	g := NewGraph(nil)
	g.Register(elements(els)...)
	nav := NewNavigator(g)

	got, ok := nav.Resolve(els[0], Right)
	if !ok || name(got) != "c" {
		t.Errorf("Resolve(a, right) = %s, want c", name(got))
	}
}

func TestResolveAllIneligible(t *testing.T) {
	els := row(3, 0)
	disabled(els[1])
	disabled(els[2])
	g := NewGraph(nil)
	g.Register(elements(els)...)
	nav := NewNavigator(g)

	if got, ok := nav.Resolve(els[0], Right); ok {
		t.Errorf("Resolve(a, right) = %s, want none", name(got))
	}
}

func TestStepCount(t *testing.T) {
	els := row(5, 0)
	g := NewGraph(nil)
	g.Register(elements(els)...)
	nav := NewNavigator(g)

	tests := []struct {
		name   string
		from   int
		dir    Direction
		count  int
		want   string
		wantOK bool
	}{
		{"single", 0, Right, 1, "b", true},
		{"three", 0, Right, 3, "d", true},
		{"clamped at chain end", 0, Right, 10, "e", true},
		{"zero treated as one", 0, Right, 0, "b", true},
		{"left from middle", 3, Left, 2, "b", true},
		{"first step fails", 0, Left, 2, "<nil>", false},
		{"no vertical neighbors", 2, Down, 1, "<nil>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nav.Step(els[tt.from], tt.dir, tt.count)
			if ok != tt.wantOK || name(got) != tt.want {
				t.Errorf("Step() = %s, %v, want %s, %v", name(got), ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveVerticalDirect(t *testing.T) {
	top := button("top", 0, 0, 40, 20)
	bottom := button("bottom", 0, 100, 40, 20)
	g := NewGraph(nil)
	g.Register(top, bottom)
	nav := NewNavigator(g)

	if got, ok := nav.Resolve(top, Down); !ok || got != Element(bottom) {
		t.Errorf("Resolve(top, down) = %s, want bottom", name(got))
	}
	if got, ok := nav.Resolve(bottom, Up); !ok || got != Element(top) {
		t.Errorf("Resolve(bottom, up) = %s, want top", name(got))
	}
}

func TestResolveVerticalFallback(t *testing.T) {
	a := button("a", 0, 0, 40, 20)
	b := button("b", 100, 0, 40, 20)
	x := button("x", 100, 100, 40, 20)
	g := NewGraph(nil)
	g.Register(a, b, x)
	nav := NewNavigator(g)

	if _, ok := g.Neighbor(a, Down); ok {
		t.Fatal("a should have no direct down neighbor")
	}
	got, ok := nav.Resolve(a, Down)
	if !ok || name(got) != "x" {
		t.Errorf("Resolve(a, down) = %s, want x", name(got))
	}
}

func TestResolveVerticalPicksCloser(t *testing.T) {
	tests := []struct {
		name   string
		rightX float64
		want   string
	}{
		{"right candidate closer", 250, "q"},
		{"tie prefers right chain", 300, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := button("p", 0, 0, 40, 20)
			q := button("q", tt.rightX, 0, 40, 20)
			l := button("l", 0, 100, 40, 20)
			o := button("o", 150, 100, 40, 20)
			r := button("r", tt.rightX, 100, 40, 20)

			g := NewGraph(nil)
			g.Register(p, q, l, o, r)
			if err := g.CheckSymmetry(); err != nil {
				t.Fatal(err)
			}
			nav := NewNavigator(g)

			got, ok := nav.Resolve(o, Up)
			if !ok || name(got) != tt.want {
				t.Errorf("Resolve(o, up) = %s, want %s", name(got), tt.want)
			}
		})
	}
}

func TestVerticalSearchStepLimit(t *testing.T) {
	els := row(10, 0)
	below := button("below", 900, 100, 40, 20)
	g := NewGraph(nil)
	g.Register(elements(els)...)
	g.Register(below)

	got, ok := NewNavigator(g).Resolve(els[0], Down)
	if !ok || name(got) != "below" {
		t.Fatalf("Resolve(a, down) = %s, want below", name(got))
	}

	core, logs := observer.New(zap.WarnLevel)
	nav := NewNavigator(g, WithMaxChainSteps(3), WithLogger(zap.New(core)))
	if got, ok := nav.Resolve(els[0], Down); ok {
		t.Errorf("Resolve(a, down) = %s, want none past the step limit", name(got))
	}
	if n := logs.FilterMessage("vertical search aborted").Len(); n != 1 {
		t.Errorf("logged %d aborted searches, want 1", n)
	}
}

func TestVerticalSearchCycleGuard(t *testing.T) {
	a := button("a", 0, 0, 40, 20)
	b := button("b", 100, 0, 40, 20)
	g := NewGraph(nil)
	g.Register(a, b)

	// Corrupt the row into a two-node ring.
	ha, hb := g.index[a], g.index[b]
	g.slots[ha].links[Left] = hb
	g.slots[hb].links[Right] = ha

	core, logs := observer.New(zap.WarnLevel)
	nav := NewNavigator(g, WithMaxChainSteps(5), WithLogger(zap.New(core)))

	if got, ok := nav.Resolve(a, Down); ok {
		t.Errorf("Resolve(a, down) = %s, want none", name(got))
	}
	entries := logs.FilterMessage("vertical search aborted").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d aborted searches, want 1", len(entries))
	}
	if entries[0].ContextMap()["limit"] != int64(5) {
		t.Errorf("limit field = %v, want 5", entries[0].ContextMap()["limit"])
	}
}

func TestHorizontalCycleGuard(t *testing.T) {
	els := row(3, 0)
	disabled(els[1])
	disabled(els[2])
	g := NewGraph(nil)
	g.Register(elements(els)...)

	// c points back at b, so the walk from a never ends on its own.
	hb, hc := g.index[els[1]], g.index[els[2]]
	g.slots[hc].links[Right] = hb

	core, logs := observer.New(zap.WarnLevel)
	nav := NewNavigator(g, WithLogger(zap.New(core)))

	if got, ok := nav.Resolve(els[0], Right); ok {
		t.Errorf("Resolve(a, right) = %s, want none", name(got))
	}
	if n := logs.FilterMessage("neighbor chain cycle detected").Len(); n != 1 {
		t.Errorf("logged %d cycle warnings, want 1", n)
	}
}

func TestResolveUntracked(t *testing.T) {
	g := NewGraph(nil)
	g.Register(elements(row(2, 0))...)
	nav := NewNavigator(g)

	for _, d := range Directions {
		if _, ok := nav.Resolve(button("stray", 0, 0, 40, 20), d); ok {
			t.Errorf("Resolve(untracked, %s) should find nothing", d)
		}
	}
	if _, ok := nav.Resolve(nil, Right); ok {
		t.Error("Resolve(nil) should find nothing")
	}
}

func TestMove(t *testing.T) {
	els := row(3, 0)
	g := NewGraph(nil)
	g.Register(elements(els)...)
	nav := NewNavigator(g)
	host := &fakeHost{active: els[0]}

	got, ok := nav.Move(host, els[0], Right, 2)
	if !ok || name(got) != "c" {
		t.Fatalf("Move() = %s, want c", name(got))
	}
	if name(host.active) != "c" || len(host.focused) != 1 {
		t.Errorf("host focused %d times, active = %s", len(host.focused), name(host.active))
	}

	if _, ok := nav.Move(host, els[2], Right, 1); ok {
		t.Error("Move past the chain end should find nothing")
	}
	if len(host.focused) != 1 {
		t.Error("a failed motion must not move focus")
	}
}

func TestFocusAnchor(t *testing.T) {
	g := NewGraph(nil)
	nav := NewNavigator(g)
	host := &fakeHost{}

	if _, ok := nav.FocusAnchor(host); ok {
		t.Error("empty graph has no anchor")
	}

	els := row(3, 50)
	g.Register(elements(els)...)
	got, ok := nav.FocusAnchor(host)
	if !ok || name(got) != "a" || host.active != Element(els[0]) {
		t.Errorf("FocusAnchor() = %s, want a", name(got))
	}
}

func TestNavigatorOptions(t *testing.T) {
	g := NewGraph(nil)
	if n := NewNavigator(g).MaxChainSteps(); n != DefaultMaxChainSteps {
		t.Errorf("default MaxChainSteps = %d", n)
	}
	if n := NewNavigator(g, WithMaxChainSteps(0)).MaxChainSteps(); n != DefaultMaxChainSteps {
		t.Errorf("WithMaxChainSteps(0) should be ignored, got %d", n)
	}
	if n := NewNavigator(g, WithMaxChainSteps(7)).MaxChainSteps(); n != 7 {
		t.Errorf("MaxChainSteps = %d, want 7", n)
	}

	els := row(3, 0)
	g.Register(elements(els)...)
	skipB := func(el Element) bool { return name(el) != "b" }
	nav := NewNavigator(g, WithEligibility(skipB))
	if got, _ := nav.Resolve(els[0], Right); name(got) != "c" {
		t.Errorf("custom eligibility: Resolve(a, right) = %s, want c", name(got))
	}
	if nav.Graph() != g {
		t.Error("Graph() should return the navigated graph")
	}
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"left", "h", "right", "l", "up", "k", "down", "j"} {
		d, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", in, err)
			continue
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: Opposite is not an involution", d)
		}
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(diagonal) should fail")
	}
}
