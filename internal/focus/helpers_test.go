package focus

// fakeElement is a minimal Element for tests.
type fakeElement struct {
	name     string
	tag      string
	attrs    map[string]string
	editable bool
	rect     Rect
}

func (f *fakeElement) Tag() string { return f.tag }

func (f *fakeElement) Attr(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func (f *fakeElement) Editable() bool { return f.editable }
func (f *fakeElement) Rect() Rect     { return f.rect }
func (f *fakeElement) String() string { return f.name }

func button(name string, x, y, w, h float64) *fakeElement {
	return &fakeElement{name: name, tag: "button", attrs: map[string]string{}, rect: NewRect(x, y, w, h)}
}

func disabled(el *fakeElement) *fakeElement {
	el.attrs["disabled"] = ""
	return el
}

// row returns n buttons of width 40 spaced 100 apart on the same line.
func row(n int, y float64) []*fakeElement {
	out := make([]*fakeElement, n)
	for i := range out {
		out[i] = button(string(rune('a'+i)), float64(i*100), y, 40, 20)
	}
	return out
}

func elements(fs []*fakeElement) []Element {
	out := make([]Element, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// fakeHost records focus calls.
type fakeHost struct {
	active  Element
	focused []Element
}

func (h *fakeHost) ActiveElement() Element { return h.active }

func (h *fakeHost) Focus(el Element) {
	h.active = el
	h.focused = append(h.focused, el)
}

func name(el Element) string {
	if el == nil {
		return "<nil>"
	}
	return el.(*fakeElement).name
}
