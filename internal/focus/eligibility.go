package focus

// IsFocusable reports whether el is an interactive element by kind or
// attribute: inputs (other than hidden ones), text areas, buttons, links,
// anything with a tabindex and anything editable.
func IsFocusable(el Element) bool {
	if el == nil {
		return false
	}
	switch el.Tag() {
	case "input":
		t, _ := el.Attr("type")
		return t != "hidden"
	case "textarea", "button", "a":
		return true
	}
	if _, ok := el.Attr("tabindex"); ok {
		return true
	}
	return el.Editable()
}

// CanReceiveFocus reports whether el can take focus right now. Disabled
// form controls and links without an href are skipped, even with a
// tabindex. Other elements with a tabindex or content editing are always
// eligible.
func CanReceiveFocus(el Element) bool {
	if !IsFocusable(el) {
		return false
	}
	switch el.Tag() {
	case "input", "textarea", "button":
		_, disabled := el.Attr("disabled")
		return !disabled
	case "a":
		_, ok := el.Attr("href")
		return ok
	}
	if _, ok := el.Attr("tabindex"); ok {
		return true
	}
	return el.Editable()
}
