package keymap

// Binding is what a key combination is bound to.
type Binding struct {
	// Action is the name of the bound action.
	// Examples: "focus.left", "mode.insert", "lua:bind"
	Action string

	// Handler runs the action.
	Handler Handler

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a binding for a custom handler.
func NewBinding(action string, handler Handler) Binding {
	return Binding{
		Action:  action,
		Handler: handler,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Entry is a binding together with its combination.
type Entry struct {
	Combo string
	Binding
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name    string
	Entries []Entry
}

// GroupByCategory groups entries by their category, keeping the order in
// which categories first appear.
func GroupByCategory(entries []Entry) []BindingCategory {
	categoryMap := make(map[string][]Entry)
	order := make([]string, 0)

	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], e)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:    name,
			Entries: categoryMap[name],
		})
	}
	return result
}
