package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status   Status
	Category Category
}

// Matches reports whether t satisfies every set criterion.
func (f Filter) Matches(t *Todo) bool {
	if !f.Status.IsZero() && t.Status() != f.Status {
		return false
	}
	if !f.Category.IsZero() && t.Category() != f.Category {
		return false
	}
	return true
}

// Apply returns the todos matching f, preserving order.
func (f Filter) Apply(todos []*Todo) []*Todo {
	out := make([]*Todo, 0, len(todos))
	for _, t := range todos {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
