package domain

// Widget is a named piece of content shown inside a category
type Widget struct {
	ID        string `json:"id" yaml:"id" jsonschema:"minLength=1"`
	Name      string `json:"name" yaml:"name" jsonschema:"minLength=1,maxLength=50"`
	Content   string `json:"content" yaml:"content" jsonschema:"minLength=1,maxLength=500"`
	IsVisible bool   `json:"isVisible" yaml:"isVisible"`
}

// Category owns an ordered list of widgets
type Category struct {
	ID      string   `json:"id" yaml:"id" jsonschema:"minLength=1"`
	Name    string   `json:"name" yaml:"name" jsonschema:"minLength=1"`
	Widgets []Widget `json:"widgets" yaml:"widgets"`
}

// WidgetRef is a widget annotated with the category it belongs to.
// It is the element type of flattened and filtered views.
type WidgetRef struct {
	Widget
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Key returns the (category, widget) pair identifying the reference
func (r WidgetRef) Key() WidgetKey {
	return WidgetKey{CategoryID: r.CategoryID, WidgetID: r.ID}
}

// WidgetKey identifies a widget within its category
type WidgetKey struct {
	CategoryID string
	WidgetID   string
}

// WidgetUpdate is one entry of a bulk visibility change
type WidgetUpdate struct {
	CategoryID string
	WidgetID   string
	IsVisible  bool
}

// Clone returns a deep copy of the category
func (c Category) Clone() Category {
	out := c
	if c.Widgets != nil {
		out.Widgets = make([]Widget, len(c.Widgets))
		copy(out.Widgets, c.Widgets)
	}
	return out
}

// CloneCategories deep copies a category list
func CloneCategories(categories []Category) []Category {
	if categories == nil {
		return nil
	}
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.Clone()
	}
	return out
}
