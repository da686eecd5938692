package validation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Field names used as keys in Errors
const (
	FieldName    = "name"
	FieldContent = "content"
)

// Length bounds enforced before a widget is added
const (
	NameMinLength    = 3
	NameMaxLength    = 50
	ContentMinLength = 5
	ContentMaxLength = 500
)

// Errors maps a field to its validation message
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

// Widget holds trimmed form values ready to be dispatched
type Widget struct {
	Name    string
	Content string
}

// ValidateWidget checks name and content. It returns the trimmed values and
// nil when both are acceptable.
func ValidateWidget(name, content string) (Widget, error) {
	w := Widget{
		Name:    strings.TrimSpace(name),
		Content: strings.TrimSpace(content),
	}

	errs := Errors{}
	if msg := Name(w.Name); msg != "" {
		errs[FieldName] = msg
	}
	if msg := Content(w.Content); msg != "" {
		errs[FieldContent] = msg
	}

	if len(errs) > 0 {
		return w, errs
	}
	return w, nil
}

// Name returns the message for an invalid widget name, or "" when valid
func Name(name string) string {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return "Widget name is required"
	case n < NameMinLength:
		return "Widget name must be at least 3 characters long"
	case n > NameMaxLength:
		return "Widget name must be less than 50 characters"
	}
	return ""
}

// Content returns the message for invalid widget content, or "" when valid
func Content(content string) string {
	content = strings.TrimSpace(content)
	n := utf8.RuneCountInString(content)
	switch {
	case n == 0:
		return "Widget content is required"
	case n < ContentMinLength:
		return "Widget content must be at least 5 characters long"
	case n > ContentMaxLength:
		return "Widget content must be less than 500 characters"
	}
	return ""
}
