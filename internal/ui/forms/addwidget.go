package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/validation"
)

// Field identifies a form input
type Field int

const (
	FieldName Field = iota
	FieldContent
)

// AddWidget is the dialog used to create a widget in a category
type AddWidget struct {
	CategoryID   string
	CategoryName string

	name       textinput.Model
	content    textarea.Model
	focus      Field
	errors     validation.Errors
	submitting bool
	submitErr  string
}

// NewAddWidget creates a closed form
func NewAddWidget() *AddWidget {
	name := textinput.New()
	name.Placeholder = "Enter widget name..."
	name.CharLimit = validation.NameMaxLength
	name.Prompt = ""
	name.Width = 48

	content := textarea.New()
	content.Placeholder = "Enter widget content..."
	content.CharLimit = validation.ContentMaxLength
	content.ShowLineNumbers = false
	content.SetWidth(50)
	content.SetHeight(4)

	return &AddWidget{
		name:    name,
		content: content,
		errors:  validation.Errors{},
	}
}

// Open resets the form for the given category and focuses the name field
func (f *AddWidget) Open(categoryID, categoryName string) tea.Cmd {
	f.CategoryID = categoryID
	f.CategoryName = categoryName
	f.name.Reset()
	f.content.Reset()
	f.errors = validation.Errors{}
	f.submitting = false
	f.submitErr = ""
	return f.setFocus(FieldName)
}

// Close blurs both inputs
func (f *AddWidget) Close() {
	f.name.Blur()
	f.content.Blur()
	f.submitting = false
}

// Update routes a message to the focused input. Editing a field clears
// its validation message.
func (f *AddWidget) Update(msg tea.Msg) tea.Cmd {
	if f.submitting {
		return nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		before := f.name.Value()
		f.name, cmd = f.name.Update(msg)
		if f.name.Value() != before {
			delete(f.errors, validation.FieldName)
			f.submitErr = ""
		}
	case FieldContent:
		before := f.content.Value()
		f.content, cmd = f.content.Update(msg)
		if f.content.Value() != before {
			delete(f.errors, validation.FieldContent)
			f.submitErr = ""
		}
	}
	return cmd
}

// NextField moves focus between name and content
func (f *AddWidget) NextField() tea.Cmd {
	if f.focus == FieldName {
		return f.setFocus(FieldContent)
	}
	return f.setFocus(FieldName)
}

func (f *AddWidget) setFocus(field Field) tea.Cmd {
	f.focus = field
	if field == FieldName {
		f.content.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.content.Focus()
}

// Submit validates the form. On success it returns the trimmed values.
func (f *AddWidget) Submit() (validation.Widget, bool) {
	w, err := validation.ValidateWidget(f.name.Value(), f.content.Value())
	if err != nil {
		if errs, ok := err.(validation.Errors); ok {
			f.errors = errs
		}
		return w, false
	}
	f.errors = validation.Errors{}
	return w, true
}

// SetValues fills both inputs
func (f *AddWidget) SetValues(name, content string) {
	f.name.SetValue(name)
	f.content.SetValue(content)
}

// SetSubmitting marks the form as waiting for the store
func (f *AddWidget) SetSubmitting(v bool) { f.submitting = v }

// SetSubmitError shows a form-level failure
func (f *AddWidget) SetSubmitError(msg string) { f.submitErr = msg }

// IsValid reports whether the submit button would be enabled
func (f *AddWidget) IsValid() bool {
	return strings.TrimSpace(f.name.Value()) != "" &&
		strings.TrimSpace(f.content.Value()) != "" &&
		len(f.errors) == 0
}

// Focus returns the focused field
func (f *AddWidget) Focus() Field { return f.focus }

// Submitting reports whether the form is waiting for the store
func (f *AddWidget) Submitting() bool { return f.submitting }

// Error returns the validation message for a field
func (f *AddWidget) Error(field Field) string {
	if field == FieldName {
		return f.errors[validation.FieldName]
	}
	return f.errors[validation.FieldContent]
}

// SubmitError returns the form-level failure message
func (f *AddWidget) SubmitError() string { return f.submitErr }

// NameValue returns the raw name input
func (f *AddWidget) NameValue() string { return f.name.Value() }

// ContentValue returns the raw content input
func (f *AddWidget) ContentValue() string { return f.content.Value() }

// NameLen is the character count shown under the name input
func (f *AddWidget) NameLen() int { return utf8.RuneCountInString(f.name.Value()) }

// ContentLen is the character count shown under the content input
func (f *AddWidget) ContentLen() int { return utf8.RuneCountInString(f.content.Value()) }

// NameView renders the name input
func (f *AddWidget) NameView() string { return f.name.View() }

// ContentView renders the content input
func (f *AddWidget) ContentView() string { return f.content.View() }
