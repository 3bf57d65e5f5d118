package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sonic-miniapp/internal/core/domain"
)

// formField is one line of a form overlay. Text fields edit through the
// shared textinput; toggle fields flip on space/enter and render their
// current selection instead of an input box.
type formField struct {
	key    string
	label  string
	get    func() string
	set    func(string)
	toggle func() // non-nil for selection fields
}

// form is a minimal vertical form: one field focused at a time, the
// focused text field backed by a textinput. Validation messages come from
// the owning usecase and are rendered under the matching field by key.
type form struct {
	title  string
	fields []formField
	focus  int
	input  textinput.Model
}

func newForm(title string, fields []formField) *form {
	in := textinput.New()
	in.CharLimit = 200
	in.Width = 40
	f := &form{title: title, fields: fields, input: in}
	f.syncInput()
	return f
}

// syncInput loads the focused field's value into the input box.
func (f *form) syncInput() {
	if len(f.fields) == 0 {
		return
	}
	fld := f.fields[f.focus]
	if fld.toggle != nil {
		f.input.Blur()
		return
	}
	f.input.SetValue(fld.get())
	f.input.CursorEnd()
	f.input.Focus()
}

// commit stores the input box back into the focused field.
func (f *form) commit() {
	if len(f.fields) == 0 {
		return
	}
	fld := f.fields[f.focus]
	if fld.toggle == nil && fld.set != nil {
		fld.set(f.input.Value())
	}
}

func (f *form) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.commit()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.syncInput()
}

// Update handles one key. It reports whether the key was consumed.
func (f *form) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up", "shift+tab":
		f.move(-1)
		return nil, true
	case "down", "tab":
		f.move(1)
		return nil, true
	case " ", "enter":
		if fld := f.fields[f.focus]; fld.toggle != nil {
			fld.toggle()
			return nil, true
		}
		if msg.String() == "enter" {
			f.move(1)
			return nil, true
		}
	}
	if f.fields[f.focus].toggle != nil {
		return nil, false
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.commit()
	return cmd, true
}

// View renders the form with inline errors.
func (f *form) View(s Styles, errs domain.FieldErrors) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(f.title) + "\n\n")
	for i, fld := range f.fields {
		cursor := "  "
		if i == f.focus {
			cursor = s.TableActive.Render("> ")
		}
		b.WriteString(cursor + s.Label.Render(fld.label+": "))
		if fld.toggle != nil {
			b.WriteString(fld.get())
		} else if i == f.focus {
			b.WriteString(f.input.View())
		} else {
			b.WriteString(fld.get())
		}
		b.WriteString("\n")
		if msg, ok := errs[fld.key]; ok {
			b.WriteString("    " + s.Error.Render(msg) + "\n")
		}
	}
	return b.String()
}
