// Package termui implements the ui capabilities for a terminal. Elements are
// plain state holders; the REPL in package cli reads that state to decide what
// to print and which commands to accept.
package termui

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophgate/internal/ui"
)

type Field struct {
	name     string
	required bool

	mu      sync.Mutex
	value   string
	invalid bool
}

func NewField(name string, required bool) *Field {
	return &Field{name: name, required: required}
}

func (f *Field) Name() string   { return f.name }
func (f *Field) Required() bool { return f.required }

func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

func (f *Field) SetInvalid(invalid bool) {
	f.mu.Lock()
	f.invalid = invalid
	f.mu.Unlock()
}

func (f *Field) Invalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalid
}

// Form keeps fields in declaration order.
type Form struct {
	fields []*Field
}

func NewForm(fields ...*Field) *Form {
	return &Form{fields: fields}
}

func (f *Form) Fields() []ui.Field {
	out := make([]ui.Field, len(f.fields))
	for i, fld := range f.fields {
		out[i] = fld
	}
	return out
}

func (f *Form) Field(name string) ui.Field {
	if fld := f.lookup(name); fld != nil {
		return fld
	}
	return nil
}

// Input returns the concrete field so prompts can fill it.
func (f *Form) Input(name string) *Field {
	return f.lookup(name)
}

func (f *Form) lookup(name string) *Field {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld
		}
	}
	return nil
}

// Reset clears values and marks before the form is shown again.
func (f *Form) Reset() {
	for _, fld := range f.fields {
		fld.SetValue("")
		fld.SetInvalid(false)
	}
}

// NewLoginForm and NewRegisterForm build the two forms of the login dialog.
func NewLoginForm() *Form {
	return NewForm(
		NewField(ui.FieldLoginEmail, true),
		NewField(ui.FieldLoginPassword, true),
	)
}

func NewRegisterForm() *Form {
	return NewForm(
		NewField(ui.FieldRegisterName, true),
		NewField(ui.FieldRegisterEmail, true),
		NewField(ui.FieldRegisterPassword, true),
	)
}

type Region struct {
	mu     sync.Mutex
	hidden bool
}

func NewRegion(hidden bool) *Region {
	return &Region{hidden: hidden}
}

func (r *Region) SetHidden(hidden bool) {
	r.mu.Lock()
	r.hidden = hidden
	r.mu.Unlock()
}

func (r *Region) Hidden() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hidden
}

type Text struct {
	mu   sync.Mutex
	text string
}

func (t *Text) SetText(s string) {
	t.mu.Lock()
	t.text = s
	t.mu.Unlock()
}

func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// Modal renders a banner when opened. The user has no way to close it;
// only Close, called by the session controller, does.
type Modal struct {
	mu             sync.Mutex
	w              io.Writer
	open           bool
	nonDismissible bool
}

func NewModal(w io.Writer) *Modal {
	return &Modal{w: w}
}

func (m *Modal) Open(nonDismissible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = true
	m.nonDismissible = nonDismissible
	fmt.Fprintln(m.w, "+-------------------------------------------+")
	fmt.Fprintln(m.w, "|  Log in or register to continue           |")
	fmt.Fprintln(m.w, "|  commands: login, register                |")
	fmt.Fprintln(m.w, "+-------------------------------------------+")
}

func (m *Modal) Close() {
	m.mu.Lock()
	m.open = false
	m.nonDismissible = false
	m.mu.Unlock()
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal) NonDismissible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open && m.nonDismissible
}

// Notifier prints notices as "! <msg>" lines.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Alert(msg string) {
	fmt.Fprintf(n.w, "! %s\n", msg)
}
