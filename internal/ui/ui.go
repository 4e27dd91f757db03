// Package ui declares the capabilities the session and form controllers need
// from a user interface. Controllers never talk to a concrete toolkit; an
// adapter (see package termui) implements these interfaces.
package ui

// Field is a named form input that can carry an "invalid" mark.
type Field interface {
	Name() string
	Value() string
	Required() bool
	SetInvalid(invalid bool)
	Invalid() bool
}

// Form is an ordered set of fields.
type Form interface {
	Fields() []Field
	// Field returns nil when the form has no field with that name.
	Field(name string) Field
}

// Region is a part of the page that can be hidden.
type Region interface {
	SetHidden(hidden bool)
	Hidden() bool
}

// Text is a node whose text can be replaced.
type Text interface {
	SetText(s string)
}

// Modal is a dialog. When opened non-dismissible it can only be closed by
// the program, never by the user.
type Modal interface {
	Open(nonDismissible bool)
	Close()
}

// Notifier shows a blocking notice; Alert returns once the notice was shown.
type Notifier interface {
	Alert(msg string)
}

// Page groups the elements the session controller toggles.
type Page struct {
	MainContent Region
	LoginEntry  Region
	LoggedInNav Region
	Greeting    Text
	LoginModal  Modal
	Notices     Notifier
}

// Form field names.
const (
	FieldLoginEmail       = "loginEmail"
	FieldLoginPassword    = "loginPassword"
	FieldRegisterName     = "registerName"
	FieldRegisterEmail    = "registerEmail"
	FieldRegisterPassword = "registerPassword"
)
