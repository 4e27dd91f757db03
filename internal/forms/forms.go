// Package forms contains the login and register form controllers and the
// live (blur) validation of required fields.
//
// User-input problems are reported through notices and field marks and are
// not errors; the error results carry storage failures only.
package forms

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/ui"
	"github.com/dmitrijs2005/gophgate/internal/users"
	"github.com/dmitrijs2005/gophgate/internal/validate"
)

// Notices shown to the user.
const (
	MsgLoginMissingFields    = "Please fill in all fields to log in."
	MsgInvalidCredentials    = "Error! Invalid credentials or user not registered."
	MsgRegisterMissingFields = "Please fill in all fields to register."
	MsgPasswordTooShort      = "Password must be at least 8 characters long."
	MsgInvalidEmail          = "Please enter a valid email address."
	MsgEmailTaken            = "Registration error: that email is already registered. Try logging in."
)

// UserStore is what the controllers need from the user store.
type UserStore interface {
	Register(ctx context.Context, name, email, password string) error
	Authenticate(ctx context.Context, email, password string) (*users.Record, error)
	ListByRegistrationOrder(ctx context.Context) ([]users.Record, error)
}

// Session is what the controllers need from the session controller.
type Session interface {
	GrantAccess(ctx context.Context, name string) error
}

// Deps are the collaborators wired into a Controller.
type Deps struct {
	Users   UserStore
	Session Session
	Notices ui.Notifier
	Logger  logging.Logger

	// Location for timestamps in the diagnostic listing; nil means local time.
	Location *time.Location
}

type Controller struct {
	users   UserStore
	session Session
	notices ui.Notifier
	log     logging.Logger
	loc     *time.Location
}

func New(d Deps) *Controller {
	log := d.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		users:   d.Users,
		session: d.Session,
		notices: d.Notices,
		log:     log,
		loc:     d.Location,
	}
}

func value(form ui.Form, name string) string {
	if f := form.Field(name); f != nil {
		return validate.Trim(f.Value())
	}
	return ""
}

func mark(form ui.Form, name string, invalid bool) {
	if f := form.Field(name); f != nil {
		f.SetInvalid(invalid)
	}
}

// SubmitLogin validates the login form and grants access on a credential
// match. There is no lockout after repeated failures.
func (c *Controller) SubmitLogin(ctx context.Context, form ui.Form) error {
	if !validate.RequiredFieldsPresent(form) {
		c.notices.Alert(MsgLoginMissingFields)
		return nil
	}

	email := value(form, ui.FieldLoginEmail)
	password := value(form, ui.FieldLoginPassword)

	rec, err := c.users.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	if rec == nil {
		c.log.Info(ctx, "login rejected", "email", email)
		c.notices.Alert(MsgInvalidCredentials)
		return nil
	}

	return c.session.GrantAccess(ctx, rec.Name)
}

// SubmitRegister runs the required, password and email checks in that order,
// stopping at the first failure, then registers the user and grants access.
func (c *Controller) SubmitRegister(ctx context.Context, form ui.Form) error {
	if !validate.RequiredFieldsPresent(form) {
		c.notices.Alert(MsgRegisterMissingFields)
		return nil
	}

	name := value(form, ui.FieldRegisterName)
	email := value(form, ui.FieldRegisterEmail)
	password := value(form, ui.FieldRegisterPassword)

	if !validate.PasswordPolicy(password) {
		mark(form, ui.FieldRegisterPassword, true)
		c.notices.Alert(MsgPasswordTooShort)
		return nil
	}
	mark(form, ui.FieldRegisterPassword, false)

	if !validate.EmailShape(email) {
		mark(form, ui.FieldRegisterEmail, true)
		c.notices.Alert(MsgInvalidEmail)
		return nil
	}
	mark(form, ui.FieldRegisterEmail, false)

	err := c.users.Register(ctx, name, email, password)
	if errors.Is(err, common.ErrorAlreadyExists) {
		c.log.Info(ctx, "registration rejected, email taken", "email", email)
		c.notices.Alert(MsgEmailTaken)
		return nil
	}
	if err != nil {
		return err
	}

	if err := c.session.GrantAccess(ctx, name); err != nil {
		return err
	}
	c.logListing(ctx)
	return nil
}

// Blur re-marks a field by emptiness only; policy checks wait for submit.
func (c *Controller) Blur(f ui.Field) {
	validate.MarkRequired(f)
}

func (c *Controller) logListing(ctx context.Context) {
	list, err := c.users.ListByRegistrationOrder(ctx)
	if err != nil {
		c.log.Warn(ctx, "could not list users", "error", err)
		return
	}
	c.log.Debug(ctx, "registered users\n"+users.FormatListing(list, c.loc), "count", len(list))
}
