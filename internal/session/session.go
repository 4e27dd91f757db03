// Package session implements the two-state session controller. The session
// marker is the logged-in user's display name stored under MarkerKey; its
// presence alone decides the state at startup.
//
// Two users with the same display name cannot be told apart once logged in,
// because the marker is the name and not the email.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophgate/internal/kv"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/ui"
)

// MarkerKey is the kv key holding the session marker.
const MarkerKey = "currentUser"

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Controller owns the session marker and the page elements that depend on it.
type Controller struct {
	store kv.Store
	page  ui.Page
	log   logging.Logger

	mu    sync.Mutex
	state State
	name  string
}

func NewController(store kv.Store, page ui.Page, log logging.Logger) *Controller {
	return &Controller{store: store, page: page, log: log}
}

// Start restores the session from the marker without checking that the user
// record still exists. With no marker it opens the login dialog
// non-dismissible.
func (c *Controller) Start(ctx context.Context) error {
	marker, err := c.store.Get(ctx, MarkerKey)
	if err != nil {
		return fmt.Errorf("read session marker: %w", err)
	}

	if len(marker) > 0 {
		c.log.Info(ctx, "session restored", "user", string(marker))
		return c.GrantAccess(ctx, string(marker))
	}

	c.page.LoginModal.Open(true)
	return nil
}

// GrantAccess writes the marker, shows the content and user controls, closes
// the login dialog and greets the user.
func (c *Controller) GrantAccess(ctx context.Context, name string) error {
	if err := c.store.Set(ctx, MarkerKey, []byte(name)); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}

	c.mu.Lock()
	c.state = Authenticated
	c.name = name
	c.mu.Unlock()

	c.page.MainContent.SetHidden(false)
	c.page.LoginModal.Close()
	c.page.LoginEntry.SetHidden(true)
	c.page.LoggedInNav.SetHidden(false)
	c.page.Greeting.SetText(fmt.Sprintf("Hello, %s", name))

	c.log.Info(ctx, "access granted", "user", name)
	c.page.Notices.Alert(fmt.Sprintf("Access granted! Welcome, %s.", name))
	return nil
}

// Logout removes the marker, hides the content, swaps the navigation back to
// the login entry and reopens the dialog non-dismissible. Registered users
// are not touched.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Delete(ctx, MarkerKey); err != nil {
		return fmt.Errorf("delete session marker: %w", err)
	}

	c.mu.Lock()
	name := c.name
	c.state = Unauthenticated
	c.name = ""
	c.mu.Unlock()

	c.page.MainContent.SetHidden(true)
	c.page.LoggedInNav.SetHidden(true)
	c.page.LoginEntry.SetHidden(false)
	c.page.LoginModal.Open(true)

	c.log.Info(ctx, "session closed", "user", name)
	c.page.Notices.Alert("Session closed. See you soon!")
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DisplayName is empty while unauthenticated.
func (c *Controller) DisplayName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}
