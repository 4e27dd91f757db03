package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophgate/internal/config"
	"github.com/dmitrijs2005/gophgate/internal/forms"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/session"
	"github.com/dmitrijs2005/gophgate/internal/storage"
	"github.com/dmitrijs2005/gophgate/internal/ui/termui"
	"github.com/dmitrijs2005/gophgate/internal/users"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// protectedContent is what "show" prints once access is granted.
const protectedContent = "This is the members area. Only logged in users can read it."

type App struct {
	config  *config.Config
	log     logging.Logger
	page    *termui.Page
	session *session.Controller
	forms   *forms.Controller
	closer  io.Closer

	reader *bufio.Reader
	out    io.Writer

	// hidden password input is only possible on a real terminal
	secretInput bool
}

// NewApp opens the configured store and builds the page, the session
// controller and the form controllers on top of it. Every instance logs
// with its own tab id, like one browser tab among many sharing the store.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logging.New(os.Stderr, level).With("tab", uuid.New().String())

	a, err := newApp(ctx, c, l, os.Stdin, os.Stdout)
	if err != nil {
		l.Error(ctx, "error initializing store", "backend", c.StoreBackend, "err", err)
		return nil, err
	}
	a.secretInput = isTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, l logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, closer, err := storage.Open(ctx, c)
	if err != nil {
		return nil, err
	}

	page := termui.NewPage(out)
	sess := session.NewController(store, page.UI(), l)
	fc := forms.New(forms.Deps{
		Users:   users.NewStore(store),
		Session: sess,
		Notices: page.Notices,
		Logger:  l,
	})

	l.Debug(ctx, "store opened", "backend", c.StoreBackend, "namespace", c.Namespace)

	return &App{
		config:  c,
		log:     l,
		page:    page,
		session: sess,
		forms:   fc,
		closer:  closer,
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

// Run restores or opens the session and serves commands until the user
// exits, input ends or ctx is cancelled. The store is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to GophGate (type 'help' for commands)")
	if err := a.session.Start(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *App) modalOpen() bool {
	return a.page.LoginModal.IsOpen()
}

func (a *App) getStatus() string {
	if name := a.session.DisplayName(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return "(guest)"
}

// helpText follows what the page shows: the login entry while logged out,
// the user controls while logged in.
func (a *App) helpText() string {
	if !a.page.LoggedInNav.Hidden() {
		return "Available commands: show, whoami, logout, exit"
	}
	return "Available commands: login, register, exit"
}
