package termui

import (
	"io"

	"github.com/dmitrijs2005/gophgate/internal/ui"
)

// Page holds the concrete terminal elements. The zero state matches a freshly
// loaded page: content hidden, login entry shown, user controls hidden and
// the dialog closed.
type Page struct {
	MainContent *Region
	LoginEntry  *Region
	LoggedInNav *Region
	Greeting    *Text
	LoginModal  *Modal
	Notices     *Notifier

	LoginForm    *Form
	RegisterForm *Form
}

func NewPage(w io.Writer) *Page {
	return &Page{
		MainContent:  NewRegion(true),
		LoginEntry:   NewRegion(false),
		LoggedInNav:  NewRegion(true),
		Greeting:     &Text{},
		LoginModal:   NewModal(w),
		Notices:      NewNotifier(w),
		LoginForm:    NewLoginForm(),
		RegisterForm: NewRegisterForm(),
	}
}

// UI exposes the page through the capability interfaces.
func (p *Page) UI() ui.Page {
	return ui.Page{
		MainContent: p.MainContent,
		LoginEntry:  p.LoginEntry,
		LoggedInNav: p.LoggedInNav,
		Greeting:    p.Greeting,
		LoginModal:  p.LoginModal,
		Notices:     p.Notices,
	}
}
