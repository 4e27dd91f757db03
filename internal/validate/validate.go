// Package validate holds the form checks used by the login and register
// controllers. The shape checks are deliberately loose.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophgate/internal/ui"
)

// ws is the browser definition of whitespace for \s, which is wider than
// RE2's ASCII-only \s.
const ws = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	passwordRe = regexp.MustCompile(`[^\n\r\x{2028}\x{2029}]{8,}`)
	emailRe    = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)
)

// isBlank reports whether s is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// isSpace follows the browser's trim: BOM counts as space, NEL does not.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\ufeff'
}

// Trim strips leading and trailing whitespace the same way the required
// check does.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// MarkRequired re-marks a single required field by emptiness and reports
// whether it holds a value. Optional fields are left alone.
func MarkRequired(f ui.Field) bool {
	if !f.Required() {
		return true
	}
	ok := !isBlank(f.Value())
	f.SetInvalid(!ok)
	return ok
}

// RequiredFieldsPresent scans every required field of the form, marking the
// blank ones invalid and clearing the mark on the others. It does not stop at
// the first failure.
func RequiredFieldsPresent(form ui.Form) bool {
	valid := true
	for _, f := range form.Fields() {
		if !MarkRequired(f) {
			valid = false
		}
	}
	return valid
}

// PasswordPolicy passes when the password has at least 8 characters in a row
// on one line. There is no character class requirement.
func PasswordPolicy(password string) bool {
	return passwordRe.MatchString(password)
}

// EmailShape passes for local@domain.tld where no part contains whitespace or
// '@'. It is not an RFC 5322 check.
func EmailShape(email string) bool {
	return emailRe.MatchString(email)
}
