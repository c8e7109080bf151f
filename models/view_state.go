package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// emailPattern accepts non-space, "@", non-space, ".", non-space
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// EmailValid reports whether s has the shape of an email address.
// Only the format is checked; nothing is sent anywhere.
// RE2's \S only excludes ASCII whitespace, so Unicode spaces are rejected separately.
func EmailValid(s string) bool {
	return !strings.ContainsFunc(s, isSpace) && emailPattern.MatchString(s)
}

// isSpace is the browser's notion of whitespace: Unicode spaces plus the
// byte order mark, without NEL.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// ViewState is the page state owned by one visitor session
type ViewState struct {
	Email        string `json:"email"`
	SelectedPlan PlanID `json:"selected_plan"`
	// Submitted latches: once true it never goes back to false
	Submitted bool `json:"submitted"`
}

// NewViewState returns the state of a freshly loaded page
func NewViewState() ViewState {
	return ViewState{SelectedPlan: DefaultPlan}
}

// EmailValid reports whether the typed email passes the format check
func (s ViewState) EmailValid() bool {
	return EmailValid(s.Email)
}

// CanSubmit gates both subscribe buttons
func (s ViewState) CanSubmit() bool {
	return s.EmailValid() && !s.Submitted
}

// SetEmail stores the input value verbatim
func (s *ViewState) SetEmail(text string) {
	s.Email = text
}

// Submit latches Submitted when the guard passes and reports whether it did.
// A refused submit leaves the state untouched.
func (s *ViewState) Submit() bool {
	if !s.CanSubmit() {
		return false
	}
	s.Submitted = true
	return true
}

// SelectPlan makes id the only selected plan
func (s *ViewState) SelectPlan(id PlanID) error {
	if _, ok := FindPlan(id); !ok {
		return ErrUnknownPlan
	}
	s.SelectedPlan = id
	return nil
}

// IsSelected reports whether id is the selected plan
func (s ViewState) IsSelected(id PlanID) bool {
	return s.SelectedPlan == id
}

// ViewSession ties a ViewState to the visitor's session cookie
type ViewSession struct {
	ID        string    `json:"id"`
	State     ViewState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired checks if the session has expired at now
func (s *ViewSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
