package signup

import (
	"context"
	"regexp"
	"strings"
)

// Step identifies where the wizard is. StepSuccess is terminal.
type Step int

const (
	StepIdentity    Step = iota // name + email
	StepCredentials             // password + confirmation
	StepSuccess
)

// MinPasswordLength is the credential floor enforced at StepCredentials.
const MinPasswordLength = 8

// Loose local@domain.tld shape. Deliverability is the mail provider's
// problem; this only catches obvious typos before submit.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fields holds everything the two steps collect.
type Fields struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Result is what the identity provider reports after account creation.
type Result struct {
	// AlreadyVerified means the provider created a fully verified account
	// (e.g. the email was pre-verified via a social identity). The wizard
	// then redirects straight into the app instead of showing the success
	// screen.
	AlreadyVerified bool
}

// Submitter is the identity-provider boundary for account creation.
type Submitter interface {
	Submit(ctx context.Context, f Fields) (Result, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, f Fields) (Result, error)

func (fn SubmitterFunc) Submit(ctx context.Context, f Fields) (Result, error) {
	return fn(ctx, f)
}

// Outcome reports what a Submit call did.
type Outcome int

const (
	OutcomeBlocked    Outcome = iota // validation failed or provider errored
	OutcomeAdvanced                  // success screen reached
	OutcomeRedirected                // verified-on-create: skip the success screen
)

// Wizard is the two-step signup state machine. Not safe for concurrent use;
// one wizard serves one signup session.
type Wizard struct {
	step   Step
	fields Fields
	errors map[string]string
}

// New returns a wizard at the identity step with no errors recorded.
func New() *Wizard {
	return &Wizard{step: StepIdentity, errors: map[string]string{}}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Fields returns the currently entered field values.
func (w *Wizard) Fields() Fields { return w.fields }

// SetFields records user input without validating it.
func (w *Wizard) SetFields(f Fields) { w.fields = f }

// Errors returns the field-keyed messages from the most recent validation
// pass. The map is fully rebuilt on every pass; stale errors never linger.
func (w *Wizard) Errors() map[string]string { return w.errors }

// Next validates the identity step and advances to credentials when it
// passes. At any other step it does nothing and reports false.
func (w *Wizard) Next() bool {
	if w.step != StepIdentity {
		return false
	}
	if !w.validateIdentity() {
		return false
	}
	w.step = StepCredentials
	return true
}

// Back returns from the credentials step to the identity step. Entered
// values and recorded errors are kept.
func (w *Wizard) Back() {
	if w.step == StepCredentials {
		w.step = StepIdentity
	}
}

// Submit validates the credentials step and, when it passes, hands the
// fields to the identity provider. Provider errors are returned untouched;
// the wizard stays at the credentials step so the user can retry.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (Outcome, error) {
	if w.step != StepCredentials {
		return OutcomeBlocked, nil
	}
	if !w.validateCredentials() {
		return OutcomeBlocked, nil
	}

	result, err := s.Submit(ctx, w.fields)
	if err != nil {
		return OutcomeBlocked, err
	}

	if result.AlreadyVerified {
		return OutcomeRedirected, nil
	}
	w.step = StepSuccess
	return OutcomeAdvanced, nil
}

func (w *Wizard) validateIdentity() bool {
	w.errors = map[string]string{}

	if strings.TrimSpace(w.fields.Name) == "" {
		w.errors["name"] = "Name is required"
	}
	email := strings.TrimSpace(w.fields.Email)
	if email == "" {
		w.errors["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		w.errors["email"] = "Enter a valid email address"
	}

	return len(w.errors) == 0
}

func (w *Wizard) validateCredentials() bool {
	w.errors = map[string]string{}

	if w.fields.Password == "" {
		w.errors["password"] = "Password is required"
	} else if len(w.fields.Password) < MinPasswordLength {
		w.errors["password"] = "Password must be at least 8 characters"
	}
	if w.fields.ConfirmPassword == "" {
		w.errors["confirm_password"] = "Please confirm your password"
	} else if w.fields.ConfirmPassword != w.fields.Password {
		w.errors["confirm_password"] = "Passwords do not match"
	}

	return len(w.errors) == 0
}
