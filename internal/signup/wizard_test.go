package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okSubmitter(result Result) Submitter {
	return SubmitterFunc(func(context.Context, Fields) (Result, error) {
		return result, nil
	})
}

func TestNext_BlocksOnEmptyName(t *testing.T) {
	w := New()
	w.SetFields(Fields{Name: "   ", Email: "a@b.co"})

	assert.False(t, w.Next())
	assert.Equal(t, StepIdentity, w.Step())
	assert.NotEmpty(t, w.Errors()["name"])
	assert.Empty(t, w.Errors()["email"])
}

func TestNext_BlocksOnMalformedEmail(t *testing.T) {
	for _, email := range []string{"", "abc", "abc@", "abc@host", "a b@c.co"} {
		w := New()
		w.SetFields(Fields{Name: "Alex Chen", Email: email})

		assert.False(t, w.Next(), "email %q must not pass", email)
		assert.Equal(t, StepIdentity, w.Step())
		assert.NotEmpty(t, w.Errors()["email"])
	}
}

func TestNext_AdvancesOnValidIdentity(t *testing.T) {
	w := New()
	w.SetFields(Fields{Name: "Alex Chen", Email: "a@b.co"})

	assert.True(t, w.Next())
	assert.Equal(t, StepCredentials, w.Step())
	assert.Empty(t, w.Errors())
}

func TestErrors_ClearedOnEveryValidationPass(t *testing.T) {
	w := New()
	w.SetFields(Fields{Name: "", Email: "bad"})
	require.False(t, w.Next())
	require.Len(t, w.Errors(), 2)

	w.SetFields(Fields{Name: "Alex Chen", Email: "a@b.co"})
	require.True(t, w.Next())
	assert.Empty(t, w.Errors(), "old errors must not accumulate")
}

func TestBack_ReturnsToIdentityStep(t *testing.T) {
	w := New()
	w.SetFields(Fields{Name: "Alex Chen", Email: "a@b.co"})
	require.True(t, w.Next())

	w.Back()
	assert.Equal(t, StepIdentity, w.Step())
	// Entered values survive going back.
	assert.Equal(t, "a@b.co", w.Fields().Email)
}

func advanceToCredentials(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	w.SetFields(Fields{Name: "Alex Chen", Email: "a@b.co"})
	require.True(t, w.Next())
	return w
}

func TestSubmit_PasswordTooShort(t *testing.T) {
	w := advanceToCredentials(t)
	f := w.Fields()
	f.Password, f.ConfirmPassword = "abc1234", "abc1234"
	w.SetFields(f)

	outcome, err := w.Submit(context.Background(), okSubmitter(Result{}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, StepCredentials, w.Step())
	assert.NotEmpty(t, w.Errors()["password"])
}

func TestSubmit_ConfirmationMismatch(t *testing.T) {
	w := advanceToCredentials(t)
	f := w.Fields()
	f.Password, f.ConfirmPassword = "abcd1234", "abcd1235"
	w.SetFields(f)

	outcome, err := w.Submit(context.Background(), okSubmitter(Result{}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.NotEmpty(t, w.Errors()["confirm_password"])
	assert.Empty(t, w.Errors()["password"])
}

func TestSubmit_ReachesSuccess(t *testing.T) {
	w := advanceToCredentials(t)
	f := w.Fields()
	f.Password, f.ConfirmPassword = "abcd1234", "abcd1234"
	w.SetFields(f)

	outcome, err := w.Submit(context.Background(), okSubmitter(Result{}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdvanced, outcome)
	assert.Equal(t, StepSuccess, w.Step())
}

func TestSubmit_VerifiedOnCreateRedirects(t *testing.T) {
	w := advanceToCredentials(t)
	f := w.Fields()
	f.Password, f.ConfirmPassword = "abcd1234", "abcd1234"
	w.SetFields(f)

	outcome, err := w.Submit(context.Background(), okSubmitter(Result{AlreadyVerified: true}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRedirected, outcome)
	// The success screen is skipped entirely.
	assert.NotEqual(t, StepSuccess, w.Step())
}

func TestSubmit_ProviderErrorPropagatesUntouched(t *testing.T) {
	w := advanceToCredentials(t)
	f := w.Fields()
	f.Password, f.ConfirmPassword = "abcd1234", "abcd1234"
	w.SetFields(f)

	providerErr := errors.New("identity provider unavailable")
	outcome, err := w.Submit(context.Background(), SubmitterFunc(func(context.Context, Fields) (Result, error) {
		return Result{}, providerErr
	}))

	assert.Equal(t, OutcomeBlocked, outcome)
	assert.ErrorIs(t, err, providerErr)
	assert.Equal(t, StepCredentials, w.Step(), "user can retry in place")
}

func TestSubmit_IgnoredOutsideCredentialsStep(t *testing.T) {
	w := New()
	outcome, err := w.Submit(context.Background(), okSubmitter(Result{}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, StepIdentity, w.Step())
}
