package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSubmitter counts calls and keeps the last submitted values.
type recordingSubmitter struct {
	calls int
	kind  Kind
	last  Values
	err   error
}

func (r *recordingSubmitter) Submit(ctx context.Context, kind Kind, values Values) error {
	r.calls++
	r.kind = kind
	r.last = values
	return r.err
}

func TestForm_LoginScenario(t *testing.T) {
	sub := &recordingSubmitter{}
	f := New(KindLogin, LoginInput{})
	assert.Equal(t, Pristine, f.State())

	require.NoError(t, f.Set("email", "a@b.com"))
	require.NoError(t, f.Set("password", "secret"))
	assert.Equal(t, Editing, f.State())

	require.NoError(t, f.Submit(context.Background(), sub))

	assert.Equal(t, Valid, f.State())
	assert.Empty(t, f.Errors())
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, KindLogin, sub.kind)
	assert.Equal(t, Values{"email": "a@b.com", "password": "secret"}, sub.last)
}

func TestForm_ForgotPasswordInvalidEmail(t *testing.T) {
	sub := &recordingSubmitter{}
	f := New(KindForgotPassword, ForgotPasswordInput{Email: "not-an-email"})

	require.NoError(t, f.Submit(context.Background(), sub))

	assert.Equal(t, Invalid, f.State())
	assert.Equal(t, MsgInvalidEmail, f.Errors()["email"])
	assert.Zero(t, sub.calls)
}

func TestForm_ResubmitAfterFix(t *testing.T) {
	sub := &recordingSubmitter{}
	f := New(KindSignup, SignupInput{Email: "a@b.com", Password: "123"})

	require.NoError(t, f.Submit(context.Background(), sub))
	assert.Equal(t, Invalid, f.State())

	require.NoError(t, f.Set("password", "123456"))
	require.NoError(t, f.Submit(context.Background(), sub))
	assert.Equal(t, Valid, f.State())
	assert.Empty(t, f.Errors())
	assert.Equal(t, 1, sub.calls)
}

func TestForm_SubmitterError(t *testing.T) {
	boom := errors.New("bus closed")
	sub := &recordingSubmitter{err: boom}
	f := New(KindLogin, LoginInput{Email: "a@b.com", Password: "secret"})

	err := f.Submit(context.Background(), sub)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Valid, f.State())
}

func TestForm_SetUnknownField(t *testing.T) {
	f := New(KindForgotPassword, ForgotPasswordInput{})
	assert.Error(t, f.Set("password", "x"))
	assert.Equal(t, Pristine, f.State())
}

func TestForm_ValuesHideSecrets(t *testing.T) {
	f := New(KindLogin, LoginInput{Email: "a@b.com", Password: "secret"})
	assert.Equal(t, Values{"email": "a@b.com", "password": ""}, f.Values())
}

func TestRedact(t *testing.T) {
	got := Redact(Values{"email": "a@b.com", "password": "secret"})
	assert.Equal(t, Values{"email": "a@b.com", "password": "[redacted]"}, got)
}
