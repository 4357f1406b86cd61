package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserDerivesUsernameFromEmail(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}

	err := registerUser(users, "  alice@example.com ", "secret1")
	require.NoError(t, err)

	user, err := users.ByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, []byte("secret1"), user.HashedPassword)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}

	require.NoError(t, registerUser(users, "bob@example.com", "secret1"))
	err := registerUser(users, "bob@example.com", "another1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, users.users, 1)
}

func TestRegisterUserMissingInput(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}

	assert.ErrorIs(t, registerUser(users, "", "secret1"), ErrMissingCredentials)
	assert.ErrorIs(t, registerUser(users, "x@example.com", ""), ErrMissingCredentials)
}

func TestValidateSuccess(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}
	require.NoError(t, registerUser(users, "carol@example.com", "secret1"))

	v := &credentialValidator{users: users}
	user, err := v.Validate("carol@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Email)
}

func TestValidateFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	users := &fakeUserStore{}
	require.NoError(t, registerUser(users, "dave@example.com", "secret1"))

	v := &credentialValidator{users: users}

	_, wrongPassword := v.Validate("dave@example.com", "wrong")
	_, unknownEmail := v.Validate("nobody@example.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestValidateMissingInput(t *testing.T) {
	t.Parallel()
	v := &credentialValidator{users: &fakeUserStore{}}

	_, err := v.Validate("", "secret1")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = v.Validate("x@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestValidateBackendFault(t *testing.T) {
	t.Parallel()
	v := &credentialValidator{users: &fakeUserStore{failAll: true}}

	_, err := v.Validate("x@example.com", "secret1")
	assert.ErrorIs(t, err, ErrAuthBackend)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
