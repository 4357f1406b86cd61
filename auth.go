package main

import (
	"errors"
	"fmt"
	"strings"

	"blogapi/models"

	"golang.org/x/crypto/bcrypt"
)

// credentialValidator resolves an email+password pair to a stored user.
// It is a small strategy over UserStore so the token-issuing handler does
// not care where identities come from.
type credentialValidator struct {
	users UserStore
}

// Validate returns the matching user or a single non-enumerating
// failure: unknown email and wrong password are indistinguishable to the
// caller. Missing input is reported separately so forms can flag it.
func (v *credentialValidator) Validate(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	user, err := v.users.ByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthBackend, err)
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// registerUser creates an identity. The username is always the email;
// there is no separate username input.
func registerUser(users UserStore, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Email: email, HashedPassword: hashed}
	return users.Create(&user)
}
