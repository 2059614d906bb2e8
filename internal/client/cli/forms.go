package cli

import (
	"errors"

	"github.com/dmitrijs2005/noteskeeper/internal/client/session"
)

// Form-validity gates mirrored from the product's screens. They run before
// any request is issued; the synchronous REPL additionally guarantees a
// single in-flight submission per form.

var (
	errMissingFields      = errors.New("all required fields must be filled in")
	errPasswordMismatch   = errors.New("passwords do not match")
	errPasswordTooShort   = session.ErrPasswordTooShort
	errMissingCredentials = errors.New("username and password are required")
)

func validateLoginForm(username, password string) error {
	if username == "" || password == "" {
		return errMissingCredentials
	}
	return nil
}

func validateRegisterForm(username, email, password, confirm string) error {
	if username == "" || email == "" || password == "" {
		return errMissingFields
	}
	if password != confirm {
		return errPasswordMismatch
	}
	if len(password) < session.MinPasswordLength {
		return errPasswordTooShort
	}
	return nil
}

func validatePasswordForm(oldPassword, newPassword, confirm string) error {
	if oldPassword == "" || newPassword == "" {
		return errMissingFields
	}
	if newPassword != confirm {
		return errPasswordMismatch
	}
	if len(newPassword) < session.MinPasswordLength {
		return errPasswordTooShort
	}
	return nil
}
