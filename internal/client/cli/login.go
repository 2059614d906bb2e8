package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/common"
)

func (a *App) Login(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := validateLoginForm(username, string(password)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", describe(err))
		return
	}

	fmt.Fprintln(a.out, "Login successful")
}

func (a *App) Register(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(confirm)

	if err := validateRegisterForm(username, email, string(password), string(confirm)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	user, err := a.session.Register(ctx, models.RegisterRequest{
		Username:  username,
		Password:  string(password),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", describe(err))
		return
	}

	fmt.Fprintf(a.out, "Registered %s, you can now log in\n", user.Username)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

// describe maps a failure to its user-facing message.
func describe(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Description()
	}
	return err.Error()
}
