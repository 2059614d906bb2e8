package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/common"
)

func (a *App) profile(ctx context.Context) {
	user, err := a.session.GetUserInfo(ctx)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}

	fmt.Fprintf(a.out, "%s\n", user.DisplayName())
	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email: %s\n", user.Email)

	if exp, ok := a.session.TokenExpiry(ctx); ok {
		fmt.Fprintf(a.out, "Session valid until %s\n", exp.Local().Format("Jan 2, 2006 15:04"))
	}
}

func (a *App) changePassword(ctx context.Context) {
	oldPassword, err := GetPassword("Enter current password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := GetPassword("Enter new password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(confirm)

	if err := validatePasswordForm(string(oldPassword), string(newPassword), string(confirm)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	msg, err := a.session.ChangePassword(ctx, string(oldPassword), string(newPassword))
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return
	}
	fmt.Fprintln(a.out, msg.Detail)
}
