package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/madil51/chunk-client/internal/client/guard"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates, opens the realtime
// connection and lands the user on their role's home view.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	a.openRealtime(ctx)
	a.goTo(guard.HomeRouteFor(user.Role))
	return nil
}

// Register prompts for the account fields and creates the account. The
// backend signs the new user in, so the flow ends the same way Login does.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Role (customer/driver)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(roleText)
	if roleText == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleDriver {
		fmt.Fprintln(a.out, "Role must be customer or driver")
		return common.ErrValidationFailed
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, models.RegisterData{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     role,
		Password: password,
	})
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", user.Name)
	a.openRealtime(ctx)
	a.goTo(guard.HomeRouteFor(user.Role))
	return nil
}

// Forgot requests a password reset email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintln(a.out, "If the address exists, a reset link is on its way.")
	return nil
}

// Reset completes a password reset with the emailed token.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return err
	}
	if err := a.auth.CompletePasswordReset(ctx, token, password); err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintln(a.out, "Password updated. Please login.")
	return nil
}

// Logout tears the realtime connection down before the session goes away,
// then lands on the login view. Safe when already signed out.
func (a *App) Logout(ctx context.Context) error {
	a.bridge.Close()
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.goTo(guard.LoginRoute)
	return nil
}

// openRealtime opens the socket connection; a failure is reported but does
// not block the signed-in flow, the REST surface still works.
func (a *App) openRealtime(ctx context.Context) {
	if err := a.bridge.Open(ctx); err != nil {
		fmt.Fprintf(a.out, "Realtime connection failed: %v (live updates disabled)\n", err)
	}
}

func (a *App) printAuthError(err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid email or password.")
	case errors.Is(err, common.ErrConflict):
		fmt.Fprintln(a.out, "An account with this email already exists.")
	case errors.Is(err, common.ErrValidationFailed):
		fmt.Fprintf(a.out, "Invalid input: %v\n", err)
	case errors.Is(err, common.ErrNetwork):
		fmt.Fprintln(a.out, "Cannot reach the server. Check your connection.")
	default:
		fmt.Fprintf(a.out, "Something went wrong: %v\n", err)
	}
}
