package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// Signup prompts for name, email and a confirmed password, creates the
// account and starts a session.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	sess, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}

	a.tasks.Reset()
	a.listed = nil
	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", displayName(sess)))
	return nil
}

// Login prompts for credentials, starts a session and loads the task list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.listed = nil
	printlnFn(fmt.Sprintf("Login successful. Welcome, %s!", displayName(sess)))
	if err := a.tasks.Load(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	return nil
}

// Logout discards the session and the cached list.
func (a *App) Logout(ctx context.Context) error {
	a.tasks.Reset()
	a.listed = nil
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.auth.Current()
	if sess == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", sess.User.Name, sess.User.Email))
	return nil
}

// ResetPassword checks the account exists, then sets a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}

	exists, err := a.auth.CheckEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		printlnFn("No account found with this email")
		return nil
	}

	password, err := a.newPassword()
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, email, password); err != nil {
		return err
	}

	printlnFn("Password reset successfully. You can now log in.")
	return nil
}

// newPassword reads a password twice. Only the returned slice survives.
func (a *App) newPassword() ([]byte, error) {
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return nil, err
	}
	again, err := getPassword(a.out, "Confirm password")
	if err != nil {
		common.WipeByteArray(password)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if !bytes.Equal(password, again) {
		common.WipeByteArray(password)
		return nil, errPasswordMismatch
	}
	return password, nil
}
