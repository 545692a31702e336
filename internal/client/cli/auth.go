package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and registers the
// derived public commitment with the verifier. The password never leaves
// the process and is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrUserExists) {
			fmt.Println("This username is already registered.")
			return nil
		}
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and runs one proof round. On success the
// returned session ID is stored on the App.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sessionID, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			fmt.Println("Unknown user. Register first.")
			return nil
		case errors.Is(err, common.ErrBadSolution):
			fmt.Println("Authentication failed.")
			return nil
		}
		return err
	}

	a.userName = userName
	a.sessionID = sessionID
	fmt.Printf("Logged in, session %s\n", sessionID)
	return nil
}

// Logout drops the stored session.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	a.sessionID = ""
	return nil
}

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isAuthenticated() {
		fmt.Println("Not authenticated.")
		return nil
	}
	fmt.Printf("%s (session %s)\n", a.userName, a.sessionID)
	return nil
}
