package client

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// promptPassphrase prints prompt to w and reads a passphrase from the
// terminal without echo.
func promptPassphrase(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(pw), nil
}

// promptNewPassphrase asks twice and fails when the answers differ.
func promptNewPassphrase(w io.Writer) (string, error) {
	passphrase, err := promptPassphrase(w, "Passphrase: ")
	if err != nil {
		return "", err
	}
	confirm, err := promptPassphrase(w, "Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if passphrase != confirm {
		return "", ErrPassphraseMismatch
	}
	return passphrase, nil
}
