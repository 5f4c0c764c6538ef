// pkg/ciq_io/secure_input.go

package ciq_io

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// MaxPasswordLength defines the maximum allowed password length
const MaxPasswordLength = 256

// InputValidationError represents input validation errors
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// ValidatePasswordInput validates password input before it is sent anywhere.
func ValidatePasswordInput(password, fieldName string) error {
	if len(password) == 0 {
		return &InputValidationError{Field: fieldName, Reason: "cannot be empty"}
	}
	if len(password) > MaxPasswordLength {
		return &InputValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("too long (%d chars, max %d)", len(password), MaxPasswordLength),
		}
	}
	if !utf8.ValidString(password) {
		return &InputValidationError{Field: fieldName, Reason: "contains invalid UTF-8 sequences"}
	}
	for _, r := range password {
		if r < 32 && r != '\t' {
			return &InputValidationError{Field: fieldName, Reason: "contains control characters"}
		}
	}
	return nil
}

// PromptSecurePassword prompts for a password without echoing to screen.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := string(raw)
	if err := ValidatePasswordInput(password, "password"); err != nil {
		return "", err
	}
	return password, nil
}
