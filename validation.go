package stocksim

import (
	"fmt"
	"strings"
)

// ValidateUsername checks that username can be stored in the credential store:
// it must not be empty nor contain a comma or a line break.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("empty username: %w", ErrInvalidUsername)
	}
	if strings.ContainsAny(username, ",\r\n") {
		return fmt.Errorf("username %q contains a comma or a line break: %w", username, ErrInvalidUsername)
	}
	return nil
}
