package validation

import "fmt"

var (
	errEmptyUsername    = fmt.Errorf("username cannot be empty")
	errUsernameTooShort = fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	errUsernameTooLong  = fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	errUsernameBadChars = fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")

	errEmptyPassword    = fmt.Errorf("password cannot be empty")
	errPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
)
