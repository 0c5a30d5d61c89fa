package validation

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина master password
	MinPasswordLen = 12
)

// ValidateUsername проверяет имя аккаунта: латиница, цифры и
// подчеркивание, длина 3-32. Имя попадает в URL запроса соли,
// поэтому набор символов намеренно узкий.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return errEmptyUsername
	case len(username) < MinUsernameLen:
		return errUsernameTooShort
	case len(username) > MaxUsernameLen:
		return errUsernameTooLong
	}

	for _, r := range username {
		if !isUsernameRune(r) {
			return errUsernameBadChars
		}
	}

	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}

// ValidatePassword проверяет минимальные требования к master password.
// Из пароля выводится auth key, поэтому короткие пароли не принимаем.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return errEmptyPassword
	case len(password) < MinPasswordLen:
		return errPasswordTooShort
	}

	return nil
}
