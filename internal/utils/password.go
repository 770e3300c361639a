package utils

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Password policy errors returned by ValidatePasswordPolicy.  Handlers
// surface the message verbatim in 400 responses.
var (
	ErrPasswordLength    = errors.New("password must be 8-16 characters long")
	ErrPasswordUppercase = errors.New("password must include at least one uppercase letter")
	ErrPasswordSpecial   = errors.New("password must include at least one special character")
)

// ValidatePasswordPolicy checks a candidate password against the
// platform policy: 8 to 16 characters, at least one uppercase letter
// and at least one character that is neither a letter nor a digit.
func ValidatePasswordPolicy(plain string) error {
	if len(plain) < 8 || len(plain) > 16 {
		return ErrPasswordLength
	}
	var upper, special bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	if !upper {
		return ErrPasswordUppercase
	}
	if !special {
		return ErrPasswordSpecial
	}
	return nil
}
