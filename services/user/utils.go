package user

import (
	"errors"
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"salonify/models"
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[\W_]`)
	phoneRe  = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,19}$`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return errors.New("password must be at least 8 characters long")
	case !upperRe.MatchString(pw):
		return errors.New("password must include at least one uppercase letter")
	case !lowerRe.MatchString(pw):
		return errors.New("password must include at least one lowercase letter")
	case !numberRe.MatchString(pw):
		return errors.New("password must include at least one number")
	case !symbolRe.MatchString(pw):
		return errors.New("password must include at least one symbol")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func validLanguage(lang string) bool {
	return slices.Contains(models.SupportedLanguages, lang)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// passwordFingerprint binds reset tokens to one password hash, so a token
// stops working once the password changes.
func passwordFingerprint(passwordHash string) string {
	sum := hashString(passwordHash)
	return sum[:16]
}
