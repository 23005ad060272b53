package service

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

const (
	maxUsernameLen      = 50
	maxEmailLen         = 50
	minPasswordLen      = 8
	maxLoginPasswordLen = 30
)

// ValidatePassword applies the registration password policy. The checks
// run in a fixed order and only the first failure is reported.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return invalid("password", "Password must be at least 8 characters long")
	}
	if allLower(password) || allUpper(password) {
		return invalid("password", "Password must contain both uppercase and lowercase letters")
	}
	if allAlnum(password) {
		return invalid("password", "Password must include at least one special character (e.g., !@#$%)")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return invalid("password", "Password must include at least one uppercase letter")
	}
	return nil
}

// allLower is true when s has at least one cased letter and none of them
// are upper case. allUpper is the mirror image.
func allLower(s string) bool {
	return strings.ContainsFunc(s, isCased) && !strings.ContainsFunc(s, unicode.IsUpper)
}

func allUpper(s string) bool {
	return strings.ContainsFunc(s, isCased) && !strings.ContainsFunc(s, unicode.IsLower)
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func allAlnum(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ValidateEmail accepts a bare address of at most 50 characters.
func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email", "Field required")
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return invalid("email", "String should have at most 50 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return invalid("email", "value is not a valid email address")
	}
	if _, domainPart, _ := strings.Cut(email, "@"); !strings.Contains(domainPart, ".") {
		return invalid("email", "value is not a valid email address: The part after the @-sign is not valid.")
	}
	return nil
}

func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n == 0 {
		return invalid("username", "Field required")
	}
	if n > maxUsernameLen {
		return invalid("username", "String should have at most 50 characters")
	}
	return nil
}

// ValidateLogin only bounds the field sizes; the credentials themselves are
// checked against the store.
func ValidateLogin(username, password string) error {
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return invalid("username", "String should have at most 50 characters")
	}
	if utf8.RuneCountInString(password) > maxLoginPasswordLen {
		return invalid("password", "String should have at most 30 characters")
	}
	return nil
}

func validateContent(content string) error {
	if utf8.RuneCountInString(content) > domain.MaxTaskContent {
		return invalid("content", "String should have at most 500 characters")
	}
	return nil
}
