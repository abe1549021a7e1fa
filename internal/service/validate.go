package service

import (
	"net/mail"
	"strings"
)

// normalizeEmail validates and canonicalizes a submitted email address.
// Returns ErrInvalid for anything net/mail will not parse as a bare address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > 254 {
		return "", ErrInvalid
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalid
	}
	if !strings.Contains(strings.SplitN(email, "@", 2)[1], ".") {
		return "", ErrInvalid
	}
	return email, nil
}
