package validators

import (
	"regexp"
	"strings"
)

// emailPattern is a deliberately lax address check: a local part of
// [A-Za-z0-9._-], "@", a domain of [A-Za-z0-9.-] and a 2-4 letter TLD.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// DefaultEmailDomains are the organizational domains accepted when no
// allow-list is configured.
var DefaultEmailDomains = []string{"ucn.cl", "alumnos.ucn.cl", "disc.ucn.cl", "ce.ucn.cl"}

// EmailValidator checks e-mail addresses against [emailPattern] and an
// allow-list of domains. The zero value rejects every address.
type EmailValidator struct {
	allowedDomains map[string]struct{}
}

// NewEmailValidator returns an EmailValidator accepting only addresses whose
// domain (the part after "@") equals one of domains exactly.
func NewEmailValidator(domains []string) (*EmailValidator, error) {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			allowed[d] = struct{}{}
		}
	}

	if len(allowed) == 0 {
		return nil, ErrNoEmailDomains
	}

	return &EmailValidator{allowedDomains: allowed}, nil
}

// IsValid reports whether email passes both the format check and the
// domain allow-list.
func (v *EmailValidator) IsValid(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}

	_, domain, _ := strings.Cut(email, "@")
	_, ok := v.allowedDomains[domain]
	return ok
}
