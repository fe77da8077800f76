package user

import "strings"

// NormalizeEmail lowercases an address and strips dots from the local part,
// so Jane.Doe@gmail.com and janedoe@gmail.com resolve to the same account.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}
	return strings.ReplaceAll(email[:at], ".", "") + email[at:]
}

// EmailAllowed checks an address against the registration allow-list. An
// empty list means registration is open to everyone.
func EmailAllowed(email string, allowlist []string) bool {
	if len(allowlist) == 0 {
		return true
	}
	normalized := NormalizeEmail(email)
	for _, allowed := range allowlist {
		if NormalizeEmail(allowed) == normalized {
			return true
		}
	}
	return false
}

// ParseAllowlist splits a comma separated allow-list, typically the
// ALLOWED_EMAILS environment variable. Blank entries are ignored.
func ParseAllowlist(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var emails []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			emails = append(emails, entry)
		}
	}
	return emails
}
