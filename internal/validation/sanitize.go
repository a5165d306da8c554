package validation

import "strings"

// The sanitizer strips the two characters that could change the shape of the
// HTML embedded in the outbound email. It runs only after validation passed
// and is idempotent: clean input comes back unchanged.

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeName removes angle brackets, then trims surrounding whitespace.
func SanitizeName(name string) string {
	return strings.TrimSpace(angleBrackets.Replace(name))
}

// SanitizeEmail trims and lower-cases, giving a case-insensitive identity
// for the reply-to address.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeMessage removes angle brackets and trims the ends. Interior
// whitespace and newlines are preserved; they render as line breaks in the
// composed email body.
func SanitizeMessage(message string) string {
	return strings.TrimSpace(angleBrackets.Replace(message))
}
