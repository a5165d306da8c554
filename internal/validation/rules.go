// Package validation holds the contact form field rules in one place. The
// browser form mirrors the same bounds and email pattern in
// web/static/js/contact-form.js; the server side here is authoritative.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field bounds. Lengths count Unicode code points, name is measured after
// trimming, message is measured raw.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 10
	MessageMaxLen = 2000
)

// EmailRegex requires the shape x@y.z with no embedded whitespace.
var EmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Wire-contract error messages. These exact strings are part of the API
// response contract and the handler tests pin them.
const (
	MsgMissingFields = "Missing required fields"
	MsgNameLength    = "Name must be between 2 and 100 characters"
	MsgEmailFormat   = "Please provide a valid email address"
	MsgMessageLength = "Message must be between 10 and 2000 characters"
)

func ValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= NameMinLen && n <= NameMaxLen
}

func ValidEmail(email string) bool {
	return EmailRegex.MatchString(email)
}

func ValidMessage(message string) bool {
	n := utf8.RuneCountInString(message)
	return n >= MessageMinLen && n <= MessageMaxLen
}

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// CheckAll applies every rule independently and reports all violated fields.
// A missing field reports only the missing error for that field; the other
// fields are still checked. This is the aggregate policy the interactive
// client mirrors.
func CheckAll(name, email, message string) FieldErrors {
	errs := FieldErrors{}

	switch {
	case name == "":
		errs["name"] = MsgMissingFields
	case !ValidName(name):
		errs["name"] = MsgNameLength
	}

	switch {
	case email == "":
		errs["email"] = MsgMissingFields
	case !ValidEmail(email):
		errs["email"] = MsgEmailFormat
	}

	switch {
	case message == "":
		errs["message"] = MsgMissingFields
	case !ValidMessage(message):
		errs["message"] = MsgMessageLength
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FirstFailure applies the rules in the server's fixed order (presence of
// all three fields, then name, email, message) and returns the message for
// the first violated rule, or "" when the request is valid. The server is
// not an interactive surface, so one problem at a time is enough.
func FirstFailure(name, email, message string) string {
	if name == "" || email == "" || message == "" {
		return MsgMissingFields
	}
	if !ValidName(name) {
		return MsgNameLength
	}
	if !ValidEmail(email) {
		return MsgEmailFormat
	}
	if !ValidMessage(message) {
		return MsgMessageLength
	}
	return ""
}
