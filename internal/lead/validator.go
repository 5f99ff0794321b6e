package lead

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// MaxMessageLength is the limit of the optional message, in UTF-16 code
// units as counted by the browser input
const MaxMessageLength = 300

// Validation messages
const (
	MsgNameRequired   = "Full Name is required"
	MsgEmailRequired  = "Email is required"
	MsgEmailInvalid   = "Enter a valid email address"
	MsgPhoneRequired  = "Phone number is required"
	MsgPhoneInvalid   = "Enter a valid 10-digit phone number"
	MsgMessageTooLong = "Message should not exceed 300 characters"
	MsgPlanRequired   = "Please select a plan"
	MsgPlanInvalid    = "Select a valid plan"
)

var (
	// Each part excludes the whitespace a browser treats as \s: ASCII
	// whitespace, vertical tab, Unicode separators and the BOM.
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateField returns the error message for value in field f, or "" when
// the value is acceptable. The plan selection has no rule here; see
// ValidateSelection.
func ValidateField(f Field, value string) string {
	switch f {
	case FieldName:
		if isBlank(value) {
			return MsgNameRequired
		}
	case FieldEmail:
		if isBlank(value) {
			return MsgEmailRequired
		}
		if !emailRegex.MatchString(value) {
			return MsgEmailInvalid
		}
	case FieldPhone:
		if isBlank(value) {
			return MsgPhoneRequired
		}
		if !phoneRegex.MatchString(value) {
			return MsgPhoneInvalid
		}
	case FieldMessage:
		if utf16Len(value) > MaxMessageLength {
			return MsgMessageTooLong
		}
	}
	return ""
}

// ValidateSelection enforces the required plan dropdown
func ValidateSelection(service string) string {
	if service == "" {
		return MsgPlanRequired
	}
	if !IsPlan(service) {
		return MsgPlanInvalid
	}
	return ""
}

// ValidateForm runs the full submit pass over s
func ValidateForm(s FormState) ErrorState {
	var errs ErrorState
	for _, f := range validatedFields {
		errs.Set(f, ValidateField(f, s.Get(f)))
	}
	errs.Service = ValidateSelection(s.Service)
	return errs
}

// isSpace matches the whitespace set stripped by a browser's String.trim
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Zs)
}

func isBlank(value string) bool {
	return strings.TrimFunc(value, isSpace) == ""
}

func utf16Len(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}
