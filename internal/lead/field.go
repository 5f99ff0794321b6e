package lead

import (
	"fmt"
	"strings"
)

// Field identifies one input of the demo-request form
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldMessage Field = "message"
)

var fields = []Field{FieldName, FieldEmail, FieldPhone, FieldService, FieldMessage}

// validatedFields are the fields with a Validator rule, in submit order
var validatedFields = []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}

// Fields returns every form field in display order
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField maps a form input name to a Field
func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(s))
	for _, known := range fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	return string(f)
}

// Label is the human-readable caption shown next to the input
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldEmail:
		return "Email Address"
	case FieldPhone:
		return "Phone Number"
	case FieldService:
		return "Choose Your Plan"
	case FieldMessage:
		return "Additional Message"
	default:
		return string(f)
	}
}

// FormState holds the current value of every form field
type FormState struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Get returns the value stored for f
func (s FormState) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldService:
		return s.Service
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Set stores value for f; unknown fields are ignored
func (s *FormState) Set(f Field, value string) {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldService:
		s.Service = value
	case FieldMessage:
		s.Message = value
	}
}

// Record builds the payload sent to the Gateway
func (s FormState) Record() SubmissionRecord {
	return SubmissionRecord(s)
}

// ErrorState holds per-field validation messages. An empty string means valid.
type ErrorState struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (e ErrorState) Get(f Field) string {
	return FormState(e).Get(f)
}

func (e *ErrorState) Set(f Field, msg string) {
	(*FormState)(e).Set(f, msg)
}

// Empty reports whether no field carries an error
func (e ErrorState) Empty() bool {
	return e == ErrorState{}
}

// Failing returns the fields with a non-empty message, in form order
func (e ErrorState) Failing() []Field {
	var out []Field
	for _, f := range fields {
		if e.Get(f) != "" {
			out = append(out, f)
		}
	}
	return out
}

// SubmissionRecord is the validated payload inserted by a Gateway
type SubmissionRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}
