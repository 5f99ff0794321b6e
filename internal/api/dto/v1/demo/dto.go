package demo

import "medisync/internal/lead"

// DemoRequest represents a "Book A Demo" form submission
type DemoRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Service        string `json:"service"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

// FormState converts the request body into form values
func (r DemoRequest) FormState() lead.FormState {
	return lead.FormState{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}
}

// DemoResponse represents the response after submitting the form
type DemoResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ValidateFieldRequest asks for the validation message of a single input
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required,leadfield"`
	Value string `json:"value"`
}

// ValidateFieldResponse carries the message for one input; empty means valid
type ValidateFieldResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
	Valid bool   `json:"valid"`
}

// PlanResponse describes one selectable plan
type PlanResponse struct {
	Plan     string `json:"plan"`
	Audience string `json:"audience"`
	Label    string `json:"label"`
}
