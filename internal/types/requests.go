package types

import "github.com/go-playground/validator/v10"

// CustomizeRequest represents a request to build a job-tailored resume.
type CustomizeRequest struct {
	JobTitle       string `json:"job_title" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	Template       string `json:"template,omitempty"`
}

// GradeRequest represents a request to grade an interview answer.
type GradeRequest struct {
	Question   string `json:"question" validate:"required,min=1"`
	Answer     string `json:"answer"`
	Role       string `json:"role,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Validate validates the CustomizeRequest using the validator.
func (r *CustomizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GradeRequest using the validator. A missing answer
// is deliberately not a validation failure: grading fails closed with a
// zeroed feedback result instead.
func (r *GradeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
