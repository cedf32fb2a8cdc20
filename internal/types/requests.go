// Package types provides type definitions for structured data used throughout the jobpost-studio system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateJobForm carries the job-posting inputs collected from the UI form.
// The fields are forwarded to the generation service as a multipart form.
type CreateJobForm struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	JobTitle    string `json:"job_title" validate:"required,min=1"`
	Language    string `json:"language,omitempty"`
	Location    string `json:"location,omitempty"`
	Tasks       string `json:"tasks,omitempty"`
	Benefits    string `json:"benefits,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Website     string `json:"website,omitempty"`
	ClosingDate string `json:"closing_date,omitempty"`
}

// RefineRequest represents a chat-refinement request from the UI.
type RefineRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1"`
}

// GenerateImageRequest represents an image generation request. The template
// file itself travels as a multipart part next to this metadata.
type GenerateImageRequest struct {
	ImageKeyword string `json:"image_keyword" validate:"required,min=1"`
}

// Validate validates the CreateJobForm using the validator.
func (f *CreateJobForm) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// Validate validates the RefineRequest using the validator.
func (r *RefineRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateImageRequest using the validator.
func (r *GenerateImageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
