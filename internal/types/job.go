// Package types provides type definitions for structured data used throughout the jobpost-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job is the canonical job post entity rendered by every consumer, independent
// of which raw shape or language the generation service returned. Scalar
// fields are never empty: normalization substitutes a human-readable sentinel
// when the source data lacks a value.
type Job struct {
	JobTitle          string   `json:"jobTitle"`
	Headline          string   `json:"headline"`
	Description       string   `json:"description"`
	Introduction      string   `json:"introduction"`
	IntroductionOfJob string   `json:"introductionOfJob"`
	Tasks             []string `json:"tasks"`
	Qualifications    []string `json:"qualifications"`
	Benefits          []string `json:"benefits"`
	CallToAction      string   `json:"callToAction"`
	PersonalAddress   string   `json:"personalAddress"`

	VoiceScript    string         `json:"voiceScript"`
	VoiceTone      string         `json:"voiceTone"`
	VoiceCTA       string         `json:"voiceCTA"`
	VoiceLocation  string         `json:"voiceLocation"`
	VoiceBenefits  string         `json:"voiceBenefits"`
	ContactDetails ContactDetails `json:"contactDetails"`

	ImageKeyword string   `json:"imageKeyword"`
	Taglines     []string `json:"taglines"`
	BodyCopy     []string `json:"bodyCopy"`
	Website      string   `json:"website"`
	ClosingDate  string   `json:"closingDate"`

	// Raw sections echoed for traceability; never normalized.
	Voice   map[string]any `json:"voice,omitempty"`
	JobPost map[string]any `json:"job_post,omitempty"`
}

// ContactDetails holds the contact block extracted from the voice section.
type ContactDetails struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	ContactPerson string `json:"contact_person"`
}

// CreateJobResponse is the raw creation payload from the generation service.
// Each section is optional and carries service-defined keys whose spellings
// vary by language and prompt variant, so sections stay untyped maps until
// normalization folds them into a Job.
type CreateJobResponse struct {
	JobPost map[string]any `json:"job_post"`
	Voice   map[string]any `json:"voice"`
	Image   map[string]any `json:"image"`
}

// TranslateResponse is the payload of the translate-to-english endpoint.
type TranslateResponse struct {
	TranslatedData map[string]any `json:"translated_data"`
}

// ImageResponse is the payload of the image generation endpoint.
type ImageResponse struct {
	Images []string `json:"images"`
}
