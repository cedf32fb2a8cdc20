package normalize

import (
	"testing"

	"github.com/jonathan/jobpost-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestJobEnglishPayload(t *testing.T) {
	raw := &types.CreateJobResponse{
		JobPost: map[string]any{"Job Title": "Baker"},
		Voice:   map[string]any{},
		Image:   map[string]any{},
	}

	job := Job(raw)

	assert.Equal(t, "Baker", job.JobTitle)
	assert.Equal(t, []string{}, job.Tasks, "absent list field must yield an empty slice")
	assert.Equal(t, []string{}, job.Qualifications)
	assert.Equal(t, []string{}, job.Benefits)
}

func TestJobGermanPayload(t *testing.T) {
	raw := &types.CreateJobResponse{
		JobPost: map[string]any{
			"Berufsbezeichnung": "Bäcker",
			"Tasks":             "Bake bread▶Clean oven",
		},
	}

	job := Job(raw)

	assert.Equal(t, "Bäcker", job.JobTitle)
	assert.Equal(t, []string{"Bake bread", "Clean oven"}, job.Tasks)
}

func TestJobDefaults(t *testing.T) {
	job := Job(&types.CreateJobResponse{})

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"jobTitle", job.JobTitle, "No job title available"},
		{"headline", job.Headline, "No headline available"},
		{"description", job.Description, "No description available"},
		{"introduction", job.Introduction, "No introduction available"},
		{"introductionOfJob", job.IntroductionOfJob, "No job introduction available"},
		{"personalAddress", job.PersonalAddress, "No personal address provided"},
		{"callToAction", job.CallToAction, "No call to action provided"},
		{"voiceScript", job.VoiceScript, "No voice script provided"},
		{"voiceTone", job.VoiceTone, "No tone specified"},
		{"voiceCTA", job.VoiceCTA, "No Call to Action specified"},
		{"voiceLocation", job.VoiceLocation, "No location specified"},
		{"voiceBenefits", job.VoiceBenefits, "No benefits specified"},
		{"imageKeyword", job.ImageKeyword, "No image keyword provided"},
		{"website", job.Website, "No website provided"},
		{"closingDate", job.ClosingDate, "No closing date provided"},
		{"contact email", job.ContactDetails.Email, "No email provided"},
		{"contact phone", job.ContactDetails.Phone, "No phone provided"},
		{"contact address", job.ContactDetails.Address, "No address provided"},
		{"contact website", job.ContactDetails.Website, "No website provided"},
		{"contact person", job.ContactDetails.ContactPerson, "No contact person provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestJobNilPayload(t *testing.T) {
	job := Job(nil)

	assert.Equal(t, "No job title available", job.JobTitle)
	assert.Equal(t, []string{}, job.Tasks)
	assert.Nil(t, job.Voice)
	assert.Nil(t, job.JobPost)
}

func TestJobVoiceAndImageSections(t *testing.T) {
	raw := &types.CreateJobResponse{
		Voice: map[string]any{
			"script":   "Join our bakery today",
			"tone":     "warm",
			"cta":      "Apply now",
			"location": "Berlin",
			"benefits": "Fresh bread daily",
			"contact_details": map[string]any{
				"email": "jobs@bakery.example",
				"phone": "+49 30 1234567",
			},
		},
		Image: map[string]any{
			"Headline":      "Bake With Us",
			"image_keyword": "bakery",
			"taglines":      []any{"Rise early", " Knead more "},
			"body_copy":     map[string]any{"header": "Copy", "items": []any{"Line one"}},
			"website":       "bakery.example",
			"Closing_Date":  "2026-09-30",
		},
	}

	job := Job(raw)

	assert.Equal(t, "Join our bakery today", job.VoiceScript)
	assert.Equal(t, "warm", job.VoiceTone)
	assert.Equal(t, "Apply now", job.VoiceCTA)
	assert.Equal(t, "Berlin", job.VoiceLocation)
	assert.Equal(t, "Fresh bread daily", job.VoiceBenefits)

	assert.Equal(t, "jobs@bakery.example", job.ContactDetails.Email)
	assert.Equal(t, "+49 30 1234567", job.ContactDetails.Phone)
	assert.Equal(t, "No address provided", job.ContactDetails.Address,
		"partial contact record still gets sentinels for missing sub-fields")

	assert.Equal(t, "Bake With Us", job.Headline)
	assert.Equal(t, "bakery", job.ImageKeyword)
	assert.Equal(t, []string{"Rise early", "Knead more"}, job.Taglines)
	assert.Equal(t, []string{"Line one"}, job.BodyCopy)
	assert.Equal(t, "bakery.example", job.Website)
	assert.Equal(t, "2026-09-30", job.ClosingDate)
}

func TestJobEchoesRawSections(t *testing.T) {
	raw := &types.CreateJobResponse{
		JobPost: map[string]any{"Job Title": "Baker"},
		Voice:   map[string]any{"script": "hello"},
	}

	job := Job(raw)

	assert.Equal(t, raw.JobPost, job.JobPost)
	assert.Equal(t, raw.Voice, job.Voice)
}

func TestJobIsDeterministic(t *testing.T) {
	raw := &types.CreateJobResponse{
		JobPost: map[string]any{
			"Jobtitel": "Bäcker",
			"Aufgaben": map[string]any{"items": []any{"Backen", "Putzen"}},
		},
		Voice: map[string]any{"tone": "freundlich"},
		Image: map[string]any{"Headline": "Backe mit uns"},
	}

	first := Job(raw)
	second := Job(raw)

	assert.Equal(t, first, second, "normalization must be a pure function of its input")
}
