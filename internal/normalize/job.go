package normalize

import (
	"github.com/jonathan/jobpost-studio/internal/types"
)

// Job folds a raw creation payload into the canonical Job entity. Each of the
// three sections is optional; a missing section behaves like an empty record.
// The fold is pure and idempotent: the same raw payload always produces an
// equal Job, and construction is all-or-nothing.
func Job(raw *types.CreateJobResponse) *types.Job {
	var jobPost, voice, image map[string]any
	if raw != nil {
		jobPost = raw.JobPost
		voice = raw.Voice
		image = raw.Image
	}

	return &types.Job{
		JobTitle:          Resolve(jobPost, jobTitleKeys, defaultJobTitle),
		Headline:          Resolve(image, []string{"Headline"}, defaultHeadline),
		Description:       Resolve(jobPost, []string{"Description"}, defaultDescription),
		Introduction:      Resolve(jobPost, introductionKeys, defaultIntroduction),
		IntroductionOfJob: Resolve(jobPost, introductionOfJobKeys, defaultIntroductionOfJob),
		PersonalAddress:   Resolve(jobPost, personalAddressKeys, defaultPersonalAddress),
		CallToAction:      Resolve(jobPost, []string{"Call to Action"}, defaultCallToAction),

		Tasks:          ParseList(resolveRaw(jobPost, tasksKeys)),
		Qualifications: ParseList(resolveRaw(jobPost, qualificationsKeys)),
		Benefits:       ParseList(resolveRaw(jobPost, benefitsKeys)),

		VoiceScript:    Resolve(voice, []string{"script"}, defaultVoiceScript),
		VoiceTone:      Resolve(voice, []string{"tone"}, defaultVoiceTone),
		VoiceCTA:       Resolve(voice, []string{"cta"}, defaultVoiceCTA),
		VoiceLocation:  Resolve(voice, []string{"location"}, defaultVoiceLocation),
		VoiceBenefits:  Resolve(voice, []string{"benefits"}, defaultVoiceBenefits),
		ContactDetails: contactDetails(voice),

		ImageKeyword: Resolve(image, []string{"image_keyword"}, defaultImageKeyword),
		Taglines:     ParseList(resolveRaw(image, []string{"taglines"})),
		BodyCopy:     ParseList(resolveRaw(image, []string{"body_copy"})),
		Website:      Resolve(image, []string{"website"}, defaultWebsite),
		ClosingDate:  Resolve(image, []string{"Closing_Date"}, defaultClosingDate),

		Voice:   voice,
		JobPost: jobPost,
	}
}

// contactDetails extracts the contact block from the voice section. Sub-fields
// are resolved individually so a partial contact record still yields sentinel
// strings for whatever it lacks.
func contactDetails(voice map[string]any) types.ContactDetails {
	contact, _ := voice["contact_details"].(map[string]any)
	return types.ContactDetails{
		Email:         Resolve(contact, []string{"email"}, defaultEmail),
		Phone:         Resolve(contact, []string{"phone"}, defaultPhone),
		Address:       Resolve(contact, []string{"address"}, defaultAddress),
		Website:       Resolve(contact, []string{"website"}, defaultWebsite),
		ContactPerson: Resolve(contact, []string{"contact_person"}, defaultContactPerson),
	}
}
