package session

import (
	"sync"

	"github.com/jonathan/jobpost-studio/internal/normalize"
	"github.com/jonathan/jobpost-studio/internal/types"
)

// Store holds the session-wide state behind one mutex. The canonical Job is
// replaced wholesale by normalization and by merge, never edited in place, so
// a reader holding a *types.Job always sees a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	version    uint64
	job        *types.Job
	translated map[string]any
	images     []string

	creation    *Flow
	refinement  *Flow
	imaging     *Flow
	translation *Flow
}

// Flows is a snapshot of every lifecycle in the session.
type Flows struct {
	Creation    State `json:"creation"`
	Refinement  State `json:"refinement"`
	Image       State `json:"image"`
	Translation State `json:"translation"`
}

// NewStore returns an empty session.
func NewStore() *Store {
	return &Store{
		creation:    NewFlow(),
		refinement:  NewFlow(),
		imaging:     NewFlow(),
		translation: NewFlow(),
	}
}

// Job returns the canonical Job (nil before the first successful creation)
// and the state version it belongs to.
func (s *Store) Job() (*types.Job, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.job, s.version
}

// TranslatedJob returns the translated view of the job, used verbatim as the
// service returned it.
func (s *Store) TranslatedJob() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translated
}

// Images returns the most recently generated base64 image artifacts.
func (s *Store) Images() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images
}

// FlowStates returns a snapshot of every lifecycle.
func (s *Store) FlowStates() Flows {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Flows{
		Creation:    s.creation.State(),
		Refinement:  s.refinement.State(),
		Image:       s.imaging.State(),
		Translation: s.translation.State(),
	}
}

// BeginCreation dispatches the creation flow.
func (s *Store) BeginCreation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creation.Dispatch()
}

// CompleteCreation normalizes the raw payload into a new canonical Job and
// installs it, syncing the translated view to a copy. Returns false when the
// settlement is stale, in which case the session is untouched.
func (s *Store) CompleteCreation(seq uint64, raw *types.CreateJobResponse) bool {
	job := normalize.Job(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.creation.Succeed(seq, job) {
		return false
	}
	s.job = job
	s.translated = JobRecord(job)
	s.version++
	return true
}

// FailCreation settles the creation flow with an error; the previous Job, if
// any, stays in place.
func (s *Store) FailCreation(seq uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creation.Fail(seq, message)
}

// BeginRefinement dispatches the chat-refinement flow.
func (s *Store) BeginRefinement() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refinement.Dispatch()
}

// CompleteRefinement stores the raw chat payload on the flow and overlays it
// onto the canonical Job. A non-record patch settles the flow but leaves the
// Job unchanged; the returned error is the caller's to log. Returns false for
// a stale settlement.
func (s *Store) CompleteRefinement(seq uint64, patch any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.refinement.Succeed(seq, patch) {
		return false, nil
	}
	merged, err := normalize.Merge(s.job, patch)
	if err != nil {
		return true, err
	}
	s.job = merged
	s.version++
	return true, nil
}

// FailRefinement settles the refinement flow with an error.
func (s *Store) FailRefinement(seq uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refinement.Fail(seq, message)
}

// BeginImage dispatches the image generation flow.
func (s *Store) BeginImage() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imaging.Dispatch()
}

// CompleteImage stores the generated artifacts. Returns false for a stale
// settlement.
func (s *Store) CompleteImage(seq uint64, images []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.imaging.Succeed(seq, images) {
		return false
	}
	s.images = images
	return true
}

// FailImage settles the image flow with an error; previously generated
// artifacts stay available.
func (s *Store) FailImage(seq uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imaging.Fail(seq, message)
}

// BeginTranslation dispatches the translation flow.
func (s *Store) BeginTranslation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translation.Dispatch()
}

// CompleteTranslation replaces the translated view verbatim. Returns false
// for a stale settlement.
func (s *Store) CompleteTranslation(seq uint64, data map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.translation.Succeed(seq, data) {
		return false
	}
	s.translated = data
	return true
}

// FailTranslation settles the translation flow with an error.
func (s *Store) FailTranslation(seq uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translation.Fail(seq, message)
}

// Reset clears the whole session back to its initial state: no Job, no
// translated view, no artifacts, every flow idle. In-flight settlements from
// before the reset are invalidated.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = nil
	s.translated = nil
	s.images = nil
	s.creation.Reset()
	s.refinement.Reset()
	s.imaging.Reset()
	s.translation.Reset()
	s.version++
}

// JobRecord renders a Job as the generic record shape the translation
// endpoint consumes.
func JobRecord(job *types.Job) map[string]any {
	if job == nil {
		return nil
	}
	record := map[string]any{
		"jobTitle":          job.JobTitle,
		"headline":          job.Headline,
		"description":       job.Description,
		"introduction":      job.Introduction,
		"introductionOfJob": job.IntroductionOfJob,
		"tasks":             job.Tasks,
		"qualifications":    job.Qualifications,
		"benefits":          job.Benefits,
		"callToAction":      job.CallToAction,
		"personalAddress":   job.PersonalAddress,
		"voiceScript":       job.VoiceScript,
		"voiceTone":         job.VoiceTone,
		"voiceCTA":          job.VoiceCTA,
		"voiceLocation":     job.VoiceLocation,
		"voiceBenefits":     job.VoiceBenefits,
		"contactDetails": map[string]any{
			"email":          job.ContactDetails.Email,
			"phone":          job.ContactDetails.Phone,
			"address":        job.ContactDetails.Address,
			"website":        job.ContactDetails.Website,
			"contact_person": job.ContactDetails.ContactPerson,
		},
		"imageKeyword": job.ImageKeyword,
		"taglines":     job.Taglines,
		"bodyCopy":     job.BodyCopy,
		"website":      job.Website,
		"closingDate":  job.ClosingDate,
	}
	return record
}
