package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/jobpost-studio/internal/generator"
	"github.com/jonathan/jobpost-studio/internal/schemas"
	"github.com/jonathan/jobpost-studio/internal/session"
	"github.com/jonathan/jobpost-studio/internal/types"
)

// maxTemplateSize caps the uploaded image template at 10 MB.
const maxTemplateSize = 10 << 20

// handleCreateJob collects the form inputs, submits them to the generation
// service and installs the normalized job in the session.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTemplateSize); err != nil {
		if err := r.ParseForm(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid form data")
			return
		}
	}

	form := &types.CreateJobForm{
		CompanyName: r.FormValue("company_name"),
		JobTitle:    r.FormValue("job_title"),
		Language:    r.FormValue("language"),
		Location:    r.FormValue("location"),
		Tasks:       r.FormValue("tasks"),
		Benefits:    r.FormValue("benefits"),
		Contact:     r.FormValue("contact"),
		Website:     r.FormValue("website"),
		ClosingDate: r.FormValue("closing_date"),
	}
	if err := form.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Company name and job title are required")
		return
	}

	seq := s.store.BeginCreation()

	raw, err := s.generator.CreateJobPost(r.Context(), form)
	if err != nil {
		log.Printf("Create job failed: %v", err)
		s.store.FailCreation(seq, generator.DisplayMessage(err))
		s.errorResponse(w, HTTPStatus(err), generator.DisplayMessage(err))
		return
	}

	if !s.store.CompleteCreation(seq, raw) {
		// A newer dispatch or a reset superseded this request.
		s.errorResponse(w, http.StatusConflict, "Request superseded")
		return
	}

	job, _ := s.store.Job()
	s.jsonResponse(w, http.StatusOK, job)
}

// handleCurrentJob returns the canonical job in the session.
func (s *Server) handleCurrentJob(w http.ResponseWriter, _ *http.Request) {
	job, version := s.store.Job()
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "No job post available")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job":     job,
		"version": version,
	})
}

// handleTranslatedJob returns the translated view of the job.
func (s *Server) handleTranslatedJob(w http.ResponseWriter, _ *http.Request) {
	translated := s.store.TranslatedJob()
	if translated == nil {
		s.errorResponse(w, http.StatusNotFound, "No job post available")
		return
	}
	s.jsonResponse(w, http.StatusOK, translated)
}

// handleRefine sends a chat prompt to the service and overlays the partial
// record it answers with onto the canonical job.
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	var req types.RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	job, _ := s.store.Job()
	if job == nil {
		s.errorResponse(w, HTTPStatus(&ErrNoJob{}), "Please create a job post first!")
		return
	}

	seq := s.store.BeginRefinement()

	patch, err := s.generator.RefineChat(r.Context(), req.Prompt, job)
	if err != nil {
		log.Printf("Refine failed: %v", err)
		s.store.FailRefinement(seq, generator.DisplayMessage(err))
		s.errorResponse(w, HTTPStatus(err), generator.DisplayMessage(err))
		return
	}

	// Shape problems are logged, not fatal; the merge rejects bad patches.
	if err := schemas.ValidatePatch(patch); err != nil {
		log.Printf("Warning: refinement patch failed schema validation: %v", err)
	}

	settled, mergeErr := s.store.CompleteRefinement(seq, patch)
	if !settled {
		s.errorResponse(w, http.StatusConflict, "Request superseded")
		return
	}
	if mergeErr != nil {
		log.Printf("Refinement patch not applied: %v", mergeErr)
	}

	job, _ = s.store.Job()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applied": mergeErr == nil,
		"job":     job,
	})
}

// handleTranslate submits the canonical job for translation and stores the
// translated view verbatim.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	job, _ := s.store.Job()
	if job == nil {
		s.errorResponse(w, HTTPStatus(&ErrNoJob{}), "Please create a job post first!")
		return
	}

	seq := s.store.BeginTranslation()

	translated, err := s.generator.TranslateToEnglish(r.Context(), session.JobRecord(job))
	if err != nil {
		log.Printf("Translation failed: %v", err)
		s.store.FailTranslation(seq, generator.DisplayMessage(err))
		s.errorResponse(w, HTTPStatus(err), generator.DisplayMessage(err))
		return
	}

	if !s.store.CompleteTranslation(seq, translated) {
		s.errorResponse(w, http.StatusConflict, "Request superseded")
		return
	}

	s.jsonResponse(w, http.StatusOK, translated)
}

// handleGenerateImage uploads the template file plus the job's image keyword
// and stores the returned artifacts.
func (s *Server) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTemplateSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Template file and job image keyword are required")
		return
	}

	file, header, err := r.FormFile("template")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Template file and job image keyword are required")
		return
	}
	defer func() { _ = file.Close() }()

	req := &types.GenerateImageRequest{ImageKeyword: r.FormValue("image_keyword")}
	if req.ImageKeyword == "" {
		// Fall back to the keyword the creation payload carried.
		if job, _ := s.store.Job(); job != nil {
			req.ImageKeyword = job.ImageKeyword
		}
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Template file and job image keyword are required")
		return
	}

	seq := s.store.BeginImage()

	images, err := s.generator.GenerateImage(r.Context(), file, header.Filename, req.ImageKeyword)
	if err != nil {
		log.Printf("Image generation failed: %v", err)
		s.store.FailImage(seq, generator.DisplayMessage(err))
		s.errorResponse(w, HTTPStatus(err), generator.DisplayMessage(err))
		return
	}

	if !s.store.CompleteImage(seq, images) {
		s.errorResponse(w, http.StatusConflict, "Request superseded")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ImageResponse{Images: images})
}

// handleListImages returns the most recently generated artifacts.
func (s *Server) handleListImages(w http.ResponseWriter, _ *http.Request) {
	images := s.store.Images()
	if images == nil {
		images = []string{}
	}
	s.jsonResponse(w, http.StatusOK, types.ImageResponse{Images: images})
}

// handleFlows returns a snapshot of every request lifecycle.
func (s *Server) handleFlows(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.FlowStates())
}

// handleReset clears the session back to its initial state.
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}
