package normalize

import (
	"encoding/json"

	"github.com/jonathan/jobpost-studio/internal/types"
)

// listFieldNames are the Job keys whose patch values may arrive in any of the
// list shapes ParseList accepts. They are re-parsed before the overlay so a
// delimiter-joined string from the chat flow lands as a proper slice.
var listFieldNames = []string{"tasks", "qualifications", "benefits", "taglines", "bodyCopy"}

// Merge overlays a partial patch record onto an existing Job. Every key
// present in the patch replaces the same key of the existing Job; all other
// keys are retained unchanged. A nil existing Job adopts the patch as-is. A
// patch that is not record-shaped is rejected: the existing Job is returned
// unmodified together with a *PatchError for the caller to log.
func Merge(existing *types.Job, patch any) (*types.Job, error) {
	fields, ok := patch.(map[string]any)
	if !ok || fields == nil {
		return existing, &PatchError{Message: "payload is not a record"}
	}

	base := make(map[string]any, len(fields))
	if existing != nil {
		encoded, err := json.Marshal(existing)
		if err != nil {
			return existing, &PatchError{Message: "existing job not encodable", Cause: err}
		}
		if err := json.Unmarshal(encoded, &base); err != nil {
			return existing, &PatchError{Message: "existing job not decodable", Cause: err}
		}
	}

	for key, value := range fields {
		base[key] = value
	}
	for _, name := range listFieldNames {
		if _, present := fields[name]; present {
			base[name] = ParseList(base[name])
		}
	}

	encoded, err := json.Marshal(base)
	if err != nil {
		return existing, &PatchError{Message: "merged job not encodable", Cause: err}
	}
	var merged types.Job
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return existing, &PatchError{Message: "patch fields do not fit the job shape", Cause: err}
	}
	return &merged, nil
}
