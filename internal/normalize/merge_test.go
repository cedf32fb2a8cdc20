package normalize

import (
	"testing"

	"github.com/jonathan/jobpost-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverlay(t *testing.T) {
	existing := &types.Job{
		JobTitle:    "Baker",
		Description: "Bakes bread",
		Tasks:       []string{"Bake"},
	}

	merged, err := Merge(existing, map[string]any{"jobTitle": "Head Baker"})

	require.NoError(t, err)
	assert.Equal(t, "Head Baker", merged.JobTitle)
	assert.Equal(t, "Bakes bread", merged.Description, "keys absent from the patch are retained")
	assert.Equal(t, []string{"Bake"}, merged.Tasks)
}

func TestMergeDoesNotMutateExisting(t *testing.T) {
	existing := &types.Job{JobTitle: "Baker"}

	_, err := Merge(existing, map[string]any{"jobTitle": "Head Baker"})

	require.NoError(t, err)
	assert.Equal(t, "Baker", existing.JobTitle)
}

func TestMergeWithNoPriorJob(t *testing.T) {
	merged, err := Merge(nil, map[string]any{
		"jobTitle": "Baker",
		"tasks":    []any{"Bake", "Clean"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Baker", merged.JobTitle)
	assert.Equal(t, []string{"Bake", "Clean"}, merged.Tasks)
	assert.Empty(t, merged.Description, "fields absent from the patch stay absent")
}

func TestMergeListFieldShapes(t *testing.T) {
	tests := []struct {
		name     string
		patch    map[string]any
		expected []string
	}{
		{"Delimited string", map[string]any{"tasks": "Bake▶Clean"}, []string{"Bake", "Clean"}},
		{"Items record", map[string]any{"tasks": map[string]any{"items": []any{"Bake"}}}, []string{"Bake"}},
		{"Plain sequence", map[string]any{"tasks": []any{"Bake", " Clean "}}, []string{"Bake", "Clean"}},
	}

	existing := &types.Job{JobTitle: "Baker", Tasks: []string{"Old"}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(existing, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, merged.Tasks)
			assert.Equal(t, "Baker", merged.JobTitle)
		})
	}
}

func TestMergeRejectsNonRecordPatch(t *testing.T) {
	tests := []struct {
		name  string
		patch any
	}{
		{"String patch", "not a record"},
		{"Nil patch", nil},
		{"Sequence patch", []any{"a"}},
		{"Number patch", 12},
	}

	existing := &types.Job{JobTitle: "Baker"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(existing, tt.patch)

			var patchErr *PatchError
			require.ErrorAs(t, err, &patchErr)
			assert.Same(t, existing, merged, "rejected patch leaves the existing job unmodified")
		})
	}
}

func TestMergeUnknownKeysAreIgnored(t *testing.T) {
	existing := &types.Job{JobTitle: "Baker"}

	merged, err := Merge(existing, map[string]any{"no_such_field": "x"})

	require.NoError(t, err)
	assert.Equal(t, "Baker", merged.JobTitle)
}
