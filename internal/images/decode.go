// Package images handles the base64-encoded artifacts the generation service
// returns: decoding them to raw bytes and writing them out as PNG files.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DecodeError reports an artifact that is not valid base64.
type DecodeError struct {
	Index int
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image artifact %d is not valid base64: %v", e.Index, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// DecodeAll decodes every base64 artifact in parallel, preserving order.
// One bad artifact fails the whole batch; partial image sets are not useful
// to the UI.
func DecodeAll(ctx context.Context, artifacts []string) ([][]byte, error) {
	decoded := make([][]byte, len(artifacts))
	g, _ := errgroup.WithContext(ctx)
	for i, artifact := range artifacts {
		g.Go(func() error {
			data, err := base64.StdEncoding.DecodeString(artifact)
			if err != nil {
				return &DecodeError{Index: i, Cause: err}
			}
			decoded[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decoded, nil
}

// FileName returns the download name for the artifact at index (zero-based).
// Files are numbered from 1.
func FileName(index int) string {
	return fmt.Sprintf("generated_image_%d.png", index+1)
}

// SaveAll decodes the artifacts and writes them into dir, creating it if
// needed. It returns the written file paths in artifact order.
func SaveAll(ctx context.Context, artifacts []string, dir string) ([]string, error) {
	decoded, err := DecodeAll(ctx, artifacts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(decoded))
	for i, data := range decoded {
		path := filepath.Join(dir, FileName(i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
