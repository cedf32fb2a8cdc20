package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/jobpost-studio/internal/types"
)

// DefaultTimeout is the default HTTP request timeout. Generation calls are
// slow; the service renders copy, voice and imagery in one pass.
const DefaultTimeout = 120 * time.Second

// DefaultUserAgent is the user agent string for service requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobpostStudio/1.0)"

// Endpoint paths on the generation service.
const (
	createJobPath  = "/create-job-post/"
	translatePath  = "/translate-to-english/"
	chatStreamPath = "/chat-stream/"
	imagePath      = "/generate-image/"
)

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for talking to the service.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the remote generation service.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// CreateJobPost submits the job-posting inputs as a multipart form and
// returns the raw, un-normalized creation payload.
func (c *Client) CreateJobPost(ctx context.Context, form *types.CreateJobForm) (*types.CreateJobResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fields := []struct {
		name  string
		value string
	}{
		{"company_name", form.CompanyName},
		{"job_title", form.JobTitle},
		{"language", form.Language},
		{"location", form.Location},
		{"tasks", form.Tasks},
		{"benefits", form.Benefits},
		{"contact", form.Contact},
		{"website", form.Website},
		{"closing_date", form.ClosingDate},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, &Error{Endpoint: createJobPath, Message: fallbackMessage, Cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Endpoint: createJobPath, Message: fallbackMessage, Cause: err}
	}

	body, err := c.post(ctx, createJobPath, writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var raw types.CreateJobResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Endpoint: createJobPath, Message: fallbackMessage, Cause: err}
	}
	return &raw, nil
}

// TranslateToEnglish submits a record for translation and returns the
// translated record verbatim.
func (c *Client) TranslateToEnglish(ctx context.Context, record map[string]any) (map[string]any, error) {
	payload, err := json.Marshal(map[string]any{"json_data": record})
	if err != nil {
		return nil, &Error{Endpoint: translatePath, Message: fallbackMessage, Cause: err}
	}

	body, err := c.post(ctx, translatePath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var resp types.TranslateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Endpoint: translatePath, Message: "Translation failed", Cause: err}
	}
	if resp.TranslatedData == nil {
		return nil, &DecodeError{Endpoint: translatePath, Message: "Translation failed"}
	}
	return resp.TranslatedData, nil
}

// RefineChat sends a refinement prompt together with the current job
// description and returns the partial patch record the service answers with.
// The patch's shape is validated downstream; here it stays untyped.
func (c *Client) RefineChat(ctx context.Context, prompt string, job *types.Job) (any, error) {
	description, err := json.Marshal(job)
	if err != nil {
		return nil, &Error{Endpoint: chatStreamPath, Message: fallbackMessage, Cause: err}
	}
	payload, err := json.Marshal(map[string]string{
		"prompt":          prompt,
		"job_description": string(description),
	})
	if err != nil {
		return nil, &Error{Endpoint: chatStreamPath, Message: fallbackMessage, Cause: err}
	}

	body, err := c.post(ctx, chatStreamPath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var patch any
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, &DecodeError{Endpoint: chatStreamPath, Message: fallbackMessage, Cause: err}
	}
	return patch, nil
}

// GenerateImage uploads a template file plus the job's image keyword and
// returns the base64-encoded artifacts. The service usually answers with
// {"images": [...]}, occasionally with a bare array; both are accepted.
func (c *Client) GenerateImage(ctx context.Context, template io.Reader, filename, imageKeyword string) ([]string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("template", filename)
	if err != nil {
		return nil, &Error{Endpoint: imagePath, Message: fallbackMessage, Cause: err}
	}
	if _, err := io.Copy(part, template); err != nil {
		return nil, &Error{Endpoint: imagePath, Message: fallbackMessage, Cause: err}
	}
	if err := writer.WriteField("image_keyword", imageKeyword); err != nil {
		return nil, &Error{Endpoint: imagePath, Message: fallbackMessage, Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Endpoint: imagePath, Message: fallbackMessage, Cause: err}
	}

	body, err := c.post(ctx, imagePath, writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var resp types.ImageResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Images != nil {
		return resp.Images, nil
	}
	var bare []string
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, &DecodeError{Endpoint: imagePath, Message: fallbackMessage, Cause: err}
	}
	return bare, nil
}

// post executes one POST against the service and returns the response body.
// Non-2xx responses become an *Error carrying the body reduced to a display
// string; there is no automatic retry.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, &Error{Endpoint: path, Message: fallbackMessage, Cause: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Endpoint: path, Message: fallbackMessage, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Endpoint: path, StatusCode: resp.StatusCode, Message: fallbackMessage, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Header.Get("Content-Type"), respBody),
			Cause:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return respBody, nil
}
