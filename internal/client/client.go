// Package client is the Tastebud API client. Every method is an async
// dispatcher in the store's sense: it dispatches the operation's Request
// action, performs exactly one network call, and then dispatches exactly
// one of the Success or Failure actions. Transport errors never escape a
// dispatcher; they are normalized into the failure payload.
//
// There is no cancellation beyond the passed context: once the call
// settles, its action is applied even if the caller has navigated away.
// A call that never settles leaves the slice's loading flag set; that is
// a documented limitation, not something the client masks.
package client

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

	"github.com/tastebud-app/tastebud/internal/state"
)

// Client dispatches API operations against a Tastebud server and keeps
// the given store in sync with their outcomes.
type Client struct {
	baseURL string
	http    *http.Client
	store   *state.Store
	creds   CredentialStore
}

// New returns a client rooted at baseURL. The credential store is an
// explicit dependency so tests can run against an in-memory one.
func New(baseURL string, store *state.Store, creds CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		creds:   creds,
	}
}

// Store returns the state container this client dispatches into.
func (c *Client) Store() *state.Store {
	return c.store
}

// envelope is the response body shape shared by every endpoint:
// {status: Success|Fail|Error, message, data}.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response carried no data")
	}
	return json.Unmarshal(e.Data, v)
}

// do performs one API call. The returned error value is the normalized
// server error body; a zero value means the call succeeded. Raw
// transport failures are folded into the same shape so callers only
// ever see one error currency.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*envelope, state.APIError) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, state.APIError{Status: "Error", Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, state.APIError{Status: "Error", Message: fmt.Sprintf("build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.creds.GetToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, state.APIError{Status: "Error", Message: fmt.Sprintf("network error: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, state.APIError{Status: "Error", Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, state.APIError{Status: "Error", Message: fmt.Sprintf("decode response: %v", err)}
	}
	return &env, state.APIError{}
}

// normalizeError turns an error response body into an APIError. Bodies
// that are not the documented envelope still produce a populated
// Message so the UI always has something to render.
func normalizeError(status int, raw []byte) state.APIError {
	var apiErr state.APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		if apiErr.Status == "" {
			apiErr.Status = "Error"
		}
		return apiErr
	}
	return state.APIError{
		Status:  "Error",
		Message: fmt.Sprintf("request failed with status %d", status),
	}
}

// uploadImage posts a multipart image to the image-hosting endpoint and
// returns the public URL of the stored object.
func (c *Client) uploadImage(ctx context.Context, filename string, r io.Reader) (string, state.APIError) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("build upload: %v", err)}
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("read image: %v", err)}
	}
	if err := mw.Close(); err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("build upload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/images", &buf)
	if err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.creds.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("network error: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("read response: %v", err)}
	}
	if resp.StatusCode >= 400 {
		return "", normalizeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("decode response: %v", err)}
	}
	var data struct {
		ImageURL string `json:"image_url"`
	}
	if err := env.decode(&data); err != nil {
		return "", state.APIError{Status: "Error", Message: fmt.Sprintf("decode response: %v", err)}
	}
	return data.ImageURL, state.APIError{}
}
