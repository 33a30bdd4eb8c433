package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"sync"
)

// acceptHeader is sent with every GraphQL request
const acceptHeader = "application/vnd.github.v3+json"

// maxErrorBody bounds how much of a failed response is kept in the error
const maxErrorBody = 512

// apiTransport sets the GitHub headers and turns network errors and
// non-200 statuses into ErrTransport before the GraphQL layer sees them.
// When the request context carries an errorCapture, the raw "errors" array
// of a 200 answer is recorded on it.
type apiTransport struct {
	transport http.RoundTripper
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", acceptHeader)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %s: %s", ErrTransport, resp.Status, body)
	}

	if capture := errorCaptureFrom(req.Context()); capture != nil {
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
		}
		capture.record(body)
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}

type errorCaptureKey struct{}

// errorCapture holds the raw GraphQL errors array of one call
type errorCapture struct {
	mu      sync.Mutex
	payload json.RawMessage
}

func withErrorCapture(ctx context.Context) (context.Context, *errorCapture) {
	capture := &errorCapture{}
	return context.WithValue(ctx, errorCaptureKey{}, capture), capture
}

func errorCaptureFrom(ctx context.Context) *errorCapture {
	capture, _ := ctx.Value(errorCaptureKey{}).(*errorCapture)
	return capture
}

// record keeps the compacted "errors" member of body, if any. Undecodable
// bodies are left to the GraphQL decoder to report.
func (c *errorCapture) record(body []byte) {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return
	}
	if len(envelope.Errors) == 0 || string(envelope.Errors) == "null" {
		return
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, envelope.Errors); err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = compact.Bytes()
}

// errors returns the recorded array, nil when none was seen
func (c *errorCapture) errors() json.RawMessage {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload
}

// debugTransport wraps an HTTP transport and logs requests/responses
type debugTransport struct {
	transport http.RoundTripper
}

func (d *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return nil, fmt.Errorf("failed to dump request: %w", err)
	}
	slog.Debug("graphql request", "dump", string(reqDump))

	resp, err := d.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to dump response: %w", err)
	}
	slog.Debug("graphql response", "dump", string(respDump))

	return resp, nil
}
