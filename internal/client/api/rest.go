// Package api implements the REST transport for the ReWear platform.
// It builds JSON requests against a configured base URL, attaches the
// session bearer token when one is present, and normalizes all failures
// into a single Error type carrying a status marker.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/rewearapp/rewear/internal/logging"
)

// TokenSource exposes read-only access to the stored session token.
// An empty token with a nil error means "no session".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the request surface the auth and admin services are built
// on. Endpoint is a path relative to the configured base URL, e.g.
// "/auth/login". Body, when non-nil, is JSON-encoded.
//
// One attempt per call: no retries, no backoff, no client-side timeout.
// Cancellation and deadlines, if any, come in through ctx.
type Client interface {
	Do(ctx context.Context, method, endpoint string, body any) (*Envelope, error)
}

// RESTClient is the concrete Client speaking the platform's envelope
// protocol over HTTP.
type RESTClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

// NewRESTClient constructs a RESTClient bound to the given base URL and
// token source.
func NewRESTClient(baseURL string, tokens TokenSource, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{},
		log:     log,
	}
}

// Do sends a single JSON request and decodes the response envelope.
//
// Failure mapping:
//   - transport failure or undecodable body -> *Error with StatusNetwork
//   - non-2xx response -> *Error with the server status, the server
//     message (or a generic fallback) and any field errors
//
// A successful call returns the envelope unmodified; asserting Data is
// present is the caller's job (see Envelope.DecodeData).
func (c *RESTClient) Do(ctx context.Context, method, endpoint string, body any) (*Envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return nil, NetworkError(err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Error(ctx, "undecodable response", "method", method, "endpoint", endpoint, "error", err)
		return nil, NetworkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.Message
		if msg == "" {
			msg = "an error occurred"
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg, Fields: env.Errors}
	}

	c.log.Debug(ctx, "request completed", "method", method, "endpoint", endpoint, "status", resp.StatusCode)
	return &env, nil
}
