package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedash/pkg/messages"
	"time"

	"github.com/valyala/fasthttp"
)

// Envelope is the response wrapper of the backend.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// errorBody is the shape of non 2xx responses.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// Limiter gates outgoing requests.
type Limiter interface {
	Wait(ctx context.Context) error
}

// HTTPClient performs JSON GET requests.
type HTTPClient struct {
	client  *fasthttp.Client
	limiter Limiter
}

// NewHTTPClient creates a pooled client. A nil limiter disables rate limiting.
func NewHTTPClient(timeout time.Duration, limiter Limiter) *HTTPClient {
	return &HTTPClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		limiter: limiter,
	}
}

// response is a copy of the parts of a fasthttp response used by the callers.
type response struct {
	status int
	body   []byte
}

// do runs a GET on the url and returns the status and a copy of the body.
func (c *HTTPClient) do(ctx context.Context, url string) (*response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return &response{status: resp.StatusCode(), body: body}, nil
}

// GetJSON decodes a plain JSON body, used for Data Dragon.
func GetJSON[T any](ctx context.Context, c *HTTPClient, url string) (T, error) {
	var result T

	resp, err := c.do(ctx, url)
	if err != nil {
		return result, err
	}

	if resp.status != fasthttp.StatusOK {
		return result, fmt.Errorf(messages.BadStatusCodeMsg, resp.status, url)
	}

	if err := json.Unmarshal(resp.body, &result); err != nil {
		return result, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return result, nil
}

// GetEnvelope calls a backend endpoint and unwraps the envelope.
// Every failure is returned as an *APIError tagged with op and key.
func GetEnvelope[T any](ctx context.Context, c *HTTPClient, op, key, url string) (T, error) {
	var zero T

	resp, err := c.do(ctx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return zero, err
		}
		return zero, &APIError{Op: op, Key: key, Kind: KindTransient, Message: messages.BackendFailedMsg, Err: err}
	}

	if resp.status < 200 || resp.status >= 300 {
		return zero, &APIError{
			Op:      op,
			Key:     key,
			Status:  resp.status,
			Kind:    kindForStatus(resp.status),
			Message: statusMessage(resp),
		}
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(resp.body, &envelope); err != nil {
		return zero, &APIError{Op: op, Key: key, Status: resp.status, Kind: KindTransient, Message: messages.FailedToParseMsg, Err: err}
	}

	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = messages.BackendFailedMsg
		}
		return zero, &APIError{Op: op, Key: key, Status: resp.status, Kind: KindTransient, Message: msg}
	}

	return envelope.Data, nil
}

// statusMessage extracts the backend error detail, falling back to the status text.
func statusMessage(resp *response) string {
	var body errorBody
	if err := json.Unmarshal(resp.body, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("%s: %d %s", messages.BackendFailedMsg, resp.status, fasthttp.StatusMessage(resp.status))
}
