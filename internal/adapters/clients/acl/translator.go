package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
)

const maxResponseBody = 8 << 20

// BaseAdapter is the shared plumbing of remote service adapters: JSON
// request encoding and failure mapping.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{client: client, serviceName: serviceName}
}

// ServiceName names the remote service in unavailable errors and health
// checks.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// call sends payload, if any, as JSON. A 2xx body and its headers go back
// to the caller, who closes the body; any other outcome is a domain error.
func (a *BaseAdapter) call(ctx context.Context, method, path string, payload any, operation, entityID string) (io.ReadCloser, http.Header, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: encoding request: %w", operation, err)
		}
		body = encoded
	}

	resp, err := a.client.Send(ctx, method, path, body)
	if err != nil {
		return nil, nil, MapHTTPError(nil, err, a.serviceName, operation, entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer drain(resp.Body)
		return nil, nil, MapHTTPError(resp, nil, a.serviceName, operation, entityID)
	}

	return resp.Body, resp.Header, nil
}

// DecodeResponse decodes a JSON body into a T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("decoding response: no body")
	}
	defer func() { _ = body.Close() }()

	out := new(T)
	if err := json.NewDecoder(io.LimitReader(body, maxResponseBody)).Decode(out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return out, nil
}

// Translator turns one wire record into a domain value. It rejects records
// the domain cannot represent, such as a quote without an id.
type Translator[Wire any, Domain any] func(w *Wire) (*Domain, error)

// TranslateSlice stops at the first record translate rejects.
func TranslateSlice[W any, D any](wire []W, translate Translator[W, D]) ([]D, error) {
	out := make([]D, len(wire))
	for i := range wire {
		d, err := translate(&wire[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = *d
	}

	return out, nil
}

// drain discards what is left of body so the connection can be reused.
func drain(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxResponseBody))
	_ = body.Close()
}
