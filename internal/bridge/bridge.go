// Package bridge samples a page shown in a webview window. Go injects a
// collector script, the page answers with an event carrying each element's
// computed colors, and sampling itself runs in Go over that snapshot.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"pickperfect/internal/logging"
	"pickperfect/internal/palette"
)

// EventSampleResult is emitted by the collector script with a Response.
const EventSampleResult = "palette:sample-result"

var ErrUnknownRequest = errors.New("unknown sampling request")

// Executor runs JavaScript in a page. Wails webview windows satisfy it.
type Executor interface {
	ExecJS(js string)
}

type Response struct {
	RequestID string           `json:"requestId"`
	Title     string           `json:"title,omitempty"`
	URL       string           `json:"url,omitempty"`
	Elements  palette.Snapshot `json:"elements"`
	Error     string           `json:"error,omitempty"`
}

type Bridge struct {
	mu      sync.Mutex
	window  Executor
	target  palette.Target
	pending map[string]chan Response
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Bridge {
	return &Bridge{
		pending: make(map[string]chan Response),
		logger:  logging.OrDiscard(logger),
	}
}

// Attach makes window the active target. A target without an ID gets one.
func (b *Bridge) Attach(window Executor, target palette.Target) palette.Target {
	if target.ID == "" {
		target.ID = uuid.NewString()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.window = window
	b.target = target
	return target
}

// Detach drops targetID if it is still the active target and fails every
// request waiting on it. A newer target stays attached.
func (b *Bridge) Detach(targetID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.window == nil || b.target.ID != targetID {
		return
	}

	b.window = nil
	b.target = palette.Target{}
	for id, ch := range b.pending {
		ch <- Response{RequestID: id, Error: "target window closed"}
		delete(b.pending, id)
	}
}

func (b *Bridge) ActiveTarget(ctx context.Context) (palette.Target, error) {
	if err := ctx.Err(); err != nil {
		return palette.Target{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.window == nil {
		return palette.Target{}, palette.ErrNoActiveTarget
	}
	return b.target, nil
}

// Execute injects the collector into the target window and waits for its
// answer or for ctx to end. It has no timeout of its own.
func (b *Bridge) Execute(ctx context.Context, target palette.Target, sample palette.SampleFunc) ([]palette.ExtractedColor, error) {
	requestID := uuid.NewString()
	responses := make(chan Response, 1)

	b.mu.Lock()
	if b.window == nil || b.target.ID != target.ID {
		b.mu.Unlock()
		return nil, palette.ErrNoActiveTarget
	}
	window := b.window
	b.pending[requestID] = responses
	b.mu.Unlock()

	defer b.forget(requestID)

	b.logger.Debug("injecting collector", "target", target.ID, "request", requestID)
	window.ExecJS(collectorScript(requestID))

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", palette.ErrSamplingFailed, ctx.Err())
	case response := <-responses:
		if response.Error != "" {
			return nil, fmt.Errorf("%w: %s", palette.ErrSamplingFailed, response.Error)
		}
		if response.Elements == nil {
			return nil, fmt.Errorf("%w: page returned no elements", palette.ErrSamplingFailed)
		}

		b.logger.Debug("collector answered",
			"request", requestID,
			"url", response.URL,
			"elements", len(response.Elements),
		)
		return palette.RunSafely(sample, response.Elements)
	}
}

// Resolve hands a collector answer to the request waiting for it. data is
// the raw event payload: a Response, JSON bytes or a decoded JSON value.
func (b *Bridge) Resolve(data any) error {
	response, err := decodeResponse(data)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.pending[response.RequestID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRequest, response.RequestID)
	}
	delete(b.pending, response.RequestID)
	ch <- response
	return nil
}

func (b *Bridge) forget(requestID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, requestID)
}

func decodeResponse(data any) (Response, error) {
	var raw []byte
	switch value := data.(type) {
	case Response:
		return value, nil
	case *Response:
		if value == nil {
			return Response{}, errors.New("decode sample result: nil payload")
		}
		return *value, nil
	case []byte:
		raw = value
	case json.RawMessage:
		raw = value
	case string:
		raw = []byte(value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return Response{}, fmt.Errorf("encode sample result: %w", err)
		}
		raw = encoded
	}

	var response Response
	if err := json.Unmarshal(raw, &response); err != nil {
		return Response{}, fmt.Errorf("decode sample result: %w", err)
	}
	if response.RequestID == "" {
		return Response{}, errors.New("decode sample result: missing request id")
	}
	return response, nil
}
