package cdp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// cdpSession is the subset of playwright.CDPSession this package depends
// on. playwright-go's CDPSession.Send already speaks the method/params/
// result shape CDP calls need, so it is a natural carrier for the
// Transport this package exposes, without hand-rolling a websocket client.
type cdpSession interface {
	Send(method string, params map[string]interface{}) (interface{}, error)
}

// Session adapts a playwright CDP session into a cdp.Transport. Multiple
// concurrent callers are serialized with a mutex, satisfying the spec's
// requirement that the transport layer (not the snapshot engine) serialize
// concurrent snapshot calls against the same page.
type Session struct {
	mu   sync.Mutex
	raw  cdpSession
	log  zerolog.Logger
}

// NewSession wraps an already-attached playwright CDP session.
func NewSession(raw cdpSession, log zerolog.Logger) *Session {
	return &Session{raw: raw, log: log}
}

// Send implements Transport.
func (s *Session) Send(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := toParamsMap(params)
	if err != nil {
		return nil, fmt.Errorf("cdp: encode params for %s: %w", method, err)
	}

	s.mu.Lock()
	result, err := s.raw.Send(method, p)
	s.mu.Unlock()

	s.log.Trace().Str("method", method).Interface("params", params).Err(err).Msg("cdp send")
	if err != nil {
		return nil, fmt.Errorf("cdp: %s: %w", method, err)
	}

	b, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("cdp: marshal %s result: %w", method, err)
	}
	return b, nil
}

// Eval implements Transport: it sends Runtime.evaluate with
// returnByValue=true and extracts result.value, falling back to
// result.description as a JSON string, else JSON null — exactly the
// precedence the spec's external-interfaces section describes.
func (s *Session) Eval(ctx context.Context, expression string) (json.RawMessage, error) {
	raw, err := s.Send(ctx, "Runtime.evaluate", map[string]any{
		"expression":   expression,
		"returnByValue": true,
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Result struct {
			Value       json.RawMessage `json:"value"`
			Description *string         `json:"description"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("cdp: decode eval envelope: %w", err)
	}

	if len(envelope.Result.Value) > 0 {
		return envelope.Result.Value, nil
	}
	if envelope.Result.Description != nil {
		b, err := json.Marshal(*envelope.Result.Description)
		if err != nil {
			return nil, fmt.Errorf("cdp: marshal description: %w", err)
		}
		return b, nil
	}
	return json.RawMessage("null"), nil
}

func toParamsMap(params any) (map[string]interface{}, error) {
	if params == nil {
		return map[string]interface{}{}, nil
	}
	if m, ok := params.(map[string]interface{}); ok {
		return m, nil
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
