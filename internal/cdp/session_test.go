package cdp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRaw struct {
	result interface{}
	err    error
	lastMethod string
	lastParams map[string]interface{}
}

func (f *fakeRaw) Send(method string, params map[string]interface{}) (interface{}, error) {
	f.lastMethod = method
	f.lastParams = params
	return f.result, f.err
}

func TestSession_SendMarshalsResult(t *testing.T) {
	raw := &fakeRaw{result: map[string]interface{}{"nodes": []interface{}{}}}
	s := NewSession(raw, zerolog.Nop())

	out, err := s.Send(context.Background(), "Accessibility.getFullAXTree", map[string]any{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": []}`, string(out))
	assert.Equal(t, "Accessibility.getFullAXTree", raw.lastMethod)
}

func TestSession_EvalPrefersValue(t *testing.T) {
	raw := &fakeRaw{result: map[string]interface{}{
		"result": map[string]interface{}{"value": "hello"},
	}}
	s := NewSession(raw, zerolog.Nop())

	out, err := s.Eval(context.Background(), "document.title")

	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(out))
}

func TestSession_EvalFallsBackToDescription(t *testing.T) {
	desc := "function () { ... }"
	raw := &fakeRaw{result: map[string]interface{}{
		"result": map[string]interface{}{"description": desc},
	}}
	s := NewSession(raw, zerolog.Nop())

	out, err := s.Eval(context.Background(), "window.fn")

	require.NoError(t, err)
	var got string
	assert.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, desc, got)
}

func TestSession_EvalReturnsNullWhenNeitherPresent(t *testing.T) {
	raw := &fakeRaw{result: map[string]interface{}{"result": map[string]interface{}{}}}
	s := NewSession(raw, zerolog.Nop())

	out, err := s.Eval(context.Background(), "undefined")

	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestSession_SendWrapsUnderlyingError(t *testing.T) {
	raw := &fakeRaw{err: assertError("boom")}
	s := NewSession(raw, zerolog.Nop())

	_, err := s.Send(context.Background(), "Page.navigate", map[string]any{"url": "https://example.com"})

	require.Error(t, err)
}

type assertError string

func (e assertError) Error() string { return string(e) }
