package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is a hand-wired cdp.Transport stand-in, letting dispatcher
// tests exercise the send/eval contract (§6) without a real browser.
type fakeTransport struct {
	sendResult json.RawMessage
	sendErr    error
	evalResult json.RawMessage
	evalErr    error
}

func (f *fakeTransport) Send(ctx context.Context, method string, params any) (json.RawMessage, error) {
	return f.sendResult, f.sendErr
}

func (f *fakeTransport) Eval(ctx context.Context, expression string) (json.RawMessage, error) {
	return f.evalResult, f.evalErr
}

// Scenario 6 (§8): Fiber fallback.
func TestTakeSnapshot_FiberFallsBackToAX(t *testing.T) {
	tr := &fakeTransport{
		evalResult: json.RawMessage(`{"found": false}`),
		sendResult: json.RawMessage(`{"nodes": [{"nodeId": "1", "role": {"value": "WebArea"}, "name": {"value": "Example"}}]}`),
	}

	out, err := TakeSnapshot(context.Background(), tr, Options{React: true})

	require.NoError(t, err)
	assert.Equal(t, `- WebArea "Example"`, out)
}

func TestTakeSnapshot_FiberParseFailureFallsBackToAX(t *testing.T) {
	tr := &fakeTransport{
		evalResult: json.RawMessage(`not json`),
		sendResult: json.RawMessage(`{"nodes": [{"nodeId": "1", "role": {"value": "WebArea"}, "name": {"value": "Example"}}]}`),
	}

	out, err := TakeSnapshot(context.Background(), tr, Options{React: true})

	require.NoError(t, err)
	assert.Equal(t, `- WebArea "Example"`, out)
}

func TestTakeSnapshot_AXEmptyNodesYieldsSentinel(t *testing.T) {
	tr := &fakeTransport{sendResult: json.RawMessage(`{"nodes": []}`)}

	out, err := TakeSnapshot(context.Background(), tr, Options{})

	require.NoError(t, err)
	assert.Equal(t, "(empty page)", out)
}

func TestTakeSnapshot_AXMissingNodesIsProtocolShapeError(t *testing.T) {
	tr := &fakeTransport{sendResult: json.RawMessage(`{}`)}

	_, err := TakeSnapshot(context.Background(), tr, Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProtocolShape))
}

func TestTakeSnapshot_TransportErrorPropagates(t *testing.T) {
	tr := &fakeTransport{sendErr: errors.New("socket closed")}

	_, err := TakeSnapshot(context.Background(), tr, Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestTakeSnapshot_FiberEmptyTreeYieldsFiberSentinel(t *testing.T) {
	tr := &fakeTransport{evalResult: json.RawMessage(`{"found": true, "tree": []}`)}

	out, err := TakeSnapshot(context.Background(), tr, Options{React: true})

	require.NoError(t, err)
	assert.Equal(t, "(empty)", out)
}

func TestTakeSnapshot_FullSnapshotRendersDOM(t *testing.T) {
	tr := &fakeTransport{
		evalResult: json.RawMessage(`{"tag": "div", "attrs": {"id": "root"}, "children": [{"text": "hi"}]}`),
	}

	out, err := TakeSnapshot(context.Background(), tr, Options{Full: true})

	require.NoError(t, err)
	assert.Equal(t, "- div id=\"root\"\n  - \"hi\"", out)
}

func TestTakeSnapshot_FullSnapshotMissingRootIsProtocolShapeError(t *testing.T) {
	tr := &fakeTransport{evalResult: json.RawMessage(`null`)}

	_, err := TakeSnapshot(context.Background(), tr, Options{Full: true})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProtocolShape))
}

func TestTakeSnapshot_FiberMinifiedWarningPrepended(t *testing.T) {
	tree := []TreeNode{{Name: "A", IsComponent: true}}
	treeJSON, err := json.Marshal(tree)
	require.NoError(t, err)

	tr := &fakeTransport{
		evalResult: json.RawMessage(`{"found": true, "all_minified": true, "tree": ` + string(treeJSON) + `}`),
	}

	out, err := TakeSnapshot(context.Background(), tr, Options{React: true})

	require.NoError(t, err)
	assert.Equal(t, "# Warning: All component names are minified (production build)\n- A", out)
}
