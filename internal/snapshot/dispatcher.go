package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/polzovatel/browsercli/internal/cdp"
)

// fiberMinifiedWarning is the exact literal line §6 requires when a fiber
// probe result reports every component name as minified.
const fiberMinifiedWarning = "# Warning: All component names are minified (production build)"

// TakeSnapshot is the snapshot dispatcher (C6): it selects a mode by
// precedence, drives the transport, reconstructs and transforms the
// resulting tree, and renders it to the bit-stable output format of §6.
func TakeSnapshot(ctx context.Context, transport cdp.Transport, opts Options) (string, error) {
	switch opts.ResolveMode() {
	case ModeMini:
		return takeMiniSnapshot(ctx, transport, opts)
	case ModeFull:
		return takeFullSnapshot(ctx, transport, opts)
	case ModeReact:
		return takeFiberSnapshot(ctx, transport, opts)
	default:
		return takeAXSnapshot(ctx, transport, opts)
	}
}

func takeAXSnapshot(ctx context.Context, transport cdp.Transport, opts Options) (string, error) {
	raw, err := transport.Send(ctx, "Accessibility.getFullAXTree", map[string]any{})
	if err != nil {
		return "", newError(ErrTransport, "ax", err)
	}

	var resp struct {
		Nodes *[]AXNode `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(ErrParse, "ax", err)
	}
	if resp.Nodes == nil {
		return "", newError(ErrProtocolShape, "ax", errors.New("missing nodes field"))
	}

	nodes := *resp.Nodes
	if len(nodes) == 0 {
		return "(empty page)", nil
	}

	roots := buildAXTree(nodes)
	out := formatAX(roots, opts)
	if out == "" {
		return "(empty page)", nil
	}
	return out, nil
}

func takeFiberSnapshot(ctx context.Context, transport cdp.Transport, opts Options) (string, error) {
	script := buildFiberWalkerScript(opts.MaxDepth)
	raw, err := transport.Eval(ctx, script)
	if err != nil {
		return "", newError(ErrTransport, "fiber", err)
	}

	var result FiberProbeResult
	if err := json.Unmarshal(raw, &result); err != nil || !result.Found {
		fallback := opts
		fallback.React = false
		return takeAXSnapshot(ctx, transport, fallback)
	}

	body := formatFiber(result.Tree, opts)
	if body == "" {
		return "(empty)", nil
	}
	if result.AllMinified {
		return fiberMinifiedWarning + "\n" + body, nil
	}
	return body, nil
}

func takeFullSnapshot(ctx context.Context, transport cdp.Transport, opts Options) (string, error) {
	root, err := evalDOMRoot(ctx, transport)
	if err != nil {
		return "", err
	}

	out := formatDOM([]DOMNode{*root}, opts)
	if out == "" {
		return "(empty page)", nil
	}
	return out, nil
}

func takeMiniSnapshot(ctx context.Context, transport cdp.Transport, opts Options) (string, error) {
	root, err := evalDOMRoot(ctx, transport)
	if err != nil {
		return "", err
	}

	collapsed, ok := miniCollapse(*root)
	if !ok {
		return "(empty page)", nil
	}

	var roots []DOMNode
	if collapsed.isFragment() {
		roots = flattenFragments([]DOMNode{collapsed})
	} else {
		roots = []DOMNode{collapsed}
	}

	out := formatMini(roots, opts)
	if out == "" {
		return "(empty page)", nil
	}
	return out, nil
}

func evalDOMRoot(ctx context.Context, transport cdp.Transport) (*DOMNode, error) {
	raw, err := transport.Eval(ctx, domWalkerScript)
	if err != nil {
		return nil, newError(ErrTransport, "dom", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" || trimmed == "" {
		return nil, newError(ErrProtocolShape, "dom", errors.New("missing root"))
	}

	var root DOMNode
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, newError(ErrParse, "dom", err)
	}
	return &root, nil
}
