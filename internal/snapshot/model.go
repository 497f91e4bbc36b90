package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KV is a single key/value pair of an ordered JSON object, used wherever
// the spec requires source-supplied key order to survive into rendering
// (props and html_attrs) — a plain Go map would discard it.
type KV struct {
	Key   string
	Value json.RawMessage
}

// OrderedMap is a JSON object decoded preserving key order. Iteration
// order matches the order keys appeared in the source document.
type OrderedMap []KV

// UnmarshalJSON preserves key order by token-scanning the object instead
// of decoding into a Go map.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("snapshot: expected JSON object, got %v", tok)
	}
	var out OrderedMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("snapshot: expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		out = append(out, KV{Key: key, Value: raw})
	}
	*m = out
	return nil
}

// MarshalJSON re-emits the object preserving recorded key order.
func (m OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		if len(kv.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(kv.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the raw value for key, if present.
func (m OrderedMap) Get(key string) (json.RawMessage, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m OrderedMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// BoxRect is a node's layout rectangle as reported by the page.
type BoxRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TreeNode is the unified fiber/host node shape (§3 "Tree node").
type TreeNode struct {
	Name        string      `json:"name"`
	IsComponent bool        `json:"is_component"`
	Props       OrderedMap  `json:"props,omitempty"`
	RefID       *string     `json:"ref_id,omitempty"`
	BoxRect     *BoxRect    `json:"box_rect,omitempty"`
	Role        *string     `json:"role,omitempty"`
	AriaName    *string     `json:"aria_name,omitempty"`
	Tag         *string     `json:"tag,omitempty"`
	HTMLAttrs   OrderedMap  `json:"html_attrs,omitempty"`
	Children    []TreeNode  `json:"children,omitempty"`
}

// FiberProbeResult is the fiber walker's documented output schema (§4.1).
type FiberProbeResult struct {
	Found       bool       `json:"found"`
	Tree        []TreeNode `json:"tree,omitempty"`
	AllMinified bool       `json:"all_minified"`
}

// AXValue wraps a CDP accessibility property's { value: JSON } envelope.
type AXValue struct {
	Value json.RawMessage `json:"value"`
}

// String extracts the value as a string, or "" if it is not a JSON string.
func (v *AXValue) String() string {
	if v == nil || len(v.Value) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err != nil {
		return ""
	}
	return s
}

// AXNode is a single node from the CDP Accessibility.getFullAXTree
// response, before (ChildIDs) or after (Children) reconstruction.
type AXNode struct {
	NodeID   string    `json:"nodeId"`
	Role     *AXValue  `json:"role,omitempty"`
	Name     *AXValue  `json:"name,omitempty"`
	ChildIDs []string  `json:"childIds,omitempty"`
	Children []AXNode  `json:"children,omitempty"`
}

// RoleString and NameString expose the role/name text values, defaulting
// to "" when absent, which formatters treat identically to "not supplied".
func (n AXNode) RoleString() string { return n.Role.String() }
func (n AXNode) NameString() string { return n.Name.String() }

// DOMNode is a raw DOM tree node as produced by the DOM walker probe
// (§4.1), or the mini-collapsed variant of the same shape (§4.4).
type DOMNode struct {
	Tag      *string    `json:"tag,omitempty"`
	Text     *string    `json:"text,omitempty"`
	Attrs    OrderedMap `json:"attrs,omitempty"`
	Children []DOMNode  `json:"children,omitempty"`
}

// isFragment reports whether n is a DOM fragment: no tag, no text.
func (n DOMNode) isFragment() bool {
	return n.Tag == nil && n.Text == nil
}

// isTextNode reports whether n is a text leaf.
func (n DOMNode) isTextNode() bool {
	return n.Tag == nil && n.Text != nil
}
