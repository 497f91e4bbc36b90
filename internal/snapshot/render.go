package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// indent returns the two-space-per-depth line prefix shared by every
// formatter, per §4.5.
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// line joins indent, the "- " marker, and body into one output line.
func line(depth int, body string) string {
	return indent(depth) + "- " + body
}

// roundInt rounds a float64 to the nearest integer, per the box_rect
// coordinate formatting rule in §4.5/§6.
func roundInt(f float64) int64 {
	return int64(math.Round(f))
}

// propSuffix renders " key=<value>" for one prop entry, dispatching on
// JSON type per §4.5: string ⇒ key="s", number ⇒ key={n}, bool ⇒
// key={bool}, null ⇒ key={null}, anything else ⇒ key={...}.
func propSuffix(key string, raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return fmt.Sprintf(` %s="%s"`, key, s)
	}

	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "true", "false":
		return fmt.Sprintf(" %s={%s}", key, trimmed)
	case "null":
		return fmt.Sprintf(" %s={null}", key)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return fmt.Sprintf(" %s={%s}", key, trimmed)
	}

	return fmt.Sprintf(" %s={...}", key)
}

// attrSuffix renders " key=\"v\"" for a string html_attrs entry, and ""
// for any non-string value (silently skipped per §4.5).
func attrSuffix(key string, raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, key, s)
}
