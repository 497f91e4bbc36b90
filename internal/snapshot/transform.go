package snapshot

import "strings"

// InteractiveRoles is the AX role set treated as interactive (§4.4).
var InteractiveRoles = map[string]struct{}{
	"button": {}, "link": {}, "textbox": {}, "checkbox": {}, "radio": {},
	"combobox": {}, "listbox": {}, "menuitem": {}, "menuitemcheckbox": {},
	"menuitemradio": {}, "option": {}, "searchbox": {}, "slider": {},
	"spinbutton": {}, "switch": {}, "tab": {}, "treeitem": {},
}

// InteractiveTags is the host DOM / fiber host tag set treated as
// interactive (§4.4).
var InteractiveTags = map[string]struct{}{
	"a": {}, "button": {}, "input": {}, "select": {}, "textarea": {},
	"details": {}, "summary": {},
}

// StructuralTags is the tag set eligible for mini collapse (§4.4).
var StructuralTags = map[string]struct{}{
	"div": {}, "span": {}, "p": {}, "section": {}, "main": {}, "article": {},
	"header": {}, "footer": {}, "nav": {}, "aside": {}, "figure": {},
	"figcaption": {}, "ul": {}, "ol": {}, "li": {}, "dl": {}, "dt": {},
	"dd": {}, "table": {}, "tbody": {}, "thead": {}, "tfoot": {}, "tr": {},
	"td": {}, "th": {}, "center": {}, "fieldset": {}, "form": {},
}

// isMeaningfulAttr reports whether an attribute name counts toward
// "meaningful attrs" for mini collapse (§4.4): not an aria-* attribute,
// and not one of role/tabindex/hidden/dir/lang.
func isMeaningfulAttr(name string) bool {
	if strings.HasPrefix(name, "aria-") {
		return false
	}
	switch name {
	case "role", "tabindex", "hidden", "dir", "lang":
		return false
	default:
		return true
	}
}

func hasMeaningfulAttrs(attrs OrderedMap) bool {
	for _, kv := range attrs {
		if isMeaningfulAttr(kv.Key) {
			return true
		}
	}
	return false
}

// globMatch implements the name-level glob matcher of §4.4. Patterns
// without '*' require exact equality; patterns with '*' split on '*' into
// segments, each non-empty segment must appear in order, anchored at
// position 0 unless the pattern starts with '*', and anchored at the end
// unless the pattern ends with '*'. Comparison is case-insensitive.
func globMatch(pattern, text string) bool {
	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	if !strings.Contains(pattern, "*") {
		return pattern == text
	}

	segments := strings.Split(pattern, "*")
	anchoredStart := !strings.HasPrefix(pattern, "*")
	anchoredEnd := !strings.HasSuffix(pattern, "*")

	pos := 0
	var nonEmpty []string
	for _, seg := range segments {
		if seg != "" {
			nonEmpty = append(nonEmpty, seg)
		}
	}
	if len(nonEmpty) == 0 {
		// Pattern is entirely '*' characters: matches anything.
		return true
	}

	for i, seg := range nonEmpty {
		if i == 0 && anchoredStart {
			if !strings.HasPrefix(text[pos:], seg) {
				return false
			}
			pos += len(seg)
			continue
		}
		idx := strings.Index(text[pos:], seg)
		if idx < 0 {
			return false
		}
		pos += idx + len(seg)
	}

	if anchoredEnd && pos != len(text) {
		return false
	}
	return true
}

// nameMatches applies the filter to a node name: glob if the filter
// contains '*', substring otherwise, both lowercased.
func nameMatches(filter, name string) bool {
	if filter == "" {
		return true
	}
	if strings.Contains(filter, "*") {
		return globMatch(filter, name)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// hasInteractiveDescendant reports whether the fiber node itself or any
// descendant is a host node with an interactive tag (§4.4).
func hasInteractiveDescendant(n TreeNode) bool {
	if !n.IsComponent && n.Tag != nil {
		if _, ok := InteractiveTags[*n.Tag]; ok {
			return true
		}
	}
	for _, child := range n.Children {
		if hasInteractiveDescendant(child) {
			return true
		}
	}
	return false
}

// flattenFragments recursively expands fragment DOM nodes (no tag, no
// text) into their children in place (§4.4).
func flattenFragments(nodes []DOMNode) []DOMNode {
	var out []DOMNode
	for _, n := range nodes {
		n.Children = flattenFragments(n.Children)
		if n.isFragment() {
			out = append(out, n.Children...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// miniCollapse applies the bottom-up mini DOM simplification of §4.4. It
// returns (node, true) when the node survives, or (_, false) when it is
// dropped. Per the open question in §9, a text node with an empty trimmed
// string is treated as drop-worthy, consistent with the DOM walker
// already discarding whitespace-only text.
func miniCollapse(n DOMNode) (DOMNode, bool) {
	if n.isTextNode() {
		if strings.TrimSpace(*n.Text) == "" {
			return DOMNode{}, false
		}
		return n, true
	}

	var collapsedChildren []DOMNode
	for _, child := range n.Children {
		if out, ok := miniCollapse(child); ok {
			collapsedChildren = append(collapsedChildren, out)
		}
	}
	collapsedChildren = flattenFragments(collapsedChildren)

	if n.isFragment() {
		if len(collapsedChildren) == 0 {
			return DOMNode{}, false
		}
		return DOMNode{Children: collapsedChildren}, true
	}

	structural := n.Tag != nil && func() bool {
		_, ok := StructuralTags[*n.Tag]
		return ok
	}()
	plain := !hasMeaningfulAttrs(n.Attrs) && n.Text == nil

	if structural && plain && len(collapsedChildren) == 0 {
		return DOMNode{}, false
	}
	if structural && plain {
		return DOMNode{Children: collapsedChildren}, true
	}

	n.Children = collapsedChildren
	return n, true
}
