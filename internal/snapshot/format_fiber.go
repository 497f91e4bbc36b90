package snapshot

import (
	"fmt"
	"strings"
)

// formatFiber renders a fiber probe's tree per §4.5's fiber formatter,
// dispatching into the filtered-rendering variant when opts.Filter is set.
func formatFiber(tree []TreeNode, opts Options) string {
	var lines []string
	if opts.hasFilter() {
		cleared := opts
		cleared.Filter = ""
		for _, root := range tree {
			lines = append(lines, collectFilterMatches(root, opts, cleared)...)
		}
	} else {
		for _, root := range tree {
			lines = append(lines, formatFiberNode(root, 0, opts)...)
		}
	}
	return strings.Join(lines, "\n")
}

// collectFilterMatches implements "filtered fiber rendering" (§4.5): every
// node whose name matches the filter is re-rooted at depth 0 and rendered
// with the filter cleared, in discovery (pre-)order; the search continues
// into every node's children regardless of whether it matched, so nested
// matches inside an already-emitted match still surface as independent
// roots.
func collectFilterMatches(n TreeNode, opts, cleared Options) []string {
	var out []string
	if nameMatches(opts.Filter, n.Name) {
		out = append(out, formatFiberNode(n, 0, cleared)...)
	}
	for _, child := range n.Children {
		out = append(out, collectFilterMatches(child, opts, cleared)...)
	}
	return out
}

func formatFiberNode(n TreeNode, depth int, opts Options) []string {
	if opts.depthLimited(depth) {
		return nil
	}

	if opts.Compact && n.IsComponent && !hasInteractiveDescendant(n) {
		return nil
	}

	if opts.Interactive && !n.IsComponent && !isInteractiveHostTag(n.Tag) {
		var out []string
		for _, child := range n.Children {
			out = append(out, formatFiberNode(child, depth, opts)...)
		}
		return out
	}

	body := n.Name
	if !n.IsComponent && n.AriaName != nil && *n.AriaName != "" {
		body += ` "` + *n.AriaName + `"`
	}
	if n.RefID != nil {
		body += fmt.Sprintf(" [ref=%s]", *n.RefID)
	}
	if n.BoxRect != nil {
		body += fmt.Sprintf(" [x=%d y=%d w=%d h=%d]",
			roundInt(n.BoxRect.X), roundInt(n.BoxRect.Y),
			roundInt(n.BoxRect.Width), roundInt(n.BoxRect.Height))
	}
	for _, kv := range n.Props {
		body += propSuffix(kv.Key, kv.Value)
	}
	for _, kv := range n.HTMLAttrs {
		if n.Props.Has(kv.Key) {
			continue
		}
		body += attrSuffix(kv.Key, kv.Value)
	}

	out := []string{line(depth, body)}
	for _, child := range n.Children {
		out = append(out, formatFiberNode(child, depth+1, opts)...)
	}
	return out
}

func isInteractiveHostTag(tag *string) bool {
	if tag == nil {
		return false
	}
	_, ok := InteractiveTags[*tag]
	return ok
}
