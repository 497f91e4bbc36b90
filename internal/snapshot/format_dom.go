package snapshot

import "strings"

// formatDOM renders a raw DOM tree per §4.5's full DOM formatter.
func formatDOM(roots []DOMNode, opts Options) string {
	var out []string
	for _, root := range roots {
		out = append(out, formatDOMNode(root, 0, opts)...)
	}
	return strings.Join(out, "\n")
}

func formatDOMNode(n DOMNode, depth int, opts Options) []string {
	if opts.depthLimited(depth) {
		return nil
	}

	if n.isTextNode() {
		return []string{line(depth, `"`+*n.Text+`"`)}
	}

	body := *n.Tag
	for _, kv := range n.Attrs {
		body += attrSuffix(kv.Key, kv.Value)
	}
	out := []string{line(depth, body)}
	for _, child := range n.Children {
		out = append(out, formatDOMNode(child, depth+1, opts)...)
	}
	return out
}
