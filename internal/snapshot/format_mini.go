package snapshot

import "strings"

// formatMini renders a mini-collapsed DOM tree per §4.5's mini DOM
// formatter: identical to the full DOM formatter, except a node with
// exactly one child that is itself a text node inlines that text onto the
// parent's own line instead of emitting a separate child line.
func formatMini(roots []DOMNode, opts Options) string {
	var out []string
	for _, root := range roots {
		out = append(out, formatMiniNode(root, 0, opts)...)
	}
	return strings.Join(out, "\n")
}

func formatMiniNode(n DOMNode, depth int, opts Options) []string {
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

	if len(n.Children) == 1 && n.Children[0].isTextNode() {
		body += ` "` + *n.Children[0].Text + `"`
		return []string{line(depth, body)}
	}

	out := []string{line(depth, body)}
	for _, child := range n.Children {
		out = append(out, formatMiniNode(child, depth+1, opts)...)
	}
	return out
}
