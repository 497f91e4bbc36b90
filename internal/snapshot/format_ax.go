package snapshot

import "strings"

// formatAX renders the reconstructed AX tree per §4.5's AX formatter.
func formatAX(roots []AXNode, opts Options) string {
	var out []string
	for _, root := range roots {
		out = append(out, formatAXNode(root, 0, opts)...)
	}
	return strings.Join(out, "\n")
}

func formatAXNode(n AXNode, depth int, opts Options) []string {
	if opts.depthLimited(depth) {
		return nil
	}

	role := n.RoleString()
	name := n.NameString()

	_, interactiveRole := InteractiveRoles[role]

	skip := role == "none" || role == "Ignored" || role == "generic" ||
		(opts.Interactive && !interactiveRole) ||
		(opts.Compact && name == "" && !interactiveRole)

	if skip {
		var out []string
		for _, child := range n.Children {
			out = append(out, formatAXNode(child, depth, opts)...)
		}
		return out
	}

	body := role
	if name != "" {
		body = body + ` "` + name + `"`
	}
	out := []string{line(depth, body)}
	for _, child := range n.Children {
		out = append(out, formatAXNode(child, depth+1, opts)...)
	}
	return out
}
