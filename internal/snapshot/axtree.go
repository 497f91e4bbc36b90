package snapshot

// buildAXTree reconstructs a parent→children tree from the CDP flat nodes
// array (§4.3). It uses an ownership-transferring map — nodeID → AXNode —
// drained during a recursive resolve of each root's child_ids, so every
// node is emitted at most once even if a malformed response re-references
// an id from more than one parent.
func buildAXTree(nodes []AXNode) []AXNode {
	if len(nodes) == 0 {
		return nil
	}

	referenced := make(map[string]struct{})
	for _, n := range nodes {
		for _, id := range n.ChildIDs {
			referenced[id] = struct{}{}
		}
	}

	byID := make(map[string]AXNode, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}

	var rootIDs []string
	for _, n := range nodes {
		if _, ok := referenced[n.NodeID]; !ok {
			rootIDs = append(rootIDs, n.NodeID)
		}
	}
	if len(rootIDs) == 0 {
		rootIDs = []string{nodes[0].NodeID}
	}

	var roots []AXNode
	for _, id := range rootIDs {
		if resolved, ok := resolveAXNode(id, byID); ok {
			roots = append(roots, resolved)
		}
	}
	return roots
}

// resolveAXNode pulls node id out of byID (removing it, so a second
// reference anywhere else in the input silently finds nothing) and
// recursively resolves its child_ids into nested Children.
func resolveAXNode(id string, byID map[string]AXNode) (AXNode, bool) {
	node, ok := byID[id]
	if !ok {
		return AXNode{}, false
	}
	delete(byID, id)

	var children []AXNode
	for _, childID := range node.ChildIDs {
		if resolved, ok := resolveAXNode(childID, byID); ok {
			children = append(children, resolved)
		}
	}
	node.Children = children
	return node, true
}
