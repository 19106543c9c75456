package bptree

import "bplusstore/common"

// childSlot selects the child index to descend into for key k, per the
// tie-break rule in spec.md §4.2: the first child whose separator exceeds
// k, or the last child when no separator does. Since k == keys[i] must
// descend into children[i+1] (the separator is the min key of that
// subtree), a strict "<" comparison already gives the right behaviour.
func childSlot(n *node, k int32) int {
	for i, key := range n.keys {
		if k < key {
			return i
		}
	}
	return len(n.keys)
}

// descendToLeaf returns the unique leaf that would contain k if present.
func descendToLeaf(root *node, k int32) *node {
	cur := root
	for !cur.isLeaf() {
		cur = cur.children[childSlot(cur, k)]
	}
	return cur
}

// descendWithPath behaves like descendToLeaf but also returns the
// ancestry of internal nodes visited, root first, for use by callers that
// need to walk back up (insert's split propagation). Recording the path
// during descent avoids a second pass and bounds stack depth to the tree's
// height rather than recursion depth.
func descendWithPath(root *node, k int32) (leaf *node, path []*node) {
	cur := root
	path = make([]*node, 0)
	for !cur.isLeaf() {
		common.Assert(len(cur.children) == len(cur.keys)+1,
			"internal node has %d children but %d keys", len(cur.children), len(cur.keys))
		path = append(path, cur)
		cur = cur.children[childSlot(cur, k)]
	}
	return cur, path
}

// leafKeyIndex returns the sorted insertion position for k within a
// leaf's key array: the index of the first key >= k, or len(keys) if none.
func leafKeyIndex(n *node, k int32) int {
	for i, key := range n.keys {
		if key >= k {
			return i
		}
	}
	return len(n.keys)
}
