// SPDX-License-Identifier: MPL-2.0

// Package nodes holds helpers over the host's scene-node tree.
package nodes

import (
	"slices"
)

// Node is the part of a scene node the helpers need.
type Node interface {
	ID() string
	// Parent returns nil for a root node.
	Parent() Node
	Children() []Node
}

// ComputeSiblingNodes splits nodes into groups sharing the same parent.
// Groups appear in the order their first member appears in nodes; within a
// group, nodes are ordered by their position among the parent's children.
// Nodes without a parent form one group and keep their input order.
func ComputeSiblingNodes[N Node](nodes []N) [][]N {
	var (
		order  []string
		groups = make(map[string][]N)
	)
	for _, n := range nodes {
		key := parentID(n)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], n)
	}

	result := make([][]N, 0, len(order))
	for _, key := range order {
		group := groups[key]
		if parent := group[0].Parent(); parent != nil {
			index := childIndex(parent)
			slices.SortStableFunc(group, func(a, b N) int {
				return index(a.ID()) - index(b.ID())
			})
		}
		result = append(result, group)
	}
	return result
}

func parentID(n Node) string {
	if p := n.Parent(); p != nil {
		return p.ID()
	}
	return ""
}

// childIndex returns a lookup of a child's position under parent, -1 when
// the id is not among its children.
func childIndex(parent Node) func(id string) int {
	positions := make(map[string]int)
	for i, c := range parent.Children() {
		positions[c.ID()] = i
	}
	return func(id string) int {
		if i, ok := positions[id]; ok {
			return i
		}
		return -1
	}
}
