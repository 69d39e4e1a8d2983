// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package repr renders syntax trees as indented branch diagrams for
// command line inspection. The S-expression form on node.Node.String is
// the compact canonical rendering; this one is the readable one.
package repr

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/rubytree/rubytree/parser/node"
)

// Dump renders the tree one node per line, children indented under their
// parent, each node annotated with its resolved position when the tree has
// been through position resolution.
func Dump(n *node.Node) string {
	root := treeprint.NewWithRoot(label(n))
	addChildren(root, n)
	return root.String()
}

func addChildren(br treeprint.Tree, n *node.Node) {
	for _, cm := range n.Comments() {
		br.AddMetaNode("comment", commentText(cm))
	}
	for _, c := range n.Children {
		if c.Leaf() && len(c.Comments()) == 0 {
			br.AddNode(label(c))
			continue
		}
		addChildren(br.AddBranch(label(c)), c)
	}
}

func label(n *node.Node) string {
	if fp, ok := n.Position(); ok {
		return fmt.Sprintf("%s @ %s", n.Data, fp)
	}
	return n.Data
}

func commentText(cm *node.Node) string {
	if cm.IsComment() {
		return "#" + cm.Children[0].Data
	}
	return cm.String()
}
