// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sitemark

// A Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node   Node
	parent *Container
	index  int
	depth  int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node {
	return c.node
}

// Leaf returns the current node as a [*Leaf]
// or nil if the current node is not a leaf.
func (c *Cursor) Leaf() *Leaf {
	return c.node.Leaf()
}

// Container returns the current node as a [*Container]
// or nil if the current node is not a container.
func (c *Cursor) Container() *Container {
	return c.node.Container()
}

// Parent returns the container holding the current node
// or nil for the root.
func (c *Cursor) Parent() *Container {
	return c.parent
}

// ParentTag returns the tag of [*Cursor.Parent]
// or the empty string for the root.
func (c *Cursor) ParentTag() string {
	if c.parent == nil {
		return ""
	}
	return c.parent.Tag
}

// Index returns the position of the current node in its parent's children.
// Index returns -1 for the root.
func (c *Cursor) Index() int {
	return c.index
}

// Depth returns the number of containers above the current node.
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each node before the node's children are traversed (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that node.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each container after its children are traversed (post-order).
	// Leaves have no children, so Post is never called for them.
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a tree depth-first, starting with root,
// and calling [WalkOptions.Pre] and [WalkOptions.Post].
// Children are visited in order.
func Walk(root Node, opts *WalkOptions) {
	type walkFrame struct {
		node   Node
		parent *Container
		index  int
		depth  int
		post   bool
	}

	stack := []walkFrame{{node: root, index: -1}}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cursor.node = curr.node
		cursor.parent = curr.parent
		cursor.index = curr.index
		cursor.depth = curr.depth
		if curr.post {
			if opts.Post != nil && !opts.Post(cursor) {
				return
			}
			continue
		}

		if opts.Pre != nil && !opts.Pre(cursor) {
			continue
		}
		container := curr.node.Container()
		if container == nil {
			continue
		}
		curr.post = true
		stack = append(stack, curr)
		for i := len(container.Children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{
				node:   container.Children[i],
				parent: container,
				index:  i,
				depth:  curr.depth + 1,
			})
		}
	}
}
