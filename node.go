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

import "unsafe"

const (
	nodeTypeLeaf = 1 + iota
	nodeTypeContainer
)

// Node is a pointer to a [Leaf] or a [Container].
// Nodes can be compared for equality using the == operator.
// The zero Node does not reference anything
// and is rejected during serialization.
type Node struct {
	ptr unsafe.Pointer
	typ uint8
}

// Leaf returns the referenced leaf
// or nil if the pointer does not reference a leaf.
func (n Node) Leaf() *Leaf {
	if n.typ != nodeTypeLeaf {
		return nil
	}
	return (*Leaf)(n.ptr)
}

// Container returns the referenced container
// or nil if the pointer does not reference a container.
func (n Node) Container() *Container {
	if n.typ != nodeTypeContainer {
		return nil
	}
	return (*Container)(n.ptr)
}

// Tag returns the element name of the referenced node.
// Calling Tag on the zero value returns the empty string.
func (n Node) Tag() string {
	if l := n.Leaf(); l != nil {
		return l.Tag
	}
	if c := n.Container(); c != nil {
		return c.Tag
	}
	return ""
}

// ChildCount returns the number of children the node has.
// Leaves and the zero value have no children.
func (n Node) ChildCount() int {
	if c := n.Container(); c != nil {
		return len(c.Children)
	}
	return 0
}

// Child returns the i'th child of the node.
func (n Node) Child(i int) Node {
	if c := n.Container(); c != nil {
		return c.Children[i]
	}
	panic("Child on non-container Node")
}

// An Attribute is a single key/value pair on an element.
type Attribute struct {
	Key   string
	Value string
}

// A Leaf is a terminal node.
// A Leaf without a tag is raw text.
// A Leaf with a tag but no value is rendered as a void element, like <img>.
type Leaf struct {
	Tag          string
	Value        string
	ValuePresent bool
	Attrs        []Attribute
}

// NewText returns an untagged leaf holding s.
func NewText(s string) *Leaf {
	return &Leaf{Value: s, ValuePresent: true}
}

// NewLeaf returns a leaf element with the given tag and text content.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{
		Tag:          tag,
		Value:        value,
		ValuePresent: true,
		Attrs:        attrs,
	}
}

// NewVoid returns a leaf element that has attributes but no content.
func NewVoid(tag string, attrs ...Attribute) *Leaf {
	return &Leaf{Tag: tag, Attrs: attrs}
}

// AsNode converts the leaf to a [Node] pointer.
func (l *Leaf) AsNode() Node {
	if l == nil {
		return Node{}
	}
	return Node{
		typ: nodeTypeLeaf,
		ptr: unsafe.Pointer(l),
	}
}

// A Container is an element with an ordered list of children.
// A Container owns its children:
// a node must not appear in more than one Container.
type Container struct {
	Tag      string
	Children []Node
	Attrs    []Attribute
}

// NewContainer returns a container with the given tag and children.
func NewContainer(tag string, children ...Node) *Container {
	return &Container{Tag: tag, Children: children}
}

// Append adds nodes to the end of the container's children.
func (c *Container) Append(children ...Node) {
	c.Children = append(c.Children, children...)
}

// AsNode converts the container to a [Node] pointer.
func (c *Container) AsNode() Node {
	if c == nil {
		return Node{}
	}
	return Node{
		typ: nodeTypeContainer,
		ptr: unsafe.Pointer(c),
	}
}
