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

import (
	"fmt"
	"io"
)

// A StructuralError is returned when a document tree cannot be serialized.
type StructuralError struct {
	// Tag is the element name of the offending node
	// or of its parent if the node itself is not valid.
	Tag    string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Tag == "" {
		return "serialize html: " + e.Reason
	}
	return fmt.Sprintf("serialize html: <%s>: %s", e.Tag, e.Reason)
}

// RenderHTML writes the HTML serialization of n to w.
// If the tree is malformed, RenderHTML returns a [*StructuralError]
// and does not write anything.
func RenderHTML(w io.Writer, n Node) error {
	buf, err := n.AppendHTML(nil)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTML returns the HTML serialization of the container.
func (c *Container) HTML() (string, error) {
	return c.AsNode().HTML()
}

// HTML returns the HTML serialization of n.
func (n Node) HTML() (string, error) {
	buf, err := n.AppendHTML(nil)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendHTML appends the HTML serialization of n to dst
// and returns the resulting byte slice.
// Text and attribute values are copied verbatim, without escaping.
// If the tree is malformed, AppendHTML returns dst unmodified
// along with a [*StructuralError].
func (n Node) AppendHTML(dst []byte) ([]byte, error) {
	if err := checkStructure(n); err != nil {
		return dst, err
	}
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if leaf := c.Leaf(); leaf != nil {
				dst = appendLeaf(dst, leaf)
				return false
			}
			container := c.Container()
			dst = appendOpenTag(dst, container.Tag, container.Attrs)
			return true
		},
		Post: func(c *Cursor) bool {
			dst = appendCloseTag(dst, c.Container().Tag)
			return true
		},
	})
	return dst, nil
}

// checkStructure returns the first structural problem in the tree rooted at root,
// in document order.
func checkStructure(root Node) error {
	var err error
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if err != nil {
				return false
			}
			err = checkNode(c)
			return err == nil
		},
	})
	return err
}

func checkNode(c *Cursor) error {
	if leaf := c.Leaf(); leaf != nil {
		if leaf.Tag == "" && !leaf.ValuePresent {
			return &StructuralError{Tag: c.ParentTag(), Reason: "leaf has neither tag nor value"}
		}
		return nil
	}
	container := c.Container()
	switch {
	case container == nil:
		return &StructuralError{Tag: c.ParentTag(), Reason: "child is not a node"}
	case container.Tag == "":
		return &StructuralError{Tag: c.ParentTag(), Reason: "container has no tag"}
	case len(container.Children) == 0:
		return &StructuralError{Tag: container.Tag, Reason: "container has no children"}
	default:
		return nil
	}
}

func appendLeaf(dst []byte, leaf *Leaf) []byte {
	if leaf.Tag == "" {
		return append(dst, leaf.Value...)
	}
	dst = appendOpenTag(dst, leaf.Tag, leaf.Attrs)
	if !leaf.ValuePresent {
		return dst
	}
	dst = append(dst, leaf.Value...)
	return appendCloseTag(dst, leaf.Tag)
}

func appendOpenTag(dst []byte, tag string, attrs []Attribute) []byte {
	dst = append(dst, '<')
	dst = append(dst, tag...)
	for _, attr := range attrs {
		dst = append(dst, ' ')
		dst = append(dst, attr.Key...)
		dst = append(dst, `="`...)
		dst = append(dst, attr.Value...)
		dst = append(dst, '"')
	}
	return append(dst, '>')
}

func appendCloseTag(dst []byte, tag string) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, tag...)
	return append(dst, '>')
}
