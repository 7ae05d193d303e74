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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	root := NewContainer("div",
		NewContainer("p",
			NewText("a").AsNode(),
			NewLeaf("b", "b").AsNode(),
		).AsNode(),
		NewContainer("ul",
			NewContainer("li", NewText("c").AsNode()).AsNode(),
		).AsNode(),
	)

	var events []string
	Walk(root.AsNode(), &WalkOptions{
		Pre: func(c *Cursor) bool {
			events = append(events, fmt.Sprintf("pre %q in %q [%d] depth %d", c.Node().Tag(), c.ParentTag(), c.Index(), c.Depth()))
			return c.Node().Tag() != "ul"
		},
		Post: func(c *Cursor) bool {
			events = append(events, "post "+c.Container().Tag)
			return true
		},
	})
	want := []string{
		`pre "div" in "" [-1] depth 0`,
		`pre "p" in "div" [0] depth 1`,
		`pre "" in "p" [0] depth 2`,
		`pre "b" in "p" [1] depth 2`,
		"post p",
		`pre "ul" in "div" [1] depth 1`,
		"post div",
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestCursorKind(t *testing.T) {
	root := NewContainer("p",
		NewText("a").AsNode(),
		NewLeaf("code", "b").AsNode(),
	)
	var got []string
	Walk(root.AsNode(), &WalkOptions{
		Pre: func(c *Cursor) bool {
			leaf, container := c.Leaf(), c.Container()
			switch {
			case leaf != nil && container == nil:
				got = append(got, "leaf "+leaf.Value)
			case container != nil && leaf == nil:
				got = append(got, "container "+container.Tag)
				if c.Parent() != nil {
					t.Errorf("Parent() of root = %v; want <nil>", c.Parent())
				}
			default:
				t.Errorf("Leaf() = %v, Container() = %v; want exactly one non-nil", leaf, container)
			}
			if c.Depth() > 0 && c.Parent() != root {
				t.Errorf("Parent() of %q = %p; want %p", c.Node().Tag(), c.Parent(), root)
			}
			return true
		},
	})
	want := []string{"container p", "leaf a", "leaf b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visited (-want +got):\n%s", diff)
	}
}

func TestWalkStop(t *testing.T) {
	root := NewContainer("div",
		NewContainer("p", NewText("a").AsNode()).AsNode(),
		NewContainer("p", NewText("b").AsNode()).AsNode(),
	)
	n := 0
	Walk(root.AsNode(), &WalkOptions{
		Post: func(c *Cursor) bool {
			n++
			return c.Container().Tag != "p"
		},
	})
	// Stops after the first paragraph's post-order visit.
	if n != 1 {
		t.Errorf("Post called %d times; want 1", n)
	}
}
