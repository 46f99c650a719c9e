// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// DeepestNode - the item furthest from the root
//
// if several items share the greatest depth the rightmost (largest)
// one is returned; nil for an empty tree
func (tree *Tree) DeepestNode() Item {
	p := deepest(tree.root)
	if nil == p {
		return nil
	}
	return p.key
}

// follows the cached heights so only one path is visited
func deepest(p *node) *node {
	if nil == p {
		return nil
	}

	hl := heightOf(p.left)
	hr := heightOf(p.right)
	if hl > hr {
		return deepest(p.left)
	}
	if hl < hr {
		return deepest(p.right)
	}

	// equal heights: prefer the right
	if r := deepest(p.right); nil != r {
		return r
	}
	return p
}
