// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the item with the lowest key value
func (tree *Tree) First() Item {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: lowest node in a sub-tree
func (tree *node) first() *node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the item with the highest key value
func (tree *Tree) Last() Item {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: highest node in a sub-tree
func (tree *node) last() *node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Keys - all items in ascending order
func (tree *Tree) Keys() []Item {
	items := make([]Item, 0, tree.count)
	return appendKeys(items, tree.root)
}

// internal: in-order walk
func appendKeys(items []Item, p *node) []Item {
	if nil == p {
		return items
	}
	items = appendKeys(items, p.left)
	items = append(items, p.key)
	return appendKeys(items, p.right)
}
