// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree
//
// returns true if the item was added, false if an equal item was
// already present; in that case the tree is not changed
func (tree *Tree) Insert(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilItem
	}
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert
// returns the possibly updated sub-tree root
func insert(key Item, p *node) (*node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = insert(key, p.right)
	default: // duplicate
		return p, false
	}
	if !added {
		return p, false
	}

	p.update()

	switch b := balanceOf(p); {
	case b > 1: // left branch is too high
		if p.left.key.Compare(key) > 0 {
			// single LL rotation
			return rotateRight(p), true
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true

	case b < -1: // right branch is too high
		if p.right.key.Compare(key) < 0 {
			// single RR rotation
			return rotateLeft(p), true
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}
