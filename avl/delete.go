// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the item that was stored in the tree, which compares equal
// to key but need not be the same value
func (tree *Tree) Delete(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}

	// locate first so that a missing key never touches the tree
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrItemNotFound
	}
	stored := p.key

	tree.root = remove(key, tree.root)
	tree.count -= 1
	return stored, nil
}

// internal delete routine
// returns the possibly updated sub-tree root
func remove(key Item, p *node) *node {
	if nil == p { // key not in tree
		return nil
	}

	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left = remove(key, p.left)
	case c < 0: // p.key < key
		p.right = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right
		}
		if nil == p.right {
			return p.left
		}

		// two children: take over the predecessor's key and
		// remove the predecessor from the left branch
		q := p.left.last()
		p.key = q.key
		p.left = remove(q.key, p.left)
	}
	return rebalance(p)
}

// delete: tree balancer
//
// runs at every level on the way back up, since removing a node
// can leave more than one ancestor unbalanced
func rebalance(p *node) *node {
	p.update()

	switch b := balanceOf(p); {
	case b > 1: // left branch is too high
		if balanceOf(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case b < -1: // right branch is too high
		if balanceOf(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
