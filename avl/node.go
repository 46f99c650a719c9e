// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

package avl

// Item - a key item must implement the Compare function
//
// a.Compare(b) is negative if a < b, zero if they are equal and
// positive if a > b
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// a node in the tree
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	key    Item  // key part for ordering
	height int   // longest path to a leaf in edges, 0 for a leaf
}

// allocate a new leaf node
func newNode(key Item) *node {
	return &node{
		key:    key,
		height: 0,
	}
}

// height of a sub-tree, -1 if there is no sub-tree
func heightOf(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// balance factor: height(left) - height(right)
func balanceOf(p *node) int {
	return heightOf(p.left) - heightOf(p.right)
}

// recompute the cached height after either child has changed
func (p *node) update() {
	hl := heightOf(p.left)
	hr := heightOf(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
