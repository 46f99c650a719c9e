// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify every tree invariant
// returns the first failure found or nil
func (tree *Tree) Check() error {
	if !tree.CheckOrder() {
		return fault.ErrOutOfOrder
	}
	if !tree.CheckHeights() {
		return fault.ErrIncorrectHeight
	}
	if !tree.CheckBalance() {
		return fault.ErrUnbalancedTree
	}
	if !tree.CheckCount() {
		return fault.ErrCountMismatch
	}
	return nil
}

// CheckOrder - every left item is less and every right item greater
// than its parent, which also rules out duplicates
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: all keys must lie strictly between low and high (nil is unbounded)
func checkOrder(p *node, low Item, high Item) bool {
	if nil == p {
		return true
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return false
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return false
	}
	return checkOrder(p.left, low, p.key) && checkOrder(p.right, p.key, high)
}

// CheckHeights - the cached height of every node matches its sub-trees
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the measured height
func checkHeights(p *node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	return h, h == p.height
}

// CheckBalance - no node has a balance factor outside -1…+1
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *node) bool {
	if nil == p {
		return true
	}
	if b := balanceOf(p); b < -1 || b > 1 {
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckCount - the item count matches the number of reachable nodes
func (tree *Tree) CheckCount() bool {
	return tree.count == countNodes(tree.root)
}

func countNodes(p *node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
