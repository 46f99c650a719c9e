// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Predecessor - the largest stored item that is less than key
//
// key must be in the tree; if it is the smallest item the result is
// nil with no error
func (tree *Tree) Predecessor(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}
	if nil == search(key, tree.root) {
		return nil, fault.ErrItemNotFound
	}

	p := predecessor(key, tree.root)
	if nil == p {
		return nil, nil
	}
	return p.key, nil
}

// walk down from the root, every node less than key is a candidate
// but a candidate in its right branch is always larger
func predecessor(key Item, p *node) *node {
	if nil == p {
		return nil
	}
	if p.key.Compare(key) >= 0 { // key <= p.key
		return predecessor(key, p.left)
	}
	if r := predecessor(key, p.right); nil != r {
		return r
	}
	return p
}
