// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - find the stored item equal to key
func (tree *Tree) Get(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrItemNotFound
	}
	return p.key, nil
}

// Contains - true if an item equal to key is in the tree
func (tree *Tree) Contains(key Item) (bool, error) {
	_, err := tree.Get(key)
	switch {
	case nil == err:
		return true, nil
	case fault.IsErrNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

func search(key Item, tree *node) *node {
	if nil == tree {
		return nil
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}
