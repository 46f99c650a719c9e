// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromList - create a tree by inserting each item in list order
//
// the order of the list determines the shape of the tree; a nil item
// anywhere in the list is an error and no tree is returned
func NewFromList(items []Item) (*Tree, error) {
	tree := New()
	for _, key := range items {
		if _, err := tree.Insert(key); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of items currently in the tree
func (tree *Tree) Size() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return heightOf(tree.root)
}

// Clear - remove all items
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
