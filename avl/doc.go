// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique ordered items
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree; an absent sub-tree has
// height -1 and a leaf has height 0.  Insert and delete recurse down
// to the affected position and return the possibly new sub-tree root
// to their caller, recomputing heights and rotating on the way back
// up so that the heights of the two sub-trees of every node differ by
// at most one.
//
// There are no parent pointers, a node is owned only by the node (or
// tree) above it.
//
// Items compare by their Compare method only, so the item stored in
// the tree may carry more data than the item used to look it up; Get,
// Delete and Predecessor always return the stored item.
package avl
