// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the right child becomes the root of the sub-tree
//
//       p                r
//      / \              / \
//     a   r     →      p   c
//        / \          / \
//       b   c        a   b
//
func rotateLeft(p *node) *node {
	r := p.right
	p.right = r.left
	r.left = p

	// p is now below r, so must be updated first
	p.update()
	r.update()
	return r
}

// the left child becomes the root of the sub-tree
//
//         p            l
//        / \          / \
//       l   c   →    a   p
//      / \              / \
//     a   b            b   c
//
func rotateRight(p *node) *node {
	l := p.left
	p.left = l.right
	l.right = p

	p.update()
	l.update()
	return l
}
