// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h:%d %+d\n", tree.key, tree.height, balanceOf(tree))
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Shape - compact pre-order rendering of the structure
//
// a leaf is shown as its key, an inner node as "(key left right)"
// with "." for an absent child, e.g. "(2 (0 . 1) 3)"
func (tree *Tree) Shape() string {
	s := strings.Builder{}
	shape(&s, tree.root)
	return s.String()
}

func shape(s *strings.Builder, p *node) {
	if nil == p {
		s.WriteString(".")
		return
	}
	if nil == p.left && nil == p.right {
		fmt.Fprintf(s, "%v", p.key)
		return
	}
	fmt.Fprintf(s, "(%v ", p.key)
	shape(s, p.left)
	s.WriteString(" ")
	shape(s, p.right)
	s.WriteString(")")
}
