// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys - concrete item types for the AVL tree
package keys

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// names of the supported key types
const (
	IntegerType = "integer"
	StringType  = "string"
)

// Integer - a signed integer key
type Integer int64

// Compare - integer comparison for AVL interface
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String - a key ordered by byte-wise string comparison
type String string

// Compare - string comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the string itself
func (s String) String() string {
	return string(s)
}

// Valid - true if keyType names a supported type
func Valid(keyType string) bool {
	switch keyType {
	case IntegerType, StringType:
		return true
	default:
		return false
	}
}

// Parse - convert text to a key of the given type
func Parse(keyType string, text string) (avl.Item, error) {
	switch keyType {
	case IntegerType:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if nil != err {
			return nil, err
		}
		return Integer(n), nil
	case StringType:
		return String(text), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// ParseList - convert each text to a key, stopping at the first error
func ParseList(keyType string, list []string) ([]avl.Item, error) {
	items := make([]avl.Item, 0, len(list))
	for _, text := range list {
		item, err := Parse(keyType, text)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
