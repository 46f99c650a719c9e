// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keys"
	"github.com/bitmark-inc/logger"
)

// separates an operation name from its item: "add:76"
const operandSeparator = ":"

// one step from the command line
type operation struct {
	text string   // as given on the command line
	name string   // key into the handlers table
	item avl.Item // nil if the operation takes no item
}

// text written out as is instead of as JSON
type rendering string

type handler struct {
	needsItem bool
	run       func(tree *avl.Tree, item avl.Item) (interface{}, error)
}

var handlers = map[string]handler{
	"add": {true, func(tree *avl.Tree, item avl.Item) (interface{}, error) {
		return tree.Insert(item)
	}},
	"del": {true, func(tree *avl.Tree, item avl.Item) (interface{}, error) {
		return tree.Delete(item)
	}},
	"get": {true, func(tree *avl.Tree, item avl.Item) (interface{}, error) {
		return tree.Get(item)
	}},
	"has": {true, func(tree *avl.Tree, item avl.Item) (interface{}, error) {
		return tree.Contains(item)
	}},
	"pred": {true, func(tree *avl.Tree, item avl.Item) (interface{}, error) {
		return tree.Predecessor(item)
	}},
	"deepest": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		return tree.DeepestNode(), nil
	}},
	"height": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		return tree.Height(), nil
	}},
	"size": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		return tree.Size(), nil
	}},
	"clear": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		tree.Clear()
		return true, nil
	}},
	"keys": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		return tree.Keys(), nil
	}},
	"shape": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		return tree.Shape(), nil
	}},
	"check": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		if err := tree.Check(); nil != err {
			return nil, err
		}
		return "ok", nil
	}},
	"print": {false, func(tree *avl.Tree, _ avl.Item) (interface{}, error) {
		b := &bytes.Buffer{}
		tree.Print(b)
		return rendering(b.String()), nil
	}},
}

// parse every argument before anything is run, so that a mistake
// in the list does not leave a partly applied sequence
func parseOperations(keyType string, arguments []string) ([]operation, error) {
	ops := make([]operation, 0, len(arguments))
	for _, text := range arguments {
		name, operand, hasOperand := splitOperation(text)

		h, ok := handlers[name]
		if !ok {
			return nil, fmt.Errorf("%s: %q", fault.ErrInvalidOperation, text)
		}

		op := operation{
			text: text,
			name: name,
		}
		switch {
		case h.needsItem && !hasOperand:
			return nil, fmt.Errorf("%s: %q", fault.ErrMissingOperand, text)
		case !h.needsItem && hasOperand:
			return nil, fmt.Errorf("%s: %q", fault.ErrUnexpectedOperand, text)
		case h.needsItem:
			item, err := keys.Parse(keyType, operand)
			if nil != err {
				return nil, fmt.Errorf("operation: %q  error: %s", text, err)
			}
			op.item = item
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// "pred:76" → "pred", "76", true
func splitOperation(text string) (string, string, bool) {
	n := strings.Index(text, operandSeparator)
	if n < 0 {
		return strings.ToLower(text), "", false
	}
	return strings.ToLower(text[:n]), text[n+len(operandSeparator):], true
}

// one line of output
type result struct {
	Op     string      `json:"op"`
	Result interface{} `json:"result"`
	Error  string      `json:"error,omitempty"`
}

// apply the operations in order, writing one result per operation
//
// an operation that fails is reported and the rest still run;
// returns the number of failures
func run(tree *avl.Tree, ops []operation, w io.Writer, log *logger.L) (int, error) {
	failures := 0
	for _, op := range ops {
		log.Debugf("operation: %q", op.text)

		value, err := handlers[op.name].run(tree, op.item)

		r := result{
			Op:     op.text,
			Result: value,
		}
		if nil != err {
			log.Warnf("operation: %q  error: %s", op.text, err)
			r.Error = err.Error()
			failures += 1
		}

		if s, ok := value.(rendering); ok && nil == err {
			if _, err := io.WriteString(w, string(s)); nil != err {
				return failures, err
			}
			continue
		}

		b, err := json.Marshal(r)
		if nil != err {
			return failures, err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); nil != err {
			return failures, err
		}
	}
	log.Infof("operations: %d  failures: %d  size: %d  height: %d", len(ops), failures, tree.Size(), tree.Height())
	return failures, nil
}
