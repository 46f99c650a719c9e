// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keys"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "key-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--key-type=integer|string] operation...\n"+
			"  operations: add:K del:K get:K has:K pred:K deepest height size clear keys shape check print", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	keyType := masterConfiguration.KeyType
	if len(options["key-type"]) > 0 {
		keyType = options["key-type"][0]
		if !keys.Valid(keyType) {
			exitwithstatus.Message("%s: key type: %q  error: %s", program, keyType, fault.ErrInvalidKeyType)
		}
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// everything is parsed before the tree is touched
	initial, err := keys.ParseList(keyType, masterConfiguration.Items)
	if nil != err {
		exitwithstatus.Message("%s: configuration items error: %s", program, err)
	}
	ops, err := parseOperations(keyType, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("%s: version: %s", program, version)
	log.Infof("key type: %s  initial items: %d  operations: %d", keyType, len(initial), len(ops))

	tree, err := avl.NewFromList(initial)
	if nil != err {
		exitwithstatus.Message("%s: initial tree error: %s", program, err)
	}
	log.Debugf("initial tree: %s", tree.Shape())

	failures, err := run(tree, ops, os.Stdout, log)
	if nil != err {
		log.Errorf("output error: %s", err)
		exitwithstatus.Message("%s: output error: %s", program, err)
	}

	// every operation must leave a valid tree
	fault.PanicIfError("tree invariant check", tree.Check())

	if failures > 0 {
		exitwithstatus.Message("%s: %d of %d operations failed", program, failures, len(ops))
	}
}
