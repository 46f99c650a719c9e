// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// name of the logger channel
const panicChannel = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must already have been called
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicChannel)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// the message is prefixed with the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
}

// Panicf - log like Criticalf and then panic
func Panicf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
	Panic("abort, see last messages in log file")
}

// prefix the file:line two levels up, i.e. the caller of the public function
func withCaller(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return "(%q:%d) " + format, append(a, arguments...)
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicWithError - final panic including the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
