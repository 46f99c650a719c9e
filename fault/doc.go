// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Each error
// belongs to a class (exists, invalid, not found, process) that can
// be tested with the IsErr… functions.
//
// The Panic… functions write a critical message to the "PANIC"
// logger channel, if one was set up by Initialise, before panicking.
package fault
