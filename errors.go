// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGeometry is returned from Update (and New) when a feature
	// in the input set has no geometry. A geometry-less feature is an
	// input contract violation by the upstream producer, so it is
	// surfaced rather than silently skipped. The detector's previous
	// feature set and index remain in effect.
	ErrNoGeometry = textErr("feature has no geometry")
)

const packageName = "hittest: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
