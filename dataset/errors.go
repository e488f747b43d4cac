// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// errors.go - sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site, never baked into sentinels.
//   • Generate never panics; option constructors do (see options.go).

package dataset

import (
	"errors"
	"fmt"
)

// ErrUnknownFlavor indicates a flavor label outside the closed set returned
// by Flavors(). Harness and CLI layers surface it as an invalid argument.
var ErrUnknownFlavor = errors.New("dataset: unknown flavor")

// ErrBadSize indicates a negative length request.
var ErrBadSize = errors.New("dataset: invalid size")

// wrapf attaches method context to a sentinel: "<method>: <msg>: <sentinel>".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
