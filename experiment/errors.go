// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a specification line that cannot be parsed
	ErrParse = errors.New("invalid experiment line")
)

// ParseError describes a specification line that cannot be used.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d %q: %v", ErrParse, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// LoadError reports the experiment whose feature files could not be read.
type LoadError struct {
	Line int
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("experiment on line %d: %v", e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
