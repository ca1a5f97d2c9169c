// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

package cli

import "fmt"

// ParentNotFoundError is returned by Register when Options.Parent names
// a descriptor that has no registered command. The failed registration
// leaves the registry untouched.
type ParentNotFoundError struct {
	Parent any
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("cli: parent not found: %v", e.Parent)
}

// MissingArgumentError is returned when a required slot has no value and
// no default at bind time. The handler is not invoked.
type MissingArgumentError struct {
	Arg Arg
}

func (e *MissingArgumentError) Error() string {
	if e.Arg.Token != "" {
		return fmt.Sprintf("cli: missing argument %s", e.Arg.Token)
	}
	return fmt.Sprintf("cli: missing argument %d", e.Arg.Position)
}

// ArgumentTypeError is returned when a matched token cannot be coerced
// to its slot's declared type.
type ArgumentTypeError struct {
	Token string
	Type  Type
	Err   error
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("cli: %q is not %s", e.Token, e.Type)
}

func (e *ArgumentTypeError) Unwrap() error { return e.Err }
