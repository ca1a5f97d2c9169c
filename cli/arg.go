// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

package cli

// Type is the parsed type of an argument slot.
type Type int

const (
	String Type = iota
	Int
	Float
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "string"
	}
}

// Arg describes one argument slot of a command handler.
//
// A slot is named when Token is non-empty (e.g. "--value"), otherwise it
// is positional and addressed by Position within the tokens left over
// after named slots are consumed. A slot with a nil Default is required;
// named Bool slots are the exception, their value is presence of the
// Token itself and absence is a legal false.
//
// Self and Command slots are filled by the dispatcher, not from input:
// Self receives the node's singleton Executor (nil for a stateless
// handler), Command receives the matched *Command node itself.
//
// Note that a named slot given an explicitly empty value on the command
// line is indistinguishable from an absent one and binds its Default.
type Arg struct {
	Position int
	Token    string
	Type     Type
	Default  any
	Self     bool
	Command  bool
}

// Positional returns a required positional Arg of the given type.
func Positional(index int, t Type) Arg {
	return Arg{Position: index, Type: t}
}

// Named returns a named Arg of the given type. A Bool Arg is set by mere
// presence of token; any other type consumes the token following it.
func Named(token string, t Type) Arg {
	return Arg{Token: token, Type: t}
}

// WithDefault returns a copy of the Arg that binds v when absent,
// making the slot optional.
func (a Arg) WithDefault(v any) Arg {
	a.Default = v
	return a
}
