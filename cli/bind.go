// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

package cli

import (
	"strconv"
	"strings"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

// bind matches the raw argument text against the declared slots and
// returns the values to invoke the handler with, in declaration order.
//
// The text is tokenized on whitespace. Named Bool slots are consumed
// first by presence (flags), then named value slots with the token
// following them (parms, which also accepts NAME=VALUE). Whatever
// remains is positional, addressed by declared index. Absent slots bind
// their Default; a required slot without one fails the bind.
func bind(specs []Arg, raw string, node *Command) ([]any, error) {
	tokens := strings.Fields(raw)

	var boolNames []interface{}
	var parmNames []interface{}
	for _, a := range specs {
		if a.Self || a.Command || a.Token == "" {
			continue
		}
		if a.Type == Bool {
			boolNames = append(boolNames, a.Token)
		} else {
			parmNames = append(parmNames, a.Token)
		}
	}
	flag, tokens := flags.New(tokens, boolNames...)
	parm, tokens := parms.New(tokens, parmNames...)

	vals := make([]any, len(specs))
	for i, a := range specs {
		switch {
		case a.Self:
			vals[i] = node.Instance()
		case a.Command:
			vals[i] = node
		case a.Token == "":
			if a.Position < len(tokens) {
				v, err := coerce(tokens[a.Position], a.Type)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			} else if a.Default != nil {
				vals[i] = a.Default
			} else {
				return nil, &MissingArgumentError{Arg: a}
			}
		case a.Type == Bool:
			if v := flag.ByName[a.Token]; v || a.Default == nil {
				vals[i] = v
			} else {
				vals[i] = a.Default
			}
		default:
			if s := parm.ByName[a.Token]; len(s) > 0 {
				v, err := coerce(s, a.Type)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			} else if a.Default != nil {
				vals[i] = a.Default
			} else {
				return nil, &MissingArgumentError{Arg: a}
			}
		}
	}
	return vals, nil
}

func coerce(token string, t Type) (any, error) {
	switch t {
	case Int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &ArgumentTypeError{token, Int, err}
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &ArgumentTypeError{token, Float, err}
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, &ArgumentTypeError{token, Bool, err}
		}
		return b, nil
	default:
		return token, nil
	}
}
