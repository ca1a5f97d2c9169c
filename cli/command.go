// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

package cli

import (
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Handler is a plain command handler. It receives the bound argument
// values in declaration order and its result is returned to the caller
// of ProcessInput.
type Handler func(args ...any) (any, error)

// Executor is a stateful command handler. The one instance a node owns
// is constructed on first invocation and shared by every invocation
// after it, so mutations persist across calls.
type Executor interface {
	Execute(args ...any) (any, error)
}

// Constructor builds a node's Executor instance. It is called at most
// once per node.
type Constructor func() Executor

// Command is one node of the command tree.
type Command struct {
	name          string
	description   string
	aliases       []string // name first
	lowercase     bool
	caseSensitive bool

	descriptor any
	handler    Handler
	construct  Constructor
	args       []Arg

	subcommands map[*Command]struct{}
	parent      *Command

	once     sync.Once
	instance Executor
}

func (c *Command) String() string { return c.name }

func (c *Command) Description() string { return c.description }

// Aliases returns the effective alias list, name first.
func (c *Command) Aliases() []string { return c.aliases }

// Parent returns the command this one is a subcommand of, or nil.
// It is bookkeeping for Unregister, never used for resolution.
func (c *Command) Parent() *Command { return c.parent }

// Subcommands returns a name-sorted snapshot of the node's children.
func (c *Command) Subcommands() []*Command {
	subs := make([]*Command, 0, len(c.subcommands))
	for sub := range c.subcommands {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].name < subs[j].name
	})
	return subs
}

// Matches reports whether word invokes this command.
//
// Each alias is folded to lowercase first when the node was registered
// with Lowercase. A case-sensitive node then requires word to equal the
// folded alias, except that a folded alias accepts word in any case.
// A case-insensitive node matches regardless of either casing.
func (c *Command) Matches(word string) bool {
	for _, alias := range c.aliases {
		if c.lowercase {
			alias = strings.ToLower(alias)
		}
		if c.caseSensitive {
			if word == alias {
				return true
			}
			if c.lowercase && strings.ToLower(word) == alias {
				return true
			}
		} else if strings.EqualFold(word, alias) {
			return true
		}
	}
	return false
}

// FindSubcommand searches the node's subtree depth-first for a command
// matching the given name/alias string or descriptor. It returns nil
// when nothing matches.
func (c *Command) FindSubcommand(identifier any) *Command {
	for sub := range c.subcommands {
		if m := sub.find(identifier); m != nil {
			return m
		}
	}
	return nil
}

func (c *Command) find(identifier any) *Command {
	if name, ok := identifier.(string); ok {
		if c.Matches(name) {
			return c
		}
	} else if descriptorKey(c.descriptor) == descriptorKey(identifier) {
		return c
	}
	return c.FindSubcommand(identifier)
}

// Instance returns the node's singleton Executor, constructing it on
// first use. It is nil for a node wrapping a plain Handler.
func (c *Command) Instance() Executor {
	if c.construct == nil {
		return nil
	}
	c.once.Do(func() {
		c.instance = c.construct()
	})
	return c.instance
}

func (c *Command) addSubcommand(sub *Command) {
	c.subcommands[sub] = struct{}{}
	sub.parent = c
}

func (c *Command) removeSubcommand(sub *Command) {
	delete(c.subcommands, sub)
	sub.parent = nil
}

// execute resolves subcommands token by token, then binds the remaining
// text and invokes the terminal node's handler.
//
// Descent only happens while the remaining text still holds whitespace,
// so "math add" binds "add" as an argument of math while "math add 5 4"
// descends into add with "5 4".
func (c *Command) execute(raw string) (any, error) {
	if head, rest, ok := splitWord(raw); ok {
		for sub := range c.subcommands {
			if sub.Matches(head) {
				return sub.execute(rest)
			}
		}
	}
	args, err := bind(c.args, raw, c)
	if err != nil {
		return nil, err
	}
	if c.construct != nil {
		return c.Instance().Execute(args...)
	}
	return c.handler(args...)
}

// splitWord splits s into its leading word and the text past the first
// whitespace run. ok is false when s holds no whitespace at all.
func splitWord(s string) (head, rest string, ok bool) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", false
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace), true
}
