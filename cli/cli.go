// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

// Package cli implements the simply-cli interpreter core: a registry of
// commands and subcommands, resolution of free-form input lines against
// that tree, and binding of the remaining argument text to a handler's
// declared parameter slots.
//
// The package is the engine only. Reading lines, prompting, and
// printing results belong to the host; see cmd/simply-cli for an
// interactive shell built on top of it.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// InputFunc supplies one raw line per call. It is the injectable input
// capability Process reads from; io.EOF ends a host loop.
type InputFunc func() (string, error)

// Options configures one registration. The zero value registers a root
// command under the descriptor's own declared name with
// case-insensitive matching.
type Options struct {
	// Name is the canonical invocation word. When empty it defaults
	// to the descriptor's runtime name.
	Name string

	Description string

	// Aliases are additional invocation words; Name is always
	// matched as well.
	Aliases []string

	// Lowercase folds the node's aliases to lowercase before
	// comparison. CaseSensitive requires an exact match against the
	// (possibly folded) alias; when unset, matching is
	// case-insensitive regardless of Lowercase.
	Lowercase     bool
	CaseSensitive bool

	// Parent, when non-nil, is the descriptor of an already
	// registered command to attach this one to as a subcommand.
	Parent any

	// Args declares the handler's argument slots in the order its
	// bound values are passed.
	Args []Arg
}

// CLI owns the command tree and dispatches input lines against it.
// It is not safe for concurrent use.
type CLI struct {
	commands map[*Command]struct{}
	index    map[any]*Command

	// Input is where Process pulls lines from. It defaults to a
	// stdin scanner and may be replaced with any line source.
	Input InputFunc

	// Result is the most recent successful handler result, kept for
	// out-of-band inspection by host loops that use Process.
	Result any
}

// New returns an empty registry reading from stdin.
func New() *CLI {
	scanner := bufio.NewScanner(os.Stdin)
	return &CLI{
		commands: make(map[*Command]struct{}),
		index:    make(map[any]*Command),
		Input: func() (string, error) {
			if scanner.Scan() {
				return scanner.Text(), nil
			}
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			return "", err
		},
	}
}

// Register attaches descriptor as a command, or as a subcommand of
// Options.Parent. The descriptor is either a Handler or, for a stateful
// command, a Constructor whose Executor is built lazily on first
// invocation.
//
// Registering a descriptor twice overwrites its index entry but leaves
// the earlier tree node in place; Unregister first to replace a
// command.
func (c *CLI) Register(descriptor any, opts Options) (*Command, error) {
	var handler Handler
	var construct Constructor
	switch d := descriptor.(type) {
	case Handler:
		handler = d
	case func(...any) (any, error):
		handler = d
	case Constructor:
		construct = d
	case func() Executor:
		construct = d
	default:
		return nil, fmt.Errorf(
			"cli: %T is neither a Handler nor a Constructor",
			descriptor)
	}

	name := opts.Name
	if name == "" {
		name = deriveName(descriptor)
		if name == "" {
			return nil, fmt.Errorf(
				"cli: cannot derive a name for %T", descriptor)
		}
	}

	var parent *Command
	if opts.Parent != nil {
		var found bool
		parent, found = c.index[descriptorKey(opts.Parent)]
		if !found {
			return nil, &ParentNotFoundError{opts.Parent}
		}
	}

	cmd := &Command{
		name:          name,
		description:   opts.Description,
		aliases:       append([]string{name}, opts.Aliases...),
		lowercase:     opts.Lowercase,
		caseSensitive: opts.CaseSensitive,
		descriptor:    descriptor,
		handler:       handler,
		construct:     construct,
		args:          opts.Args,
		subcommands:   make(map[*Command]struct{}),
	}
	c.index[descriptorKey(descriptor)] = cmd
	if parent != nil {
		parent.addSubcommand(cmd)
	} else {
		c.commands[cmd] = struct{}{}
	}
	return cmd, nil
}

// Unregister detaches the command registered under descriptor. It is
// not recursive: the node's own subcommands are left dangling and must
// be unregistered by the caller if they should not live on unreachable.
func (c *CLI) Unregister(descriptor any) {
	key := descriptorKey(descriptor)
	for cmd := range c.commands {
		if descriptorKey(cmd.descriptor) == key {
			delete(c.commands, cmd)
		}
	}
	if cmd, found := c.index[key]; found {
		if cmd.parent != nil {
			cmd.parent.removeSubcommand(cmd)
		}
		delete(c.index, key)
	}
}

// Find searches the whole tree depth-first for a command matching the
// given name/alias string or registered descriptor. Absence is normal
// and yields nil, not an error. Resolution order between siblings with
// overlapping aliases is unspecified.
func (c *CLI) Find(identifier any) *Command {
	for cmd := range c.commands {
		if m := cmd.find(identifier); m != nil {
			return m
		}
	}
	return nil
}

// Commands returns a name-sorted snapshot of the root commands.
func (c *CLI) Commands() []*Command {
	cmds := make([]*Command, 0, len(c.commands))
	for cmd := range c.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})
	return cmds
}

// ProcessInput runs one command line to completion and returns the
// handler's result. A line naming no registered command returns
// (nil, nil): an unmatched line is simply not a command, and a prompt
// loop reports that itself.
func (c *CLI) ProcessInput(line string) (any, error) {
	head, tail, _ := splitWord(line)
	for cmd := range c.commands {
		if cmd.Matches(head) {
			result, err := cmd.execute(tail)
			if err != nil {
				return nil, err
			}
			c.Result = result
			return result, nil
		}
	}
	return nil, nil
}

// Process pulls one line from Input, runs it, and returns the raw line
// read. The command's result is left in Result.
func (c *CLI) Process() (string, error) {
	line, err := c.Input()
	if err != nil {
		return "", err
	}
	_, err = c.ProcessInput(line)
	return line, err
}

// descriptorKey normalizes a descriptor to a comparable index key.
// Funcs, maps, and slices are not comparable in Go, so those are keyed
// by pointer; everything else keys as itself. This replaces mutating
// caller-owned handlers with a back-reference.
func descriptorKey(descriptor any) any {
	v := reflect.ValueOf(descriptor)
	switch v.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.Pointer()
	}
	return descriptor
}

func deriveName(descriptor any) string {
	v := reflect.ValueOf(descriptor)
	if v.Kind() == reflect.Func {
		fn := runtime.FuncForPC(v.Pointer())
		if fn == nil {
			return ""
		}
		name := fn.Name()
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		return strings.TrimSuffix(name, "-fm")
	}
	if t := reflect.TypeOf(descriptor); t != nil {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		return t.Name()
	}
	return ""
}
