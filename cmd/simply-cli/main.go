// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

// Command simply-cli is an interactive shell over the cli engine. It
// prompts with line editing and completion on a tty, reads plainly from
// pipes, and with a FILE or URL argument sources commands from the
// reference instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/platinasystems/log"
	"github.com/platinasystems/url"

	"github.com/ImaMapleTree/simply-cli/cli"
	"github.com/ImaMapleTree/simply-cli/internal/liner"
	"github.com/ImaMapleTree/simply-cli/internal/notliner"
)

type config struct {
	Prompt  string
	History string
}

type prompter interface {
	Prompt(string) (string, error)
}

func main() {
	cfg := config{Prompt: "simply-cli> "}
	if home, err := os.UserHomeDir(); err == nil {
		fn := filepath.Join(home, ".simply-cli.toml")
		if _, err = os.Stat(fn); err == nil {
			if _, err = toml.DecodeFile(fn, &cfg); err != nil {
				log.Print("config: ", err)
			}
		}
	}

	c := cli.New()
	if err := register(c); err != nil {
		log.Print(err)
		os.Exit(1)
	}

	var p prompter
	var isScript bool
	switch {
	case len(os.Args) > 1:
		script, err := url.Open(os.Args[1])
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
		defer script.Close()
		p = notliner.New(script, nil)
		isScript = true
	case isatty.IsTerminal(os.Stdin.Fd()):
		lp := liner.New(c, cfg.History)
		defer lp.Close()
		p = lp
	default:
		p = notliner.New(os.Stdin, nil)
		isScript = true
	}
	c.Input = func() (string, error) {
		return p.Prompt(cfg.Prompt)
	}

	for {
		c.Result = nil
		line, err := c.Process()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			if isScript {
				os.Exit(1)
			}
			continue
		}
		if c.Result != nil {
			fmt.Println(c.Result)
			continue
		}
		if head := strings.Fields(line); len(head) > 0 {
			if c.Find(head[0]) == nil {
				fmt.Fprintln(os.Stderr,
					head[0]+": command not found")
			}
		}
	}
}

// mathCmd is a stateful root whose subcommands do the arithmetic; bare
// "math" reports them.
type mathCmd struct{}

func (*mathCmd) Execute(args ...any) (any, error) {
	node := args[0].(*cli.Command)
	var names []string
	for _, sub := range node.Subcommands() {
		names = append(names, sub.String())
	}
	return "usage: math " + strings.Join(names, "|") + " N N", nil
}

// counter keeps its tally on the node's singleton instance, so the
// count survives between invocations.
type counter struct{ n int }

func (c *counter) Execute(args ...any) (any, error) {
	c.n++
	return c.n, nil
}

func register(c *cli.CLI) error {
	greet := func(args ...any) (any, error) {
		return fmt.Sprintf("Hello %s!", args[0]), nil
	}
	if _, err := c.Register(greet, cli.Options{
		Name:        "greet",
		Description: "greet someone by name",
		Aliases:     []string{"hi"},
		Args:        []cli.Arg{cli.Positional(0, cli.String)},
	}); err != nil {
		return err
	}

	echo := func(args ...any) (any, error) {
		if args[1].(bool) {
			return nil, nil
		}
		return "Echoed " + args[0].(string), nil
	}
	if _, err := c.Register(echo, cli.Options{
		Name:        "echo",
		Description: "echo --value TEXT, silenced by --hide",
		Args: []cli.Arg{
			cli.Named("--value", cli.String).WithDefault(
				"nothing..."),
			cli.Named("--hide", cli.Bool),
		},
	}); err != nil {
		return err
	}

	newMath := cli.Constructor(func() cli.Executor {
		return new(mathCmd)
	})
	if _, err := c.Register(newMath, cli.Options{
		Name:        "math",
		Description: "integer arithmetic",
		Args:        []cli.Arg{{Command: true}},
	}); err != nil {
		return err
	}
	add := func(args ...any) (any, error) {
		o1, o2 := args[0].(int), args[1].(int)
		return fmt.Sprintf("%d + %d = %d", o1, o2, o1+o2), nil
	}
	if _, err := c.Register(add, cli.Options{
		Name:   "add",
		Parent: newMath,
		Args: []cli.Arg{
			cli.Positional(0, cli.Int),
			cli.Positional(1, cli.Int),
		},
	}); err != nil {
		return err
	}
	sub := func(args ...any) (any, error) {
		o1, o2 := args[0].(int), args[1].(int)
		return fmt.Sprintf("%d - %d = %d", o1, o2, o1-o2), nil
	}
	if _, err := c.Register(sub, cli.Options{
		Name:   "sub",
		Parent: newMath,
		Args: []cli.Arg{
			cli.Positional(0, cli.Int),
			cli.Positional(1, cli.Int),
		},
	}); err != nil {
		return err
	}

	newCounter := cli.Constructor(func() cli.Executor {
		return new(counter)
	})
	if _, err := c.Register(newCounter, cli.Options{
		Name:        "count",
		Description: "count invocations",
	}); err != nil {
		return err
	}

	help := func(args ...any) (any, error) {
		var b strings.Builder
		for _, cmd := range c.Commands() {
			fmt.Fprintf(&b, "%-8s %s\n", cmd, cmd.Description())
			for _, sub := range cmd.Subcommands() {
				fmt.Fprintf(&b, "    %-8s %s\n",
					sub, sub.Description())
			}
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
	if _, err := c.Register(help, cli.Options{
		Name:        "help",
		Description: "list commands",
	}); err != nil {
		return err
	}

	exit := func(args ...any) (any, error) {
		return nil, io.EOF
	}
	_, err := c.Register(exit, cli.Options{
		Name:        "exit",
		Description: "leave the shell",
		Aliases:     []string{"quit"},
	})
	return err
}
