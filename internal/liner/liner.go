// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

// Package liner wraps Peter Harris' "Go line editor" (via the
// platinasystems fork) as an interactive prompter with history and
// command-name completion backed by the registry.
package liner

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/liner"
	"github.com/platinasystems/log"

	"github.com/ImaMapleTree/simply-cli/cli"
	"github.com/ImaMapleTree/simply-cli/internal/notliner"
)

type Prompter struct {
	history struct {
		buf   *bytes.Buffer
		lines []string
		i     int
	}
	histfile string
	fallback *notliner.Prompter
	c        *cli.CLI
	s        *liner.State
}

// New returns an interactive Prompter completing command names from c.
// A non-empty histfile is loaded now and written back on Close. Without
// a tty on stdin the Prompter degrades to a plain scanner.
func New(c *cli.CLI, histfile string) *Prompter {
	p := new(Prompter)
	p.c = c
	p.history.buf = new(bytes.Buffer)
	p.history.lines = make([]string, 0, 1<<6)
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		p.fallback = notliner.New(os.Stdin, os.Stdout)
		return p
	}
	p.s = liner.NewLiner()
	p.s.SetCompleter(p.complete)
	p.histfile = histfile
	if len(histfile) > 0 {
		if f, err := os.Open(histfile); err == nil {
			p.s.ReadHistory(f)
			f.Close()
		}
	}
	return p
}

func (p *Prompter) Close() error {
	if p.s == nil {
		return nil
	}
	if len(p.histfile) > 0 {
		f, err := os.Create(p.histfile)
		if err == nil {
			_, err = p.s.WriteHistory(f)
			f.Close()
		}
		if err != nil {
			log.Print("history: ", err)
		}
	}
	return p.s.Close()
}

// Returns all completions of the given command line: root names for the
// leading word, subcommand names once the leading words resolve.
func (p *Prompter) complete(line string) (lines []string) {
	lsi := strings.LastIndex(line, " ")
	if lsi < 0 {
		for _, cmd := range p.c.Commands() {
			if strings.HasPrefix(cmd.String(), line) {
				lines = append(lines, cmd.String())
			}
		}
		return
	}
	words := strings.Fields(line[:lsi])
	if len(words) == 0 {
		return
	}
	node := p.c.Find(words[0])
	for _, word := range words[1:] {
		if node == nil {
			return
		}
		node = node.FindSubcommand(word)
	}
	if node == nil {
		return
	}
	for _, sub := range node.Subcommands() {
		if strings.HasPrefix(sub.String(), line[lsi+1:]) {
			lines = append(lines, line[:lsi+1]+sub.String())
		}
	}
	return
}

func (p *Prompter) Prompt(prompt string) (string, error) {
	if p.fallback != nil {
		return p.fallback.Prompt(prompt)
	}
	if len(p.history.lines) > 0 {
		p.history.buf.Reset()
		if len(p.history.lines) < cap(p.history.lines) {
			for i := 0; i < p.history.i; i++ {
				fmt.Fprintln(p.history.buf, p.history.lines[i])
			}
		} else {
			for i := p.history.i + 1; ; i++ {
				i &= cap(p.history.lines) - 1
				if i == p.history.i {
					break
				}
				fmt.Fprintln(p.history.buf, p.history.lines[i])
			}
		}
		p.s.ReadHistory(p.history.buf)
	}
	line, err := p.s.Prompt(prompt)
	if err == nil {
		if len(p.history.lines) < cap(p.history.lines) {
			p.history.lines = append(p.history.lines, line)
		} else {
			p.history.lines[p.history.i] = line
		}
		p.history.i++
		p.history.i &= cap(p.history.lines) - 1
	} else if err == liner.ErrNotTerminalOutput {
		p.fallback = notliner.New(os.Stdin, os.Stdout)
		line, err = p.fallback.Prompt(prompt)
	}
	return line, err
}
