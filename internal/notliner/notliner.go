// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

// Package notliner is the prompter used when line editing is
// unavailable or unwanted: sourced scripts, pipes, and ttys liner
// cannot drive. It reads raw lines and, at most, echoes the prompt.
package notliner

import (
	"bufio"
	"fmt"
	"io"
)

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter scanning lines from in. The prompt is written
// to out before each read; a nil out suppresses it, which is what a
// sourced script wants.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Close satisfies the shell's prompter lifecycle; there is nothing to
// release here.
func (p *Prompter) Close() error { return nil }

// Prompt returns the next line from the source, without its newline.
// An exhausted source yields io.EOF so the host loop ends the same way
// an interactive session does.
func (p *Prompter) Prompt(prompt string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, prompt)
	}
	if p.in.Scan() {
		return p.in.Text(), nil
	}
	if err := p.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
