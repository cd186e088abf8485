// Copyright 2025 go-klein Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sym

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Session evaluates REPL input one line at a time:
//
//   - a blank line prints a blank line
//   - a line whose first non-blank character is # is echoed unchanged
//   - a line starting with . is a command; .break toggles BreakLines
//   - anything else is parsed as an expression and its value printed
//
// Errors go to the error writer and never end the session.
type Session struct {
	// BreakLines prints each term of a result on its own line.
	BreakLines bool

	alg    Algebra
	out    io.Writer
	errOut io.Writer
}

// NewSession returns a session over alg writing results to out and errors
// to errOut.
func NewSession(alg Algebra, out, errOut io.Writer) *Session {
	return &Session{alg: alg, out: out, errOut: errOut}
}

// Algebra returns the algebra expressions are evaluated in.
func (s *Session) Algebra() Algebra { return s.alg }

// Line processes one line of input and returns the evaluation error, if
// any, after reporting it.
func (s *Session) Line(line string) error {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		fmt.Fprintln(s.out)
		return nil
	case strings.HasPrefix(trimmed, "#"):
		fmt.Fprintln(s.out, line)
		return nil
	case strings.HasPrefix(trimmed, "."):
		return s.command(trimmed)
	}
	v, err := Parse(trimmed, s.alg)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return err
	}
	fmt.Fprintln(s.out, v.Format(s.BreakLines))
	return nil
}

func (s *Session) command(cmd string) error {
	switch cmd {
	case ".break":
		s.BreakLines = !s.BreakLines
		return nil
	case ".help":
		fmt.Fprintln(s.out, "commands: .break (toggle one term per line), .help")
		return nil
	}
	err := fmt.Errorf("unknown command %q", cmd)
	fmt.Fprintln(s.errOut, err)
	return err
}

// Run feeds every line of r to Line and returns the first read error.
// Evaluation errors are reported and skipped.
func (s *Session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		_ = s.Line(sc.Text())
	}
	return sc.Err()
}
