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

package main

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ajroetker/go-klein/kln/sym"
)

// repl reads lines interactively until EOF or an interrupt on an empty
// line. Results go to stdout, errors to stderr through the line editor so
// they do not clobber the prompt.
func repl(cfg *Config, alg sym.Algebra) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.History,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())
	log.Printf("klnsym %s, algebra %s, .help for commands", version, alg)

	s := sym.NewSession(alg, rl.Stdout(), rl.Stderr())
	s.BreakLines = cfg.BreakLines
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == ".quit" {
			return nil
		}
		_ = s.Line(line)
	}
}
