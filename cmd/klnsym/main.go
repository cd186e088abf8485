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

// Command klnsym is an interactive calculator for symbolic geometric
// algebra. Expressions are polynomials over blades e0, e1, ... with the
// operators + - * ^ & | and ~ (reverse); juxtaposition multiplies.
//
// Usage:
//
//	klnsym                      # REPL over PGA(3,0,1)
//	klnsym --signature 3,0,0    # REPL over the Euclidean algebra of R³
//	klnsym eval 'e1 * e2' 'a*e1 ^ b*e2'
//	klnsym < session.txt        # non-interactive
//
// Settings come from --config (YAML), KLNSYM_* environment variables and
// flags, later sources overriding earlier ones.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-klein/kln/sym"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "klnsym",
		Short:        "Symbolic geometric algebra calculator",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, alg, err := resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.InOrStdin() == os.Stdin && readline.DefaultIsTerminal() {
				return repl(cfg, alg)
			}
			s := sym.NewSession(alg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			s.BreakLines = cfg.BreakLines
			return s.Run(cmd.InOrStdin())
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.String("config", getEnvStr("KLNSYM_CONFIG", ""), "YAML config file")
	flags.String("prompt", "", "REPL prompt")
	flags.String("history", "", "history file (empty disables history)")
	flags.Bool("break-lines", false, "print one term per line")
	flags.String("signature", "", "algebra signature p,q,r (positive, negative, null)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate expressions and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, alg, err := resolve(cmd)
			if err != nil {
				return err
			}
			return eval(cmd.OutOrStdout(), alg, cfg.BreakLines, args)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "klnsym v%s\n", version)
		},
	})
	return rootCmd
}

// resolve loads the config file and environment, then applies any flags
// set on the command line.
func resolve(cmd *cobra.Command) (*Config, sym.Algebra, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, sym.Algebra{}, err
	}
	if flags.Changed("prompt") {
		cfg.Prompt, _ = flags.GetString("prompt")
	}
	if flags.Changed("history") {
		cfg.History, _ = flags.GetString("history")
	}
	if flags.Changed("break-lines") {
		cfg.BreakLines, _ = flags.GetBool("break-lines")
	}
	if flags.Changed("signature") {
		cfg.Signature, _ = flags.GetString("signature")
	}
	alg, err := cfg.Algebra()
	if err != nil {
		return nil, sym.Algebra{}, err
	}
	return cfg, alg, nil
}

// eval prints the value of each expression, stopping at the first error.
func eval(w io.Writer, alg sym.Algebra, breakLines bool, exprs []string) error {
	for _, src := range exprs {
		v, err := sym.Parse(src, alg)
		if err != nil {
			return fmt.Errorf("%s: %w", strings.TrimSpace(src), err)
		}
		fmt.Fprintln(w, v.Format(breakLines))
	}
	return nil
}
