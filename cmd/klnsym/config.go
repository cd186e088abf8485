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
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-klein/kln/sym"
)

// Config holds the REPL settings. Values are layered, each overriding the
// previous: defaults, the YAML file, KLNSYM_* environment variables, then
// command-line flags.
type Config struct {
	Prompt     string `yaml:"prompt"`
	History    string `yaml:"history"`
	BreakLines bool   `yaml:"break_lines"`
	Signature  string `yaml:"signature"`
}

// DefaultConfig returns the built-in settings: PGA(3,0,1) with no history
// file.
func DefaultConfig() *Config {
	return &Config{Prompt: "> ", Signature: "3,0,1"}
}

// LoadConfig reads path over the defaults and applies the environment. An
// empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Prompt = getEnvStr("KLNSYM_PROMPT", cfg.Prompt)
	cfg.History = getEnvStr("KLNSYM_HISTORY", cfg.History)
	cfg.BreakLines = getEnvBool("KLNSYM_BREAK_LINES", cfg.BreakLines)
	cfg.Signature = getEnvStr("KLNSYM_SIGNATURE", cfg.Signature)
}

// Algebra parses the signature "p,q,r".
func (c *Config) Algebra() (sym.Algebra, error) {
	return ParseSignature(c.Signature)
}

// ParseSignature parses "p,q,r" into a validated algebra.
func ParseSignature(s string) (sym.Algebra, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return sym.Algebra{}, fmt.Errorf("signature %q: want p,q,r", s)
	}
	var n [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return sym.Algebra{}, fmt.Errorf("signature %q: %w", s, err)
		}
		n[i] = v
	}
	alg := sym.Algebra{P: n[0], Q: n[1], R: n[2]}
	if err := alg.Validate(); err != nil {
		return sym.Algebra{}, err
	}
	return alg, nil
}

func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
