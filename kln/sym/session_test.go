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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLines(t *testing.T) {
	var out, errOut bytes.Buffer
	s := NewSession(PGA3, &out, &errOut)
	input := strings.Join([]string{
		"",
		"# points",
		"1 + e12",
		".break",
		"1 + e12",
		"e11",
		".nope",
		"2",
	}, "\n")
	require.NoError(t, s.Run(strings.NewReader(input)))

	assert.Equal(t, "\n# points\n1 + 1 e12\n1\n+ 1 e12\n2\n", out.String())
	assert.Contains(t, errOut.String(), "duplicate blade index")
	assert.Contains(t, errOut.String(), `unknown command ".nope"`)
	assert.True(t, s.BreakLines)
}

func TestSessionCommentVerbatim(t *testing.T) {
	var out, errOut bytes.Buffer
	s := NewSession(PGA3, &out, &errOut)
	require.NoError(t, s.Line("  #  indented\t"))
	assert.Equal(t, "  #  indented\t\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSessionLineErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	s := NewSession(PGA3, &out, &errOut)
	err := s.Line("(1 + e0")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MissingParen, pe.Kind)
	assert.Empty(t, out.String())
	require.NoError(t, s.Line("e0 + 1"))
	assert.Equal(t, "1 + 1 e0\n", out.String())
}
