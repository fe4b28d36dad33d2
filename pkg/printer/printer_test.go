// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-yulasm/yulasm/pkg/ast"
	"github.com/go-yulasm/yulasm/pkg/dialect"
	"github.com/go-yulasm/yulasm/pkg/diag"
	"github.com/go-yulasm/yulasm/pkg/lexer"
	"github.com/go-yulasm/yulasm/pkg/parser"
	"github.com/go-yulasm/yulasm/pkg/source"
)

func mustParse(t *testing.T, src string) *ast.Block {
	t.Helper()

	file := source.NewFile("t.yul", []byte(src))
	sink := diag.NewSink(file)
	d := dialect.NewSet(dialect.Typed, "add", "mul")
	p := parser.New(lexer.New(file), sink, d)

	block, ok := p.Parse(false)
	require.True(t, ok, "unexpected errors: %v", sink.Errors())

	return block
}

func TestPrintThenReparseIsStructurallyIdentical(t *testing.T) {
	srcs := []string{
		"{ }",
		"{ let x:u256 := add(1:u256, 2:u256) }",
		"{ if 1:u256 { let y:u256 } }",
		"{ switch 1:u256 case 1:u256 { } default { } }",
		"{ for { let i:u256 := 0:u256 } 1:u256 { } { break } }",
		"{ function f(a:u256) -> b:u256 { leave } }",
	}

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			first := mustParse(t, src)
			printed := Print(first)

			second := mustParse(t, printed)
			reprinted := Print(second)

			assert.Equal(t, printed, reprinted)
		})
	}
}

func TestPrintRendersCanonicalSpacing(t *testing.T) {
	block := mustParse(t, "{let   x:u256:=add(1:u256,2:u256)}")

	assert.Equal(t, "{ let x:u256 := add(1:u256, 2:u256) }", Print(block))
}
