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

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-yulasm/yulasm/pkg/ast"
	"github.com/go-yulasm/yulasm/pkg/diag"
	"github.com/go-yulasm/yulasm/pkg/dialect"
	"github.com/go-yulasm/yulasm/pkg/lexer"
	"github.com/go-yulasm/yulasm/pkg/source"
)

func parse(t *testing.T, src string, d dialect.Descriptor) (*ast.Block, *diag.DefaultSink) {
	t.Helper()

	file := source.NewFile("t.yul", []byte(src))
	sink := diag.NewSink(file)
	p := New(lexer.New(file), sink, d)

	block, _ := p.Parse(false)

	return block, sink
}

func typedDialect() dialect.Descriptor {
	return dialect.NewSet(dialect.Typed, "add", "mul")
}

func looseDialect() dialect.Descriptor {
	return dialect.NewSet(dialect.Loose, "add", "mul")
}

func TestParseMinimalBlock(t *testing.T) {
	block, sink := parse(t, "{ }", typedDialect())

	require.NotNil(t, block)
	assert.Empty(t, sink.Errors())
	assert.Empty(t, block.Statements)
}

func TestParseVariableDeclarationWithCall(t *testing.T) {
	block, sink := parse(t, "{ let x:u256 := add(1:u256, 2:u256) }", typedDialect())

	require.NotNil(t, block)
	assert.Empty(t, sink.Errors())
	require.Len(t, block.Statements, 1)

	decl, ok := block.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.Intern("x"), decl.Vars[0].Name)
	assert.Equal(t, ast.Intern("u256"), decl.Vars[0].TypeName)

	call, ok := decl.Value.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, ast.Intern("add"), call.Callee.Name)
	require.Len(t, call.Args, 2)
}

func TestParseSwitchWithDefaultLast(t *testing.T) {
	block, sink := parse(t, `{ switch 1:u256 case 1:u256 { } default { } }`, typedDialect())

	require.NotNil(t, block)
	assert.Empty(t, sink.Errors())

	sw, ok := block.Statements[0].(*ast.Switch)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	assert.False(t, sw.Cases[0].IsDefault)
	assert.True(t, sw.Cases[1].IsDefault)
}

func TestParseSwitchRejectsCaseAfterDefault(t *testing.T) {
	block, sink := parse(t, `{ switch 1:u256 default { } case 1:u256 { } }`, typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Case not allowed after default case.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseBreakOutsideForIsRecoverable(t *testing.T) {
	block, sink := parse(t, "{ break }", typedDialect())

	require.NotNil(t, block)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, `Keyword "break" needs to be inside a for-loop body.`, sink.Errors()[0].Message())

	_, ok := block.Statements[0].(*ast.Break)
	assert.True(t, ok)
}

func TestParseFunctionInForInitIsRecoverable(t *testing.T) {
	src := "{ for { function f() { } } 1:u256 { } { } }"
	block, sink := parse(t, src, typedDialect())

	require.NotNil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Functions cannot be defined inside a for-loop init block.", sink.Errors()[0].Message())

	loop, ok := block.Statements[0].(*ast.ForLoop)
	require.True(t, ok)
	require.Len(t, loop.Pre.Statements, 1)
	_, ok = loop.Pre.Statements[0].(*ast.FunctionDefinition)
	assert.True(t, ok)
}

func TestParseAssignmentToBuiltinIsFatal(t *testing.T) {
	block, sink := parse(t, "{ add := 1:u256 }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, `Cannot assign to builtin function "add".`, sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseInvalidNumberLiteralIsFatal(t *testing.T) {
	block, sink := parse(t, "{ let x:u256 := 0x1g:u256 }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Invalid number literal.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseLooseDialectRejectsBooleanLiteral(t *testing.T) {
	block, sink := parse(t, "{ true }", looseDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "True and false are not valid literals.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseLeaveOutsideFunctionIsRecoverable(t *testing.T) {
	block, sink := parse(t, "{ leave }", typedDialect())

	require.NotNil(t, block)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, `Keyword "leave" can only be used inside a function.`, sink.Errors()[0].Message())

	_, ok := block.Statements[0].(*ast.Leave)
	assert.True(t, ok)
}

func TestParseLeaveInsideFunctionIsAccepted(t *testing.T) {
	block, sink := parse(t, "{ function f() { leave } }", typedDialect())

	require.NotNil(t, block)
	assert.Empty(t, sink.Errors())
}

func TestParseLooseDialectBareCallStatement(t *testing.T) {
	block, sink := parse(t, "{ add(1, 2) }", looseDialect())

	require.NotNil(t, block)
	assert.Empty(t, sink.Errors())

	stmt, ok := block.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	_, ok = stmt.Expr.(*ast.FunctionCall)
	assert.True(t, ok)
}

func TestParseOnlyOneDefaultCaseAllowed(t *testing.T) {
	block, sink := parse(t, `{ switch 1:u256 default { } default { } }`, typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Only one default case allowed.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseSwitchWithoutCasesIsFatal(t *testing.T) {
	block, sink := parse(t, `{ switch 1:u256 }`, typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Switch statement without any cases.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseExceedingRecursionDepthIsFatal(t *testing.T) {
	nesting := maxRecursionDepth + 16
	src := strings.Repeat("{ ", nesting) + strings.Repeat("} ", nesting)

	block, sink := parse(t, src, typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Maximum recursion depth reached.", sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseBuiltinNameRejectedAsVariableDeclaration(t *testing.T) {
	block, sink := parse(t, "{ let add:u256 }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, `Cannot use builtin function name "add" as identifier name.`, sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseBuiltinNameRejectedAsFunctionName(t *testing.T) {
	block, sink := parse(t, "{ function add() { } }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, `Cannot use builtin function name "add" as identifier name.`, sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseBuiltinNameRejectedAsFunctionParameter(t *testing.T) {
	block, sink := parse(t, "{ function f(add:u256) { } }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, `Cannot use builtin function name "add" as identifier name.`, sink.Errors()[len(sink.Errors())-1].Message())
}

func TestParseBuiltinIdentifierWithoutCallIsFatalInExpressionContext(t *testing.T) {
	block, sink := parse(t, "{ if add { } }", typedDialect())

	assert.Nil(t, block)
	require.NotEmpty(t, sink.Errors())
	assert.Equal(t, "Expected '('.", sink.Errors()[len(sink.Errors())-1].Message())
}
