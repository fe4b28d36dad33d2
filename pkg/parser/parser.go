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

// Package parser is a recursive-descent parser for the inline-assembly
// language: a block-structured statement language with two dialects (loose,
// where bare identifiers may resolve to opcodes, and typed, where every
// literal and declared name carries an explicit type annotation).
//
// Fatal errors unwind the whole parse via panic/recover, the same way
// text/template/parse escapes deeply nested productions without threading
// an error return through every call; recoverable errors simply accumulate
// in the diag.Sink alongside the AST that is still produced around them.
package parser

import (
	"fmt"

	"github.com/go-yulasm/yulasm/pkg/ast"
	"github.com/go-yulasm/yulasm/pkg/diag"
	"github.com/go-yulasm/yulasm/pkg/dialect"
	"github.com/go-yulasm/yulasm/pkg/source"
	"github.com/go-yulasm/yulasm/pkg/token"
)

// maxRecursionDepth bounds both stack usage and pathological nesting. 1024
// matches the typical bound the grammar's own recursion guard documents.
const maxRecursionDepth = 1024

// forLoopComponent is the lexically enclosing position relative to the
// innermost for-loop currently being parsed.
type forLoopComponent uint8

const (
	componentNone forLoopComponent = iota
	componentPre
	componentPost
	componentBody
)

// Parser holds all of the mutable context a parse needs. A Parser is not
// safe for concurrent use, nor is it reentrant: it owns unshared references
// to its token stream, sink and dialect for the duration of a single Parse
// call.
type Parser struct {
	tokens  token.Interface
	sink    diag.Sink
	dialect dialect.Descriptor

	recursionDepth          int
	insideFunction          bool
	currentForLoopComponent forLoopComponent
}

// New constructs a parser over the given token stream, reporting to sink
// and classifying names against the given dialect descriptor.
func New(tokens token.Interface, sink diag.Sink, d dialect.Descriptor) *Parser {
	return &Parser{tokens: tokens, sink: sink, dialect: d}
}

// Parse parses a single top-level block. If reuseScanner is false, the
// token stream must be exhausted immediately after the block's closing
// brace. On fatal error, ok is false and block is nil; at least one
// diagnostic is guaranteed to have been recorded in the sink.
func (p *Parser) Parse(reuseScanner bool) (block *ast.Block, ok bool) {
	p.recursionDepth = 0
	p.insideFunction = false
	p.currentForLoopComponent = componentNone

	restore := p.tokens.SetPeriodInIdentifier(true)
	defer restore()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if _, isFatal := r.(diag.Fatal); isFatal {
			if len(p.sink.Errors()) == 0 {
				panic("fatal parse unwound without a recorded diagnostic")
			}

			block, ok = nil, false

			return
		}

		panic(r)
	}()

	block = p.parseBlock()

	if !reuseScanner {
		if _, matched := p.tokens.Expect(token.EOS, false); !matched {
			p.fatal(p.tokens.Location(), "Expected end of source.")
		}
	}

	return block, true
}

// enterProduction increments the recursion-depth counter and returns a
// function which decrements it again; callers defer the returned function
// immediately on entry to every recursive grammar production.
func (p *Parser) enterProduction() func() {
	p.recursionDepth++
	if p.recursionDepth > maxRecursionDepth {
		p.fatal(p.tokens.Location(), "Maximum recursion depth reached.")
	}

	return func() { p.recursionDepth-- }
}

// fatal records a fatal diagnostic and unwinds the entire parse. It never
// returns; callers still need an explicit statement after calling it to
// satisfy Go's control-flow requirements.
func (p *Parser) fatal(span source.Span, format string, args ...any) {
	p.sink.FatalParserError(span, fmt.Sprintf(format, args...))
}

// expect consumes the current token if it has the given kind, or raises a
// fatal error naming the expected kind. Used for generic grammar structure
// (braces, parens, commas) whose mismatch wording isn't otherwise pinned by
// a specific rule.
func (p *Parser) expect(kind token.Kind) token.Token {
	tok, ok := p.tokens.Expect(kind, true)
	if !ok {
		p.fatal(p.tokens.Location(), "Expected %s.", token.KindName(kind))
	}

	return tok
}

// checkNotBuiltinIdentifier fatals if name is a built-in function in the
// current dialect. Applied everywhere a new identifier name is declared
// rather than referenced: variable names, function parameters, function
// return variables, and the function's own name.
func (p *Parser) checkNotBuiltinIdentifier(name string, span source.Span) {
	if p.dialect.Builtin(name) {
		p.fatal(span, `Cannot use builtin function name "%s" as identifier name.`, name)
	}
}

// isIdentifierClass reports whether kind is one of the tokens the grammar
// treats as identifier-shaped: a plain identifier, or one of the
// soft-reserved words that double as built-in opcode names.
func isIdentifierClass(kind token.Kind) bool {
	switch kind {
	case token.Identifier, token.Return, token.Byte, token.Bool, token.Address:
		return true
	default:
		return false
	}
}

// withForLoopComponent runs fn with currentForLoopComponent set to c,
// restoring the previous value on every exit path including a fatal
// unwind.
func withForLoopComponent[T any](p *Parser, c forLoopComponent, fn func() T) T {
	previous := p.currentForLoopComponent
	p.currentForLoopComponent = c

	defer func() { p.currentForLoopComponent = previous }()

	return fn()
}

// withFunctionScope runs fn as the body of a function definition: no
// enclosing for-loop component is visible inside it, and inside_function is
// true for its duration.
func (p *Parser) withFunctionScope(fn func() *ast.Block) *ast.Block {
	prevComponent, prevInside := p.currentForLoopComponent, p.insideFunction
	p.currentForLoopComponent, p.insideFunction = componentNone, true

	defer func() {
		p.currentForLoopComponent, p.insideFunction = prevComponent, prevInside
	}()

	return fn()
}
