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
	"github.com/go-yulasm/yulasm/pkg/ast"
	"github.com/go-yulasm/yulasm/pkg/dialect"
	"github.com/go-yulasm/yulasm/pkg/source"
	"github.com/go-yulasm/yulasm/pkg/token"
)

// parseBlock expects '{', then repeatedly parses statements until '}'. Its
// location starts at '{' and ends one position past '}'.
func (p *Parser) parseBlock() *ast.Block {
	defer p.enterProduction()()

	begin := p.expect(token.LBrace)

	var stmts []ast.Statement

	for p.tokens.Current() != token.RBrace && p.tokens.Current() != token.EOS {
		stmts = append(stmts, p.parseStatement())
	}

	end := p.expect(token.RBrace)

	return &ast.Block{Statements: stmts, Span: source.NewSpan(begin.Span.Begin, end.Span.End)}
}

// parseStatement dispatches on the current token per the statement table:
// most keywords name their own production directly; anything else falls
// through to an elementary operation, disambiguated afterwards into a call,
// an assignment, or (loose dialect only) a bare expression statement.
func (p *Parser) parseStatement() ast.Statement {
	defer p.enterProduction()()

	switch p.tokens.Current() {
	case token.Let:
		return p.parseVariableDeclaration()
	case token.Function:
		return p.parseFunctionDefinition()
	case token.LBrace:
		return p.parseBlock()
	case token.If:
		return p.parseIf()
	case token.Switch:
		return p.parseSwitch()
	case token.For:
		return p.parseForLoop()
	case token.Break:
		return p.parseBreak()
	case token.Continue:
		return p.parseContinue()
	}

	if p.tokens.Current() == token.Identifier && p.tokens.Literal() == "leave" {
		return p.parseLeave()
	}

	return p.parseElementaryStatement()
}

// parseElementaryStatement parses an elementary operation and then
// disambiguates it by peeking the following token: '(' makes it a call
// statement, ',' or ':=' makes it the start of an assignment, and anything
// else is only legal in the loose dialect, where a bare identifier or
// literal is permitted as a statement on its own.
func (p *Parser) parseElementaryStatement() ast.Statement {
	defer p.enterProduction()()

	expr := p.parseElementaryOperation()

	switch p.tokens.Current() {
	case token.LParen:
		call := p.parseCall(expr)
		return &ast.ExpressionStatement{Expr: call, Span: call.Span}
	case token.Comma, token.AssemblyAssign:
		return p.parseAssignment(expr)
	}

	if p.dialect.Flavour() == dialect.Loose {
		switch e := expr.(type) {
		case *ast.Identifier:
			return &ast.ExpressionStatement{Expr: e, Span: e.Span}
		case *ast.Literal:
			return &ast.ExpressionStatement{Expr: e, Span: e.Span}
		}
	}

	p.fatal(p.tokens.Location(), "Call or assignment expected.")

	return nil
}

// parseVariableDeclaration parses "let" followed by a comma-separated list
// of typed names and an optional ":=" initializer.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	defer p.enterProduction()()

	begin := p.expect(token.Let)

	vars := []ast.TypedName{p.parseTypedName()}
	for p.tokens.Current() == token.Comma {
		p.tokens.Advance()
		vars = append(vars, p.parseTypedName())
	}

	var value ast.Expression

	end := p.tokens.EndPosition()

	if p.tokens.Current() == token.AssemblyAssign {
		p.tokens.Advance()

		value = p.parseExpression()
		end = p.tokens.EndPosition()
	}

	return &ast.VariableDeclaration{Vars: vars, Value: value, Span: source.NewSpan(begin.Span.Begin, end)}
}

// parseAssignment parses the tail of an assignment statement: first is the
// elementary operation already consumed by the caller, which must resolve
// to a non-builtin identifier exactly like every subsequent comma-separated
// target.
//
// Which of the two "must precede" messages applies to an invalid first
// target is not pinned by a worked example; this resolves it by looking at
// what immediately follows the first element — a comma implies the writer
// intended a multiple assignment, anything else implies a simple one.
func (p *Parser) parseAssignment(first ast.Expression) ast.Statement {
	defer p.enterProduction()()

	viaComma := p.tokens.Current() == token.Comma

	targets := []*ast.Identifier{p.checkAssignTarget(first, viaComma)}

	for p.tokens.Current() == token.Comma {
		p.tokens.Advance()

		next := p.parseElementaryOperation()
		targets = append(targets, p.checkAssignTarget(next, true))
	}

	if _, ok := p.tokens.Expect(token.AssemblyAssign, true); !ok {
		p.fatal(p.tokens.Location(), `Variable name must precede ":=" in assignment.`)
	}

	value := p.parseExpression()

	return &ast.Assignment{
		Targets: targets,
		Value:   value,
		Span:    source.NewSpan(targets[0].Span.Begin, p.tokens.EndPosition()),
	}
}

func (p *Parser) checkAssignTarget(e ast.Expression, viaComma bool) *ast.Identifier {
	if call, ok := e.(*ast.FunctionCall); ok {
		p.fatal(call.Span, `Cannot assign to builtin function "%s".`, call.Callee.Name)
	}

	ident, ok := e.(*ast.Identifier)
	if !ok {
		if viaComma {
			p.fatal(e.Location(), `Variable name must precede "," in multiple assignment.`)
		}

		p.fatal(e.Location(), `Variable name must precede ":=" in assignment.`)
	}

	return ident
}

// parseIf parses "if" <expression> <block>.
func (p *Parser) parseIf() *ast.If {
	defer p.enterProduction()()

	begin := p.expect(token.If)
	cond := p.parseExpression()
	body := p.parseBlock()

	return &ast.If{Condition: cond, Body: body, Span: source.NewSpan(begin.Span.Begin, body.Span.End)}
}

// parseSwitch parses "switch" <expression> followed by zero or more "case"
// clauses and an optional trailing "default" clause.
func (p *Parser) parseSwitch() *ast.Switch {
	defer p.enterProduction()()

	begin := p.expect(token.Switch)
	scrutinee := p.parseExpression()

	var (
		cases      []*ast.Case
		sawDefault bool
	)

	for p.tokens.Current() == token.Case || p.tokens.Current() == token.Default {
		if p.tokens.Current() == token.Default {
			if sawDefault {
				p.fatal(p.tokens.Location(), "Only one default case allowed.")
			}

			sawDefault = true

			cases = append(cases, p.parseDefaultCase())

			continue
		}

		if sawDefault {
			p.fatal(p.tokens.Location(), "Case not allowed after default case.")
		}

		cases = append(cases, p.parseCase())
	}

	if len(cases) == 0 {
		p.fatal(p.tokens.Location(), "Switch statement without any cases.")
	}

	end := cases[len(cases)-1].Span.End

	return &ast.Switch{Scrutinee: scrutinee, Cases: cases, Span: source.NewSpan(begin.Span.Begin, end)}
}

// parseCase parses "case" <literal> <block>.
func (p *Parser) parseCase() *ast.Case {
	defer p.enterProduction()()

	begin := p.expect(token.Case)

	litExpr := p.parseElementaryOperation()

	lit, ok := litExpr.(*ast.Literal)
	if !ok {
		p.fatal(litExpr.Location(), "Literal expected.")
	}

	body := p.parseBlock()

	return &ast.Case{Value: lit, Body: body, Span: source.NewSpan(begin.Span.Begin, body.Span.End)}
}

// parseDefaultCase parses "default" <block>.
func (p *Parser) parseDefaultCase() *ast.Case {
	defer p.enterProduction()()

	begin := p.expect(token.Default)
	body := p.parseBlock()

	return &ast.Case{IsDefault: true, Body: body, Span: source.NewSpan(begin.Span.Begin, body.Span.End)}
}

// parseForLoop parses "for" <pre-block> <condition> <post-block>
// <body-block>, in that strict order, with no punctuation between the
// blocks and the condition expression.
func (p *Parser) parseForLoop() *ast.ForLoop {
	defer p.enterProduction()()

	begin := p.expect(token.For)

	pre := withForLoopComponent(p, componentPre, p.parseBlock)
	cond := withForLoopComponent(p, componentNone, p.parseExpression)
	post := withForLoopComponent(p, componentPost, p.parseBlock)
	body := withForLoopComponent(p, componentBody, p.parseBlock)

	return &ast.ForLoop{
		Pre:       pre,
		Condition: cond,
		Post:      post,
		Body:      body,
		Span:      source.NewSpan(begin.Span.Begin, body.Span.End),
	}
}

// checkLoopContext enforces the break/continue placement rules relative to
// the innermost for-loop: allowed in Body, rejected (recoverably) in Pre,
// Post, or outside any loop.
func (p *Parser) checkLoopContext(keyword string, span source.Span) {
	switch p.currentForLoopComponent {
	case componentNone:
		p.sink.SyntaxError(span, `Keyword "`+keyword+`" needs to be inside a for-loop body.`)
	case componentPre:
		p.sink.SyntaxError(span, `Keyword "`+keyword+`" in for-loop init block is not allowed.`)
	case componentPost:
		p.sink.SyntaxError(span, `Keyword "`+keyword+`" in for-loop post block is not allowed.`)
	case componentBody:
		// allowed
	}
}

// parseBreak parses "break", recording a recoverable error if it is
// misplaced. The Break node is still produced either way.
func (p *Parser) parseBreak() *ast.Break {
	defer p.enterProduction()()

	tok := p.expect(token.Break)
	p.checkLoopContext("break", tok.Span)

	return &ast.Break{Span: tok.Span}
}

// parseContinue parses "continue", subject to the same placement rules as
// Break.
func (p *Parser) parseContinue() *ast.Continue {
	defer p.enterProduction()()

	tok := p.expect(token.Continue)
	p.checkLoopContext("continue", tok.Span)

	return &ast.Continue{Span: tok.Span}
}

// parseLeave parses the identifier "leave", recording a recoverable error
// if it appears outside a function body.
func (p *Parser) parseLeave() *ast.Leave {
	defer p.enterProduction()()

	span := p.tokens.Location()
	p.tokens.Advance()

	if !p.insideFunction {
		p.sink.SyntaxError(span, `Keyword "leave" can only be used inside a function.`)
	}

	return &ast.Leave{Span: span}
}

// parseFunctionDefinition parses "function" NAME "(" params ")" ["->"
// returns] body. Defining a function inside a for-loop's init block is
// recoverable, not fatal: parsing continues and the definition is still
// produced.
func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	defer p.enterProduction()()

	if p.currentForLoopComponent == componentPre {
		p.sink.SyntaxError(p.tokens.Location(), "Functions cannot be defined inside a for-loop init block.")
	}

	begin := p.expect(token.Function)

	if !isIdentifierClass(p.tokens.Current()) {
		p.fatal(p.tokens.Location(), "Function name expected.")
	}

	nameSpan := p.tokens.Location()
	lexeme := p.tokens.Literal()
	p.checkNotBuiltinIdentifier(lexeme, nameSpan)

	name := ast.Intern(lexeme)
	p.tokens.Advance()

	p.expect(token.LParen)

	var params []ast.TypedName

	if p.tokens.Current() != token.RParen {
		params = append(params, p.parseTypedName())
		for p.tokens.Current() == token.Comma {
			p.tokens.Advance()
			params = append(params, p.parseTypedName())
		}
	}

	p.expect(token.RParen)

	var returns []ast.TypedName

	if p.tokens.Current() == token.Sub {
		p.tokens.Advance()
		p.expect(token.GreaterThan)

		returns = append(returns, p.parseTypedName())
		for p.tokens.Current() == token.Comma {
			p.tokens.Advance()
			returns = append(returns, p.parseTypedName())
		}
	}

	body := p.withFunctionScope(p.parseBlock)

	return &ast.FunctionDefinition{
		Name:    name,
		Params:  params,
		Returns: returns,
		Body:    body,
		Span:    source.NewSpan(begin.Span.Begin, body.Span.End),
	}
}
