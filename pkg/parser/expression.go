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
	"github.com/go-yulasm/yulasm/pkg/numlit"
	"github.com/go-yulasm/yulasm/pkg/source"
	"github.com/go-yulasm/yulasm/pkg/token"
)

// parseExpression parses an elementary operation and, if it is immediately
// followed by '(', turns it into a call. This is the full grammar of an
// expression: there is no operator syntax.
//
// A built-in shell produced by parseElementaryOperation is always routed
// through parseCall, even when the current token isn't '(': unlike the
// assignment-target, case-value and bare-statement call sites (which each
// have a more specific diagnostic for a builtin used the wrong way), every
// other context reachable through parseExpression has no such diagnostic of
// its own, so the soft assertion on '(' must be enforced here instead.
func (p *Parser) parseExpression() ast.Expression {
	defer p.enterProduction()()

	expr := p.parseElementaryOperation()

	_, isBuiltinShell := expr.(*ast.FunctionCall)
	if isBuiltinShell || p.tokens.Current() == token.LParen {
		return p.parseCall(expr)
	}

	return expr
}

// parseElementaryOperation is the unified entry for "something that could
// be an identifier, a built-in invocation head, or a literal": it does not
// itself decide whether the result is a call, an assignment target, or a
// bare expression — that is left to the caller.
func (p *Parser) parseElementaryOperation() ast.Expression {
	defer p.enterProduction()()

	switch p.tokens.Current() {
	case token.Identifier, token.Return, token.Byte, token.Bool, token.Address:
		return p.parseIdentifierOrBuiltin()
	case token.StringLiteral:
		return p.parseLiteral(ast.StringLiteral)
	case token.Number:
		return p.parseLiteral(ast.NumberLiteral)
	case token.TrueLiteral, token.FalseLiteral:
		return p.parseBooleanLiteral()
	}

	if p.dialect.Flavour() == dialect.Typed {
		p.fatal(p.tokens.Location(), "Literal or identifier expected.")
	} else {
		p.fatal(p.tokens.Location(), "Literal, identifier or instruction expected.")
	}

	return nil
}

// parseIdentifierOrBuiltin consumes a single identifier-class token. If the
// dialect classifies it as a built-in, an empty-argument FunctionCall shell
// is produced instead of a bare Identifier; parseCall later fills in its
// arguments. Whether the following token is actually '(' is a soft
// assertion left to the caller: a shell immediately followed by '(' becomes
// a real call; a shell used as an assignment target, a case value or a bare
// statement is rejected there with a more specific diagnostic; in any other
// expression context parseExpression hands it to parseCall, whose generic
// "Expected '('." fires.
func (p *Parser) parseIdentifierOrBuiltin() ast.Expression {
	defer p.enterProduction()()

	span := p.tokens.Location()
	lexeme := p.tokens.Literal()
	p.tokens.Advance()

	name := ast.Intern(lexeme)

	if p.dialect.Builtin(lexeme) {
		p.tokens.Expect(token.LParen, false)
		return &ast.FunctionCall{Callee: &ast.Identifier{Name: name, Span: span}, Span: span}
	}

	return &ast.Identifier{Name: name, Span: span}
}

// parseLiteral consumes a string or number literal token. Numbers are
// additionally validated against numlit; in the typed dialect, every
// literal must carry a ":typename" suffix.
func (p *Parser) parseLiteral(kind ast.LiteralKind) *ast.Literal {
	defer p.enterProduction()()

	span := p.tokens.Location()
	lexeme := p.tokens.Literal()

	if kind == ast.NumberLiteral && !numlit.Valid(lexeme) {
		p.fatal(span, "Invalid number literal.")
	}

	p.tokens.Advance()

	lit := &ast.Literal{Kind: kind, Lexeme: lexeme, Span: span}

	if p.dialect.Flavour() == dialect.Typed {
		lit.TypeName = p.parseTypeAnnotation()
		lit.Span = source.NewSpan(span.Begin, p.tokens.EndPosition())
	}

	return lit
}

// parseBooleanLiteral consumes "true" or "false". The loose dialect rejects
// boolean literals outright, since its parent language has its own boolean
// syntax.
func (p *Parser) parseBooleanLiteral() *ast.Literal {
	defer p.enterProduction()()

	span := p.tokens.Location()

	if p.dialect.Flavour() == dialect.Loose {
		p.fatal(span, "True and false are not valid literals.")
	}

	lexeme := p.tokens.Literal()
	p.tokens.Advance()

	lit := &ast.Literal{Kind: ast.BooleanLiteral, Lexeme: lexeme, Span: span}
	lit.TypeName = p.parseTypeAnnotation()
	lit.Span = source.NewSpan(span.Begin, p.tokens.EndPosition())

	return lit
}

// parseTypeAnnotation parses the mandatory ":typename" suffix required by
// the typed dialect.
func (p *Parser) parseTypeAnnotation() ast.Name {
	defer p.enterProduction()()

	p.expect(token.Colon)

	if !isIdentifierClass(p.tokens.Current()) {
		p.fatal(p.tokens.Location(), "Type name expected.")
	}

	name := ast.Intern(p.tokens.Literal())
	p.tokens.Advance()

	return name
}

// parseTypedName parses a single NAME[:typename], used for variable
// declarations, function parameters and function return variables. The
// name must not be a built-in function name.
func (p *Parser) parseTypedName() ast.TypedName {
	defer p.enterProduction()()

	if !isIdentifierClass(p.tokens.Current()) {
		p.fatal(p.tokens.Location(), "Variable name expected.")
	}

	span := p.tokens.Location()
	lexeme := p.tokens.Literal()
	p.checkNotBuiltinIdentifier(lexeme, span)

	name := ast.Intern(lexeme)
	p.tokens.Advance()

	var typeName ast.Name
	if p.dialect.Flavour() == dialect.Typed {
		typeName = p.parseTypeAnnotation()
	}

	return ast.TypedName{Name: name, TypeName: typeName, Span: source.NewSpan(span.Begin, p.tokens.EndPosition())}
}

// parseCall parses the "(" arg, arg, ... ")" tail of a call, given the
// already-parsed front: either a bare Identifier (the common case) or a
// built-in FunctionCall shell produced by parseIdentifierOrBuiltin.
func (p *Parser) parseCall(front ast.Expression) *ast.FunctionCall {
	defer p.enterProduction()()

	var callee *ast.Identifier

	switch e := front.(type) {
	case *ast.Identifier:
		callee = e
	case *ast.FunctionCall:
		callee = e.Callee
	default:
		p.fatal(front.Location(), "Call expected.")
	}

	p.expect(token.LParen)

	var args []ast.Expression

	if p.tokens.Current() != token.RParen {
		args = append(args, p.parseExpression())
		for p.tokens.Current() == token.Comma {
			p.tokens.Advance()
			args = append(args, p.parseExpression())
		}
	}

	p.expect(token.RParen)

	return &ast.FunctionCall{Callee: callee, Args: args, Span: source.NewSpan(callee.Span.Begin, p.tokens.EndPosition())}
}
