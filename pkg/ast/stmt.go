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

package ast

import "github.com/go-yulasm/yulasm/pkg/source"

// Block is a brace-delimited sequence of statements and the unit of scope:
// names declared inside a Block are not visible outside it.
type Block struct {
	Statements []Statement
	Span       source.Span
}

func (b *Block) Location() source.Span { return b.Span }
func (*Block) isStatement()            {}

// VariableDeclaration introduces one or more new names, optionally
// initialized from a single right-hand-side expression (multi-value only
// when more than one name is declared).
type VariableDeclaration struct {
	Vars  []TypedName
	Value Expression // nil if no initializer was written
	Span  source.Span
}

func (v *VariableDeclaration) Location() source.Span { return v.Span }
func (*VariableDeclaration) isStatement()            {}

// Assignment rebinds one or more already-declared names to the value(s) of
// an expression.
type Assignment struct {
	Targets []*Identifier
	Value   Expression
	Span    source.Span
}

func (a *Assignment) Location() source.Span { return a.Span }
func (*Assignment) isStatement()            {}

// If runs Body when Condition evaluates to a nonzero value. There is no
// else branch; chained conditionals are written as consecutive If
// statements.
type If struct {
	Condition Expression
	Body      *Block
	Span      source.Span
}

func (i *If) Location() source.Span { return i.Span }
func (*If) isStatement()            {}

// Case is one arm of a Switch: either a literal to match against, or the
// default arm (IsDefault true, Value nil). The default arm, if present,
// must be the last case listed.
type Case struct {
	Value     *Literal
	IsDefault bool
	Body      *Block
	Span      source.Span
}

func (c *Case) Location() source.Span { return c.Span }

// Switch evaluates Scrutinee once and runs the body of the first matching
// Case, or the default case if none of the literal cases match and a
// default was supplied. At least one case (literal or default) is
// required; case values must be distinct.
type Switch struct {
	Scrutinee Expression
	Cases     []*Case
	Span      source.Span
}

func (s *Switch) Location() source.Span { return s.Span }
func (*Switch) isStatement()            {}

// ForLoop is the three-component loop: Pre runs once before the first
// condition check and may declare variables visible to Condition, Post and
// Body; Post runs after each iteration of Body, in the scope introduced by
// Pre.
type ForLoop struct {
	Pre       *Block
	Condition Expression
	Post      *Block
	Body      *Block
	Span      source.Span
}

func (f *ForLoop) Location() source.Span { return f.Span }
func (*ForLoop) isStatement()            {}

// FunctionDefinition declares a named, callable unit of code. Function
// definitions do not capture variables from any enclosing scope; the only
// names visible inside Body are Params, Returns and names declared within
// Body itself.
type FunctionDefinition struct {
	Name    Name
	Params  []TypedName
	Returns []TypedName
	Body    *Block
	Span    source.Span
}

func (f *FunctionDefinition) Location() source.Span { return f.Span }
func (*FunctionDefinition) isStatement()            {}

// Break exits the nearest enclosing for-loop body. Valid only directly or
// transitively within a for-loop's Body component, not within its Pre or
// Post components, and not across a function-definition boundary.
type Break struct {
	Span source.Span
}

func (b *Break) Location() source.Span { return b.Span }
func (*Break) isStatement()            {}

// Continue skips to the Post component of the nearest enclosing for-loop.
// Subject to the same contextual restrictions as Break.
type Continue struct {
	Span source.Span
}

func (c *Continue) Location() source.Span { return c.Span }
func (*Continue) isStatement()            {}

// Leave returns from the nearest enclosing function definition immediately,
// running none of the statements that follow it. Valid only within a
// function body.
type Leave struct {
	Span source.Span
}

func (l *Leave) Location() source.Span { return l.Span }
func (*Leave) isStatement()            {}

// ExpressionStatement is an expression used as a statement: a call made for
// its side effects, with any returned values discarded, or, in the loose
// dialect only, a bare identifier or literal.
type ExpressionStatement struct {
	Expr Expression
	Span source.Span
}

func (e *ExpressionStatement) Location() source.Span { return e.Span }
func (*ExpressionStatement) isStatement()            {}
