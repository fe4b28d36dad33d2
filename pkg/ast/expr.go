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

// LiteralKind distinguishes the three forms a Literal's lexeme may take.
type LiteralKind uint8

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
)

// Literal is a number, string or boolean constant. TypeName is empty unless
// the typed dialect requires (and the parser has validated) an explicit
// type annotation.
type Literal struct {
	Kind     LiteralKind
	Lexeme   string
	TypeName Name
	Span     source.Span
}

// Location implements Node.
func (l *Literal) Location() source.Span { return l.Span }
func (*Literal) isExpression()           {}

// HasType reports whether a type annotation was supplied.
func (l *Literal) HasType() bool { return l.TypeName != "" }

// Identifier is a reference to a variable or, in the loose dialect, to a
// bare built-in opcode name.
type Identifier struct {
	Name Name
	Span source.Span
}

// Location implements Node.
func (i *Identifier) Location() source.Span { return i.Span }
func (*Identifier) isExpression()           {}

// FunctionCall invokes a built-in or user-defined function, either as an
// expression (it must then return exactly one value) or as a statement (it
// may then return any number of values, including zero).
type FunctionCall struct {
	Callee *Identifier
	Args   []Expression
	Span   source.Span
}

// Location implements Node.
func (c *FunctionCall) Location() source.Span { return c.Span }
func (*FunctionCall) isExpression()           {}
func (*FunctionCall) isStatement()            {}
