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

// Package lex provides a tiny, rule-table based tokeniser generic over the
// underlying item type (almost always rune).  It has no notion of what a
// "token kind" means for any particular language; callers supply that via
// the tag passed to Rule.
package lex

import "github.com/go-yulasm/yulasm/pkg/source"

// Token associates a tag (an opaque, caller-defined token kind) with the
// span of characters in the original input that produced it.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates a scanner with the tag it should produce when it
// matches.
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching items to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer tokenises a fixed input sequence against an ordered list of rules.
// Rules are tried in order at each position; the first to match wins, so
// callers should list longer/more specific rules (keywords) before general
// ones (identifiers).
type Lexer[T any] struct {
	items  []T
	index  int
	rules  []LexRule[T]
	buffer []Token
}

// NewLexer constructs a new lexer over a fixed input with a given ordered
// set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the current item offset within the input.
func (l *Lexer[T]) Index() uint {
	return uint(l.index)
}

// Remaining reports how many items are left unconsumed.
func (l *Lexer[T]) Remaining() uint {
	return uint(max(0, len(l.items)-l.index))
}

// HasNext checks whether there is a token waiting to be consumed.
func (l *Lexer[T]) HasNext() bool {
	l.scan()
	return len(l.buffer) > 0
}

// Next returns the next token and advances the lexer past it.
func (l *Lexer[T]) Next() Token {
	next := l.buffer[0]
	l.buffer = l.buffer[1:]
	//
	if l.index == len(l.items) {
		// EOF condition
		l.index++
	} else {
		l.index = next.Span.End
	}
	//
	return next
}

// Collect tokenises every remaining item in one pass.
func (l *Lexer[T]) Collect() []Token {
	var tokens []Token

	for l.HasNext() {
		tokens = append(tokens, l.Next())
	}

	return tokens
}

func (l *Lexer[T]) scan() {
	if len(l.buffer) != 0 || l.index > len(l.items) {
		return
	}

	for _, r := range l.rules {
		if n := r.scanner(l.items[l.index:]); n > 0 {
			end := min(len(l.items), l.index+int(n))
			span := source.NewSpan(l.index, end)
			l.buffer = append(l.buffer, Token{r.tag, span})

			return
		}
	}
}
