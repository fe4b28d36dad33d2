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

// Package lexer is a concrete token.Interface backed by the generic
// rule-table scanner in pkg/source/lex. Unlike a keyword-per-rule table, it
// scans the whole run of an identifier first and classifies it against a
// keyword table afterwards — "returndatasize" must not be split into the
// keyword "return" followed by an identifier "datasize".
package lexer

import (
	"github.com/go-yulasm/yulasm/pkg/source"
	"github.com/go-yulasm/yulasm/pkg/source/lex"
	"github.com/go-yulasm/yulasm/pkg/token"
)

// Raw tags used internally before classification. They are chosen well
// outside the range of token.Kind values so a cast back is unambiguous.
const (
	rawWhitespace uint = 1 << 20
	rawComment    uint = 1<<20 + 1
	rawIdentifier uint = 1<<20 + 2
	rawEOF        uint = 1<<20 + 3
)

// keywords classifies an identifier-shaped lexeme as a reserved word, if it
// is one. "leave" is deliberately absent: it is recognized contextually by
// the parser, not reserved by the lexer.
var keywords = map[string]token.Kind{
	"let":      token.Let,
	"function": token.Function,
	"if":       token.If,
	"switch":   token.Switch,
	"case":     token.Case,
	"default":  token.Default,
	"for":      token.For,
	"break":    token.Break,
	"continue": token.Continue,
	"return":   token.Return,
	"byte":     token.Byte,
	"bool":     token.Bool,
	"address":  token.Address,
	"true":     token.TrueLiteral,
	"false":    token.FalseLiteral,
}

func periodScanner(enabled *bool) lex.Scanner[rune] {
	return func(items []rune) uint {
		if *enabled && len(items) != 0 && items[0] == '.' {
			return 1
		}

		return 0
	}
}

func buildRules(periodEnabled *bool) []lex.LexRule[rune] {
	var (
		alphaNum = lex.Or(lex.Within('0', '9'), lex.Within('a', 'z'), lex.Within('A', 'Z'))
		hexDigit = lex.Or(lex.Within('0', '9'), lex.Within('a', 'f'), lex.Within('A', 'F'))

		number = lex.Or(
			lex.SequenceNullableLast(lex.String("0x"), lex.Many(lex.Or(hexDigit, alphaNum))),
			lex.SequenceNullableLast(lex.Within('0', '9'), lex.Many(alphaNum)),
		)

		strung = lex.Sequence(lex.Unit('"'), lex.Many(lex.Not('"')), lex.Unit('"'))

		identifierStart = lex.Or(lex.Unit('_'), lex.Within('a', 'z'), lex.Within('A', 'Z'))
		identifierRest  = lex.Many(lex.Or(
			lex.Unit('_'),
			lex.Within('0', '9'),
			lex.Within('a', 'z'),
			lex.Within('A', 'Z'),
			periodScanner(periodEnabled),
		))
		identifier = lex.And(identifierStart, identifierRest)

		whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))
		comment    = lex.And(lex.Unit('/', '/'), lex.Until('\n'))
	)

	return []lex.LexRule[rune]{
		lex.Rule(comment, rawComment),
		lex.Rule(whitespace, rawWhitespace),
		lex.Rule(lex.Unit('{'), uint(token.LBrace)),
		lex.Rule(lex.Unit('}'), uint(token.RBrace)),
		lex.Rule(lex.Unit('('), uint(token.LParen)),
		lex.Rule(lex.Unit(')'), uint(token.RParen)),
		lex.Rule(lex.Unit(','), uint(token.Comma)),
		lex.Rule(lex.Unit(':', '='), uint(token.AssemblyAssign)),
		lex.Rule(lex.Unit(':'), uint(token.Colon)),
		lex.Rule(lex.Unit('-'), uint(token.Sub)),
		lex.Rule(lex.Unit('>'), uint(token.GreaterThan)),
		lex.Rule(number, uint(token.Number)),
		lex.Rule(strung, uint(token.StringLiteral)),
		lex.Rule(identifier, rawIdentifier),
		lex.Rule(lex.Eof[rune](), rawEOF),
	}
}

// Stream is a lazy, pull-based token.Interface over a source.File. It scans
// at most one token ahead of the parser's cursor, so SetPeriodInIdentifier
// changes what the *next* scan sees rather than requiring the whole input
// to be re-tokenized.
type Stream struct {
	file          *source.File
	inner         *lex.Lexer[rune]
	periodEnabled bool
	primed        bool
	cur           token.Token
	prevEnd       int
	lexErr        *source.SyntaxError
}

// New constructs a Stream over a source file. Lexical errors (text matching
// none of the rules) surface the first time the parser reaches them, via
// Expect/Current returning token.EOS together with a caller-visible
// inconsistency; New itself never fails, since the file may start with
// constructs the scanner rejects only partway through.
func New(file *source.File) *Stream {
	s := &Stream{file: file}
	s.inner = lex.NewLexer(file.Contents(), buildRules(&s.periodEnabled)...)

	return s
}

func (s *Stream) ensure() {
	if s.primed {
		return
	}

	s.primed = true
	s.advanceRaw()
}

// advanceRaw scans forward, skipping whitespace and comments, until it
// lands on a semantically meaningful token (or EOF).
func (s *Stream) advanceRaw() {
	for {
		if !s.inner.HasNext() {
			if s.lexErr == nil && s.inner.Remaining() != 0 {
				start := int(s.inner.Index())
				end := start + int(s.inner.Remaining())
				s.lexErr = s.file.SyntaxError(source.NewSpan(start, end), "unknown text encountered")
			}

			s.cur = token.Token{Kind: token.EOS, Span: source.NewSpan(len(s.file.Contents()), len(s.file.Contents()))}
			return
		}

		raw := s.inner.Next()

		switch raw.Kind {
		case rawWhitespace, rawComment:
			continue
		case rawEOF:
			s.cur = token.Token{Kind: token.EOS, Span: raw.Span}
			return
		case rawIdentifier:
			lexeme := string(s.file.Contents()[raw.Span.Begin:raw.Span.End])
			if kind, ok := keywords[lexeme]; ok {
				s.cur = token.Token{Kind: kind, Span: raw.Span}
			} else {
				s.cur = token.Token{Kind: token.Identifier, Span: raw.Span}
			}

			return
		default:
			s.cur = token.Token{Kind: token.Kind(raw.Kind), Span: raw.Span}
			return
		}
	}
}

// Current implements token.Interface.
func (s *Stream) Current() token.Kind {
	s.ensure()
	return s.cur.Kind
}

// Literal implements token.Interface.
func (s *Stream) Literal() string {
	s.ensure()

	span := s.cur.Span
	if span.IsEmpty() {
		return ""
	}

	return string(s.file.Contents()[span.Begin:span.End])
}

// Location implements token.Interface.
func (s *Stream) Location() source.Span {
	s.ensure()
	return s.cur.Span
}

// EndPosition implements token.Interface.
func (s *Stream) EndPosition() int {
	s.ensure()
	return s.prevEnd
}

// Advance implements token.Interface.
func (s *Stream) Advance() {
	s.ensure()

	if s.cur.Kind == token.EOS {
		return
	}

	s.prevEnd = s.cur.Span.End
	s.advanceRaw()
}

// Expect implements token.Interface.
func (s *Stream) Expect(kind token.Kind, advance bool) (token.Token, bool) {
	s.ensure()

	cur := s.cur
	if cur.Kind != kind {
		return cur, false
	}

	if advance {
		s.Advance()
	}

	return cur, true
}

// Err returns the first lexical error encountered (text matching none of
// the scanner's rules), or nil if none has been hit yet. Since scanning is
// lazy, this only reflects errors up to however far the parser has
// consumed; callers that want a definitive answer should check it after
// parsing completes.
func (s *Stream) Err() *source.SyntaxError {
	return s.lexErr
}

// SetPeriodInIdentifier implements token.Interface.
func (s *Stream) SetPeriodInIdentifier(enabled bool) (restore func()) {
	previous := s.periodEnabled
	s.periodEnabled = enabled

	return func() {
		s.periodEnabled = previous
	}
}
