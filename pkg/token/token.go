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

// Package token defines the narrow contract between the parser and whatever
// scanner produced its input.  The parser never constructs tokens itself; it
// only consumes them through this interface, so any conforming scanner
// (including one which re-lexes lazily, or replays a pre-lexed buffer) can
// stand behind it.
package token

import "github.com/go-yulasm/yulasm/pkg/source"

// Kind identifies the lexical category of a token.  The concrete values are
// the constants below, which a scanner must produce; the parser only ever
// compares them for equality.
type Kind uint

// Required token kinds, as enumerated by the external interface contract.
const (
	EOS Kind = iota
	LBrace
	RBrace
	LParen
	RParen
	Comma
	Colon
	AssemblyAssign // ":="
	Sub            // "-"
	GreaterThan    // ">"
	Let
	Function
	If
	Switch
	Case
	Default
	For
	Break
	Continue
	Identifier
	Return
	Byte
	Bool
	Address
	StringLiteral
	Number
	TrueLiteral
	FalseLiteral
)

// Token is an opaque handle returned by Interface.Expect so that callers can
// recover the exact span and kind that was consumed.
type Token struct {
	Kind Kind
	Span source.Span
}

// Interface is the contract the parser requires of a scanner.  Every method
// is non-consuming except Advance and the consuming form of Expect.
type Interface interface {
	// Current returns the kind of the token under the cursor, without
	// consuming it.
	Current() Kind
	// Literal returns the exact source text of the token under the cursor.
	Literal() string
	// Location returns the span of the token under the cursor.
	Location() source.Span
	// EndPosition returns the end offset of the token immediately before
	// the cursor.  Used to close a node's span precisely at the last
	// token actually consumed for it, rather than at whatever follows.
	EndPosition() int
	// Advance consumes the token under the cursor.
	Advance()
	// Expect reports whether the token under the cursor has the given
	// kind, returning it regardless. When advance is true (the common
	// case) and the kind matches, the token is consumed; passing false
	// allows peeking without consuming, which the parser does after a
	// built-in name (checking for '(') and for its end-of-input check. A
	// mismatch never consumes. Expect raises no diagnostic itself — it
	// has no sink to raise one to — so callers are responsible for
	// reporting a fatal error naming the expected kind when the second
	// return value is false.
	Expect(kind Kind, advance bool) (Token, bool)
	// SetPeriodInIdentifier toggles whether '.' may appear inside an
	// identifier lexeme. It returns a function which restores the prior
	// setting; callers must defer it so the setting is restored on every
	// exit path, including a fatal unwind.
	SetPeriodInIdentifier(enabled bool) (restore func())
}

// KindName gives the human-readable name used in "expected X" diagnostics.
func KindName(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "token"
}

var kindNames = map[Kind]string{
	EOS:            "end of input",
	LBrace:         "'{'",
	RBrace:         "'}'",
	LParen:         "'('",
	RParen:         "')'",
	Comma:          "','",
	Colon:          "':'",
	AssemblyAssign: "':='",
	Sub:            "'-'",
	GreaterThan:    "'>'",
	Let:            "'let'",
	Function:       "'function'",
	If:             "'if'",
	Switch:         "'switch'",
	Case:           "'case'",
	Default:        "'default'",
	For:            "'for'",
	Break:          "'break'",
	Continue:       "'continue'",
	Identifier:     "identifier",
	Return:         "'return'",
	Byte:           "'byte'",
	Bool:           "'bool'",
	Address:        "'address'",
	StringLiteral:  "string literal",
	Number:         "number literal",
	TrueLiteral:    "'true'",
	FalseLiteral:   "'false'",
}
