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

// Package diag collects the diagnostics a parse run produces.  Two
// severities exist: recoverable syntax errors, which are simply recorded,
// and fatal parser errors, which additionally unwind the entire parse.  The
// unwind is implemented with a sentinel panic caught only at the top-level
// Parse entry point (see pkg/parser), mirroring the way Go's own
// text/template parser uses panic/recover to escape deeply recursive
// productions without threading an error return through every call.
package diag

import (
	"fmt"
	"io"

	"github.com/go-yulasm/yulasm/pkg/source"
)

// Sink is the narrow contract the parser requires of a diagnostic
// collector.
type Sink interface {
	// SyntaxError records a recoverable diagnostic. Parsing continues.
	SyntaxError(span source.Span, msg string)
	// FatalParserError records a diagnostic and then panics with a
	// Fatal sentinel value, unwinding out of the entire parse.
	FatalParserError(span source.Span, msg string)
	// Errors returns every diagnostic recorded so far, in the order
	// recorded.
	Errors() []*source.SyntaxError
}

// Fatal is the sentinel panic value raised by FatalParserError. Only
// pkg/parser.Parse recovers it; any other panic propagates normally.
type Fatal struct {
	Err *source.SyntaxError
}

// DefaultSink is a straightforward in-memory Sink backed by the originating
// source file, used to render errors with their enclosing line.
type DefaultSink struct {
	file   *source.File
	errors []*source.SyntaxError
}

// NewSink constructs an empty sink reporting against the given file.
func NewSink(file *source.File) *DefaultSink {
	return &DefaultSink{file: file}
}

// SyntaxError implements Sink.
func (s *DefaultSink) SyntaxError(span source.Span, msg string) {
	s.errors = append(s.errors, s.file.SyntaxError(span, msg))
}

// FatalParserError implements Sink.
func (s *DefaultSink) FatalParserError(span source.Span, msg string) {
	err := s.file.SyntaxError(span, msg)
	s.errors = append(s.errors, err)

	panic(Fatal{err})
}

// Errors implements Sink.
func (s *DefaultSink) Errors() []*source.SyntaxError {
	return s.errors
}

// Render writes every recorded diagnostic to w as "file:begin:end: message"
// followed by the offending source line, grounded on
// source.File.FindFirstEnclosingLine.
func (s *DefaultSink) Render(w io.Writer) {
	for _, e := range s.errors {
		line := e.FirstEnclosingLine()
		fmt.Fprintf(w, "%s\n%4d | %s\n", e.Error(), line.Number(), line.String())
	}
}
