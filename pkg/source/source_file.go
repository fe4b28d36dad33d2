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
package source

import (
	"fmt"
	"os"
)

// ReadFile reads a single source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return NewFile(filename, bytes), nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// String returns the text making up this line.
func (l *Line) String() string {
	return string(l.text[l.span.Begin:l.span.End])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (l *Line) Number() int {
	return l.number
}

// Start returns the starting index of this line in the original string.
func (l *Line) Start() int {
	return l.span.Begin
}

// Length returns the number of characters in this line.
func (l *Line) Length() int {
	return l.span.Length()
}

// File represents a single source file being parsed.  It retains the raw
// text so that diagnostics can quote the offending line.
type File struct {
	// Name of this source file, used only for diagnostic rendering.
	name string
	// Contents of this file.
	contents []rune
}

// NewFile constructs a new source file from a given byte array.
func NewFile(name string, bytes []byte) *File {
	return &File{name, []rune(string(bytes))}
}

// Name returns the name associated with this source file.
func (f *File) Name() string {
	return f.name
}

// Contents returns the contents of this source file.
func (f *File) Contents() []rune {
	return f.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (f *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{f, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  If the position is beyond the bounds of the
// source file, the last physical line is returned.  The returned line is not
// guaranteed to enclose the entire span, since spans can cross multiple
// lines.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.Begin
	num := 1
	start := 0
	//
	for i := 0; i < len(f.contents); i++ {
		if i == index {
			end := findEndOfLine(index, f.contents)
			return Line{f.contents, Span{start, end}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{f.contents, Span{start, len(f.contents)}, num}
}

// SyntaxError is a structured diagnostic which retains the span of the
// original text where it arose, along with a human-readable message.  Both
// recoverable and fatal diagnostics are represented using this type; the
// distinction between them lives in the diag.Sink that records them.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the source file that this syntax error covers.
func (e *SyntaxError) SourceFile() *File {
	return e.srcfile
}

// Span returns the span of the original text on which this error is
// reported.
func (e *SyntaxError) Span() Span {
	return e.span
}

// Message returns the message to be reported.
func (e *SyntaxError) Message() string {
	return e.msg
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.srcfile.Name(), e.span.Begin, e.span.End, e.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (e *SyntaxError) FirstEnclosingLine() Line {
	return e.srcfile.FindFirstEnclosingLine(e.span)
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}
