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

// Span represents a contiguous range of character offsets within the original
// source text.  Offsets index the file's contents as runes (see File), so for
// non-ASCII text they are not byte offsets.  Every AST node carries one of
// these rather than a copy of the underlying text, so that diagnostics can
// always point precisely at the offending source.
type Span struct {
	// Begin is the first character offset covered by this span.
	Begin int
	// End is one past the final character offset covered by this span.
	End int
}

// NewSpan constructs a span, checking that it is well-formed.
func NewSpan(begin, end int) Span {
	if begin > end {
		panic("invalid span")
	}

	return Span{begin, end}
}

// Length returns the number of characters covered by this span.
func (s Span) Length() int {
	return s.End - s.Begin
}

// IsEmpty is true when this span covers no characters at all.
func (s Span) IsEmpty() bool {
	return s.Begin == s.End
}

// Merge returns the smallest span enclosing both s and other.
func (s Span) Merge(other Span) Span {
	begin, end := s.Begin, s.End
	//
	if other.Begin < begin {
		begin = other.Begin
	}

	if other.End > end {
		end = other.End
	}

	return Span{begin, end}
}
