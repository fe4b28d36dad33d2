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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanLengthAndEmpty(t *testing.T) {
	s := NewSpan(3, 3)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Length())

	s2 := NewSpan(3, 7)
	assert.False(t, s2.IsEmpty())
	assert.Equal(t, 4, s2.Length())
}

func TestSpanMergeWidensToCoverBoth(t *testing.T) {
	a := NewSpan(5, 10)
	b := NewSpan(2, 7)

	assert.Equal(t, NewSpan(2, 10), a.Merge(b))
	assert.Equal(t, NewSpan(2, 10), b.Merge(a))
}

func TestNewSpanPanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() {
		NewSpan(5, 2)
	})
}

func TestFileSyntaxErrorFormatsWithName(t *testing.T) {
	f := NewFile("test.yul", []byte("let x := 1"))
	err := f.SyntaxError(NewSpan(4, 5), "boom")

	assert.Equal(t, "test.yul:4:5: boom", err.Error())
	assert.Equal(t, "boom", err.Message())
}

func TestFindFirstEnclosingLineLocatesSecondLine(t *testing.T) {
	f := NewFile("test.yul", []byte("let x := 1\nlet y := 2"))

	line := f.FindFirstEnclosingLine(NewSpan(12, 13))

	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "let y := 2", line.String())
}
