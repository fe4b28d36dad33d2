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

package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitMatchesExactSequence(t *testing.T) {
	s := Unit(int32('l'), int32('e'), int32('t'))

	assert.Equal(t, uint(3), s([]int32{'l', 'e', 't', ' '}))
	assert.Equal(t, uint(0), s([]int32{'l', 'e', 'x'}))
	assert.Equal(t, uint(0), s([]int32{'l', 'e'}))
}

func TestStringMatchesPrefixOnly(t *testing.T) {
	s := String("if")

	assert.Equal(t, uint(2), s([]int32("ifx")))
	assert.Equal(t, uint(0), s([]int32("in")))
}

func TestNotRejectsExcludedItemsAndConsumesOne(t *testing.T) {
	s := Not(int32('"'), int32('\n'))

	assert.Equal(t, uint(1), s([]int32("a")))
	assert.Equal(t, uint(0), s([]int32(`"`)))
	assert.Equal(t, uint(0), s([]int32("\n")))
	assert.Equal(t, uint(0), s(nil))
}

func TestWithinAcceptsInclusiveRange(t *testing.T) {
	s := Within(int32('0'), int32('9'))

	assert.Equal(t, uint(1), s([]int32("5")))
	assert.Equal(t, uint(0), s([]int32("a")))
	assert.Equal(t, uint(0), s(nil))
}

func TestManyConsumesGreedily(t *testing.T) {
	s := Many(Within(int32('0'), int32('9')))

	assert.Equal(t, uint(3), s([]int32("123abc")))
	assert.Equal(t, uint(0), s([]int32("abc")))
}

func TestUntilStopsAtDelimiter(t *testing.T) {
	s := Until(int32('"'))

	assert.Equal(t, uint(3), s([]int32(`abc"def`)))
	assert.Equal(t, uint(3), s([]int32("abc")))
}

func TestAndRequiresEverySubScanner(t *testing.T) {
	s := And(Within(int32('a'), int32('z')), Not(int32('x')))

	assert.Equal(t, uint(1), s([]int32("b")))
	assert.Equal(t, uint(0), s([]int32("x")))
}

func TestOrTriesInOrder(t *testing.T) {
	s := Or(String("if"), String("in"))

	assert.Equal(t, uint(2), s([]int32("in")))
	assert.Equal(t, uint(0), s([]int32("on")))
}

func TestEofOnlyMatchesEmptyInput(t *testing.T) {
	s := Eof[int32]()

	assert.Equal(t, uint(1), s(nil))
	assert.Equal(t, uint(0), s([]int32("a")))
}

func TestSequenceRequiresAllInOrder(t *testing.T) {
	s := Sequence(String("0x"), Many(Within(int32('0'), int32('9'))))

	assert.Equal(t, uint(4), s([]int32("0x12")))
	assert.Equal(t, uint(0), s([]int32("0y12")))
}

func TestSequenceNullableLastAllowsEmptyFinalMatch(t *testing.T) {
	s := SequenceNullableLast(String("0x"), Many(Within(int32('0'), int32('9'))))

	assert.Equal(t, uint(2), s([]int32("0x")))
	assert.Equal(t, uint(0), s([]int32("0y")))
}
