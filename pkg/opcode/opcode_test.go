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

package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionsExcludesJumpDestAndPush(t *testing.T) {
	names := instructionsFor(EVMTable{})

	_, hasJumpdest := names["jumpdest"]
	assert.False(t, hasJumpdest)

	_, hasPush1 := names["push1"]
	assert.False(t, hasPush1)

	assert.Equal(t, byte(0x01), names["add"])
}

func TestInstructionNamesAppliesOverrides(t *testing.T) {
	names := instructionNamesFor(EVMTable{})

	assert.Equal(t, "selfdestruct", names[0xff])
	assert.Equal(t, "keccak256", names[0x20])
	assert.Equal(t, "add", names[0x01])
}

func TestInstructionsAndInstructionNamesAreInverse(t *testing.T) {
	SetDefaultTable(EVMTable{})

	forward := Instructions()
	backward := InstructionNames()

	for name, value := range forward {
		// The opcodes of these two forward names carry the selfdestruct and
		// keccak256 name overrides in the backward map.
		switch name {
		case "suicide", "sha3":
			continue
		default:
			assert.Equal(t, name, backward[value])
		}
	}
}
