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

// Package numlit validates number-literal lexemes against the single rule
// the grammar allows: plain decimal digits, or a "0x"-prefixed hexadecimal
// literal, fitting within an unsigned 256-bit value.
package numlit

import (
	"math/big"
	"strings"
)

// max256 is 2^256, used only as the overflow boundary; it is never itself a
// valid value.
var max256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Valid reports whether lexeme is an acceptable number literal: it must
// parse as an unsigned integer, fit in 256 bits, and be written either in
// plain decimal or with a "0x" prefix in hexadecimal. Binary, octal,
// exponents and signs are all rejected, even though Go's own big.Int parser
// would otherwise accept some of them.
func Valid(lexeme string) bool {
	_, ok := Parse(lexeme)
	return ok
}

// Parse validates lexeme exactly as Valid does, additionally returning the
// parsed value on success.
func Parse(lexeme string) (big.Int, bool) {
	var (
		value  big.Int
		digits string
		base   int
	)

	switch {
	case strings.HasPrefix(lexeme, "0x"):
		digits, base = lexeme[2:], 16
	default:
		digits, base = lexeme, 10
	}

	if digits == "" || !onlyBaseDigits(digits, base) {
		return value, false
	}

	if _, ok := value.SetString(digits, base); !ok {
		return value, false
	}

	if value.Sign() < 0 || value.Cmp(max256) >= 0 {
		return big.Int{}, false
	}

	return value, true
}

func onlyBaseDigits(s string, base int) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			continue
		case base == 16 && ((r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')):
			continue
		default:
			return false
		}
	}

	return true
}
