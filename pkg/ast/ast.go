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

// Package ast defines the tagged-variant tree the parser produces: a
// Statement sum and an Expression sum, every node of which carries the
// source span it was parsed from. Nodes are created during parsing and
// owned uniquely by their parent; there is no mechanism for a node to be
// shared or to reference an ancestor, so the tree is strictly acyclic.
package ast

import (
	"sync"

	"github.com/go-yulasm/yulasm/pkg/source"
)

// Name is a canonical identifier string drawn from a process-wide interned
// pool, so that repeated comparisons (e.g. checking a break target against
// "break") are pointer-cheap string comparisons against a single backing
// allocation rather than fresh allocations per occurrence.
type Name string

var (
	poolMu sync.Mutex
	pool   = make(map[string]Name)
)

// Intern returns the canonical Name for s, allocating it on first use.
func Intern(s string) Name {
	poolMu.Lock()
	defer poolMu.Unlock()

	if n, ok := pool[s]; ok {
		return n
	}

	n := Name(s)
	pool[s] = n

	return n
}

// Node is implemented by every AST node.
type Node interface {
	// Location returns the span of source text this node was parsed
	// from. Begin..End always covers exactly the tokens consumed to
	// build the node, ending one position past the last token consumed.
	Location() source.Span
}

// Expression is the sum type of everything that can appear where a value is
// expected: a literal, a name reference, or a call.
type Expression interface {
	Node
	isExpression()
}

// Statement is the sum type of everything that can appear inside a block.
type Statement interface {
	Node
	isStatement()
}

// TypedName is a name with an optional type annotation, used for variable
// declarations, function parameters and function return variables. The
// type name is mandatory in the typed dialect and absent (empty) in the
// loose dialect.
type TypedName struct {
	Name     Name
	TypeName Name
	Span     source.Span
}

// Location implements Node.
func (t TypedName) Location() source.Span {
	return t.Span
}

// HasType reports whether a type annotation was supplied.
func (t TypedName) HasType() bool {
	return t.TypeName != ""
}
