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

// Package printer renders an AST back into assembly-language source text.
// It is deliberately not a general formatter — it emits a single canonical
// layout, not the original whitespace — and exists to support the
// round-trip property: re-lexing and re-parsing Print(tree) must yield a
// structurally identical tree.
package printer

import (
	"fmt"
	"strings"

	"github.com/go-yulasm/yulasm/pkg/ast"
)

// Print renders a single statement (typically the top-level Block returned
// by parser.Parse) as assembly-language source text.
func Print(stmt ast.Statement) string {
	var b strings.Builder

	writeStatement(&b, stmt)

	return b.String()
}

func writeStatement(b *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		writeBlock(b, s)
	case *ast.VariableDeclaration:
		b.WriteString("let ")
		writeTypedNames(b, s.Vars)

		if s.Value != nil {
			b.WriteString(" := ")
			writeExpression(b, s.Value)
		}
	case *ast.Assignment:
		for i, t := range s.Targets {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(string(t.Name))
		}

		b.WriteString(" := ")
		writeExpression(b, s.Value)
	case *ast.If:
		b.WriteString("if ")
		writeExpression(b, s.Condition)
		b.WriteString(" ")
		writeBlock(b, s.Body)
	case *ast.Switch:
		b.WriteString("switch ")
		writeExpression(b, s.Scrutinee)

		for _, c := range s.Cases {
			b.WriteString(" ")
			writeCase(b, c)
		}
	case *ast.ForLoop:
		b.WriteString("for ")
		writeBlock(b, s.Pre)
		b.WriteString(" ")
		writeExpression(b, s.Condition)
		b.WriteString(" ")
		writeBlock(b, s.Post)
		b.WriteString(" ")
		writeBlock(b, s.Body)
	case *ast.FunctionDefinition:
		fmt.Fprintf(b, "function %s(", s.Name)
		writeTypedNames(b, s.Params)
		b.WriteString(")")

		if len(s.Returns) > 0 {
			b.WriteString(" -> ")
			writeTypedNames(b, s.Returns)
		}

		b.WriteString(" ")
		writeBlock(b, s.Body)
	case *ast.Break:
		b.WriteString("break")
	case *ast.Continue:
		b.WriteString("continue")
	case *ast.Leave:
		b.WriteString("leave")
	case *ast.ExpressionStatement:
		writeExpression(b, s.Expr)
	case *ast.FunctionCall:
		writeExpression(b, s)
	}
}

func writeBlock(b *strings.Builder, block *ast.Block) {
	b.WriteString("{")

	for _, stmt := range block.Statements {
		b.WriteString(" ")
		writeStatement(b, stmt)
	}

	b.WriteString(" }")
}

func writeCase(b *strings.Builder, c *ast.Case) {
	if c.IsDefault {
		b.WriteString("default ")
	} else {
		b.WriteString("case ")
		writeExpression(b, c.Value)
		b.WriteString(" ")
	}

	writeBlock(b, c.Body)
}

func writeTypedNames(b *strings.Builder, names []ast.TypedName) {
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(string(n.Name))

		if n.HasType() {
			fmt.Fprintf(b, ":%s", n.TypeName)
		}
	}
}

func writeExpression(b *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
		b.WriteString(e.Lexeme)

		if e.HasType() {
			fmt.Fprintf(b, ":%s", e.TypeName)
		}
	case *ast.Identifier:
		b.WriteString(string(e.Name))
	case *ast.FunctionCall:
		fmt.Fprintf(b, "%s(", e.Callee.Name)

		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			writeExpression(b, arg)
		}

		b.WriteString(")")
	}
}
