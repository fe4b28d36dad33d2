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

package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-yulasm/yulasm/pkg/ast"
	"github.com/go-yulasm/yulasm/pkg/diag"
	"github.com/go-yulasm/yulasm/pkg/lexer"
	"github.com/go-yulasm/yulasm/pkg/parser"
	"github.com/go-yulasm/yulasm/pkg/printer"
	"github.com/go-yulasm/yulasm/pkg/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse source_file",
	Short: "parse an assembly block and print its AST or diagnostics.",
	Long:  "Parse a single assembly block from source_file and print a faithful re-rendering of the AST, or the diagnostics if parsing failed.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		block, sink := runParse(cmd, args[0])

		if block == nil {
			sink.Render(os.Stdout)
			os.Exit(1)
		}

		fmt.Println(printer.Print(block))

		if errs := sink.Errors(); len(errs) > 0 {
			log.Warnf("parse completed with %d recoverable diagnostic(s)", len(errs))
			sink.Render(os.Stdout)
		}
	},
}

func runParse(cmd *cobra.Command, filename string) (*ast.Block, *diag.DefaultSink) {
	file, err := source.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	log.Debugf("lexing %s", filename)

	stream := lexer.New(file)
	sink := diag.NewSink(file)
	d := resolveDialect(cmd)

	block, ok := parser.New(stream, sink, d).Parse(false)
	if lexErr := stream.Err(); lexErr != nil {
		sink.SyntaxError(lexErr.Span(), lexErr.Message())
	}

	if !ok {
		return nil, sink
	}

	return block, sink
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
