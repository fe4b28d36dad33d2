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

	"github.com/spf13/cobra"

	"github.com/go-yulasm/yulasm/pkg/dialect"
	"github.com/go-yulasm/yulasm/pkg/opcode"
)

// GetFlag fetches a boolean flag, exiting with an error message if the flag
// was never registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// resolveDialect builds the dialect descriptor the CLI runs against: the
// typed dialect's built-ins are the full EVM instruction set, exposed by
// name through opcode.Instructions; the loose dialect has none of its own,
// since in that dialect opcodes are recognized as bare identifiers instead.
func resolveDialect(cmd *cobra.Command) dialect.Descriptor {
	if GetFlag(cmd, "loose") {
		return dialect.NewSet(dialect.Loose)
	}

	names := make([]string, 0, len(opcode.Instructions()))
	for name := range opcode.Instructions() {
		names = append(names, name)
	}

	return dialect.NewSet(dialect.Typed, names...)
}
