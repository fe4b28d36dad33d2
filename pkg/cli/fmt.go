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

	"github.com/go-yulasm/yulasm/pkg/printer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt source_file",
	Short: "parse then re-print an assembly block, exercising the full round trip.",
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
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
