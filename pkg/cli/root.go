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

// Package cli holds the cobra command tree for the "yasm" front-end: a
// small CLI that exercises the lexer, parser and printer end-to-end instead
// of requiring every caller to wire a scanner and dialect descriptor
// themselves.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (-ldflags "-X ...Version=...");
// when empty, the version recorded in the build info is reported instead.
var Version string

var rootCmd = &cobra.Command{
	Use:   "yasm",
	Short: "A parser toolbox for the inline-assembly language.",
	Long:  "A parser toolbox for the inline-assembly language: parse source, print diagnostics, and round-trip through the printer.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("yasm ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute runs the root command. Called once by cmd/yasm's main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("loose", false, "parse using the loose dialect instead of the typed one")
}
