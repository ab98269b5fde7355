// Copyright The go-algebra Authors.
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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kettleby/go-algebra/pkg/calculus"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] variable[,variable...] expression",
	Short: "differentiate an expression.",
	Long: `Differentiate the given expression with respect to each of the
	given variables in turn, left to right.  Other symbols are treated as
	constants.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := readConfig(cmd)
		variables := strings.Split(args[0], ",")
		//
		derived, err := calculus.Differentiate(readExpr(args[1]), variables...)
		if err != nil {
			fmt.Printf("%s: %s\n", errColour("error"), err)
			os.Exit(1)
		}
		// Tidy the derivative up where possible.
		if simplified, err := rewrite.Simplify(derived, simplifyOptions(cmd, config)...); err == nil {
			derived = simplified
		}
		//
		printResult(derived)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Float64("ratio", rewrite.DefaultRatio, "maximum result size relative to the input")
	diffCmd.Flags().Uint("max-passes", rewrite.DefaultMaxPasses, "maximum rewriting passes")
}
