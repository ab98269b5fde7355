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

	"github.com/spf13/cobra"

	"github.com/kettleby/go-algebra/pkg/rewrite"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] expression...",
	Short: "multiply out expressions.",
	Long: `Distribute products over sums and expand integer powers of sums,
	producing a sum-of-products form of each given expression.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		readConfig(cmd)
		//
		for _, arg := range args {
			printResult(rewrite.MultiplyOut(readExpr(arg)))
		}
	},
}

var foldCmd = &cobra.Command{
	Use:   "fold [flags] expression...",
	Short: "evaluate the constant parts of expressions.",
	Long: `Evaluate every subterm whose operands are all numeric, fold the
	numeric portion of sums and products into a single constant, and reduce
	vector and matrix arithmetic.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		readConfig(cmd)
		//
		for _, arg := range args {
			printResult(rewrite.EvaluateConstants(readExpr(arg)))
		}
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(foldCmd)
}
