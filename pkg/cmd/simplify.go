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

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression...",
	Short: "simplify expressions.",
	Long: `Apply identity, cancellation and collection laws to each given
	expression, producing a smaller equivalent form.  Fails when the result
	cannot be brought under the requested size ratio.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := readConfig(cmd)
		options := simplifyOptions(cmd, config)
		//
		for _, arg := range args {
			result, err := rewrite.Simplify(readExpr(arg), options...)
			if err != nil {
				fmt.Printf("%s: %s\n", errColour("error"), err)
				os.Exit(1)
			}
			//
			printResult(result)
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().Float64("ratio", rewrite.DefaultRatio, "maximum result size relative to the input")
	simplifyCmd.Flags().Uint("max-passes", rewrite.DefaultMaxPasses, "maximum rewriting passes")
}
