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

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [flags] unknown[,unknown...] equation...",
	Short: "solve a system of equations.",
	Long: `Determine the values of the given unknowns under which every given
	equation holds.  Underdetermined systems report solutions over
	placeholder symbols; inconsistent systems report no solutions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		readConfig(cmd)
		//
		var (
			unknowns  = strings.Split(args[0], ",")
			equations = make([]*expr.Compound, len(args)-1)
		)
		//
		for i, arg := range args[1:] {
			equations[i] = readEquation(arg)
		}
		//
		solutions, err := solver.Solve(equations, unknowns...)
		if err != nil {
			fmt.Printf("%s: %s\n", errColour("error"), err)
			os.Exit(1)
		}
		//
		fmt.Println(solutions.String())
	},
}

var rearrangeCmd = &cobra.Command{
	Use:   "rearrange [flags] unknown equation",
	Short: "rearrange an equation for an unknown.",
	Long: `Isolate an unknown occurring exactly once in the given equation by
	inverting the operators surrounding it.  Inverting an even power or an
	absolute value produces multiple rearrangements.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		readConfig(cmd)
		//
		branches, err := solver.Rearrange(args[0], readEquation(args[1]))
		if err != nil {
			fmt.Printf("%s: %s\n", errColour("error"), err)
			os.Exit(1)
		}
		//
		for _, branch := range branches {
			printResult(branch)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(rearrangeCmd)
}
