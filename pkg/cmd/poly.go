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

	"github.com/kettleby/go-algebra/pkg/poly"
)

var polyCmd = &cobra.Command{
	Use:   "poly [flags] variable expression",
	Short: "convert an expression to polynomial normal form.",
	Long: `View the given expression as a polynomial in the given variable,
	with coefficients free of that variable, printing the canonical
	sum-of-powers form.  Fails when the variable occurs in a way that is not
	reducible to non-negative integer powers.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		readConfig(cmd)
		//
		p, err := poly.NormalForm(args[0], readExpr(args[1]))
		if err != nil {
			fmt.Printf("%s: %s\n", errColour("error"), err)
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "degree") {
			fmt.Println(p.Degree())
			return
		}
		//
		printResult(p.Expr())
	},
}

func init() {
	rootCmd.AddCommand(polyCmd)
	polyCmd.Flags().Bool("degree", false, "print only the degree of the polynomial")
}
