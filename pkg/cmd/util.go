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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/sexp"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFloat64 gets an expected float64 flag, or panic if an error arises.
func GetFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a command-line argument as an expression, exiting with a highlighted
// syntax error on failure.
func readExpr(text string) expr.Expr {
	e, err := expr.Parse(text)
	if err != nil {
		exitSyntaxError(text, err)
	}
	//
	return e
}

// Parse a command-line argument as an equation, exiting with a highlighted
// syntax error on failure.
func readEquation(text string) *expr.Compound {
	eq, err := expr.ParseEquation(text)
	if err != nil {
		exitSyntaxError(text, err)
	}
	//
	return eq
}

// Print a syntax error with appropriate highlighting and exit.
func exitSyntaxError(text string, err error) {
	var syntax *sexp.SyntaxError
	//
	if errors.As(err, &syntax) {
		fmt.Printf("%s: %s\n", errColour("error"), syntax.Message)
		fmt.Println(text)
		fmt.Print(strings.Repeat(" ", syntax.Offset))
		fmt.Println(errColour("^"))
	} else {
		fmt.Printf("%s: %s\n", errColour("error"), err)
	}
	//
	os.Exit(2)
}

// Print the result of a command, coloured when attached to a terminal.
func printResult(e expr.Expr) {
	fmt.Println(resultColour(expr.String(e)))
}

func errColour(text string) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return text
	}
	//
	return color.New(color.FgRed, color.Bold).Sprint(text)
}

func resultColour(text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	//
	return color.New(color.FgGreen).Sprint(text)
}
