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
	"path/filepath"

	"github.com/goccy/go-yaml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kettleby/go-algebra/pkg/rewrite"
)

// Name of the configuration file searched for in the working directory and
// the user's home directory.
const configFilename = ".go-algebra.yaml"

// Config holds tool-wide settings read from a YAML configuration file.
// Command-line flags override whatever the file provides.
type Config struct {
	Simplify struct {
		// Ratio bounds size(result) relative to size(input).
		Ratio float64 `yaml:"ratio"`
		// MaxPasses bounds whole-tree rewriting passes.
		MaxPasses uint `yaml:"max-passes"`
	} `yaml:"simplify"`
}

// Default settings, used when no configuration file is found.
func defaultConfig() Config {
	var config Config
	//
	config.Simplify.Ratio = rewrite.DefaultRatio
	config.Simplify.MaxPasses = rewrite.DefaultMaxPasses
	//
	return config
}

// Read the configuration, from the file named by --config if given, else
// from the first of ./.go-algebra.yaml and ~/.go-algebra.yaml which exists.
// Also configures the log level from --verbose.
func readConfig(cmd *cobra.Command) Config {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	config := defaultConfig()
	filename := GetString(cmd, "config")
	//
	if filename == "" {
		filename = findConfigFile()
		//
		if filename == "" {
			return config
		}
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	log.Debugf("read configuration from %s", filename)
	//
	return config
}

func findConfigFile() string {
	if _, err := os.Stat(configFilename); err == nil {
		return configFilename
	}
	//
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, configFilename)
		//
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	//
	return ""
}

// Simplification options determined by the configuration plus any overriding
// flags on the given command.
func simplifyOptions(cmd *cobra.Command, config Config) []rewrite.Option {
	var (
		ratio  = config.Simplify.Ratio
		passes = config.Simplify.MaxPasses
	)
	//
	if cmd.Flags().Changed("ratio") {
		ratio = GetFloat64(cmd, "ratio")
	}
	//
	if cmd.Flags().Changed("max-passes") {
		passes = GetUint(cmd, "max-passes")
	}
	//
	return []rewrite.Option{rewrite.WithRatio(ratio), rewrite.WithMaxPasses(passes)}
}
