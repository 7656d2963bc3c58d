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
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/search"
	"github.com/consensys/go-intcode/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] program_file",
	Short: "search for the noun and verb producing a target value.",
	Long: `Search for the first noun and verb which, when written into addresses
	1 and 2, cause a given program to halt with a target value at address 0.
	Nouns and verbs are drawn from a half-open range (by default [0,100)),
	and the answer is reported as 100*noun+verb.  Settings can be given in a
	YAML file, though any given on the command line take precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args)
		//
		config := getSearchConfig(cmd)
		program := readProgramFile(args[0])
		stats := util.NewPerfStats()
		//
		result, err := search.Search(program, config)
		// Print stats (if requested)
		if GetFlag(cmd, "stats") {
			fmt.Println(stats.Summary(fmt.Sprintf("search (%d attempts)", result.Attempts)))
		} else {
			stats.Log(fmt.Sprintf("search (%d attempts)", result.Attempts))
		}
		//
		if errors.Is(err, search.ErrNotFound) {
			fmt.Printf("no noun / verb in [%d,%d) produces %d\n", config.Min, config.Max, config.Target)
			os.Exit(EXIT_NOT_FOUND)
		} else if err != nil {
			reportFault(err)
		}
		//
		log.Infof("found %s", result)
		fmt.Println(result.Answer())
	},
}

// Construct the search configuration from the config file (if given) and
// then any flags on the command line.
func getSearchConfig(cmd *cobra.Command) search.Config {
	var (
		config = search.DefaultConfig()
		err    error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if config, err = search.LoadConfig(filename); err != nil {
			reportConfigError(err)
		}
		//
		log.Debugf("loaded search configuration from %s", filename)
	}
	//
	if cmd.Flags().Changed("target") {
		config.Target = GetInt(cmd, "target")
	}
	//
	if cmd.Flags().Changed("min") {
		config.Min = GetInt(cmd, "min")
	}
	//
	if cmd.Flags().Changed("max") {
		config.Max = GetInt(cmd, "max")
	}
	//
	if err = config.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	return config
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int64P("target", "t", search.TARGET, "value sought at address 0")
	searchCmd.Flags().Int64("min", 0, "smallest noun / verb considered")
	searchCmd.Flags().Int64("max", 100, "largest noun / verb considered (exclusive)")
	searchCmd.Flags().StringP("config", "c", "", "YAML file holding search configuration")
	searchCmd.Flags().Bool("stats", false, "report time and memory used by the search")
}
