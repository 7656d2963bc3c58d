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
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "execute a program until it halts.",
	Long: `Execute a given program until it halts, and then print the value
	left at a given address (by default 0).  A noun and / or verb can be
	written into addresses 1 and 2 before execution begins.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args)
		//
		address := GetInt(cmd, "address")
		dump := GetFlag(cmd, "dump")
		program := readProgramFile(args[0])
		//
		applyParameters(cmd, program)
		//
		vm := machine.New(memory.NewArray(machine.MEMORY, program))
		steps, err := machine.ExecuteAll(vm, intcode.CHUNK)
		//
		log.Debugf("executed %d steps (%s at pc %d)", steps, vm.Status(), vm.PC())
		//
		if err != nil {
			reportFault(err)
		} else if dump {
			fmt.Println(formatWords(program))
		} else if value, err := vm.Memory().Read(address); err != nil {
			reportFault(err)
		} else {
			fmt.Println(value)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64("noun", 0, "value written to address 1 before execution")
	runCmd.Flags().Int64("verb", 0, "value written to address 2 before execution")
	runCmd.Flags().Int64P("address", "a", 0, "address whose final value is printed")
	runCmd.Flags().Bool("dump", false, "print the entire final memory")
}
