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
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace [flags] program_file",
	Short: "execute a program, printing each instruction executed.",
	Long: `Execute a given program and print a table with one row for each
	instruction executed, showing the values of its operands just before it
	was executed.  A noun and / or verb can be written into addresses 1 and 2
	before execution begins.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args)
		//
		steps := GetUint(cmd, "steps")
		program := readProgramFile(args[0])
		//
		applyParameters(cmd, program)
		//
		tracer := newTracer(memory.NewArray(machine.MEMORY, program))
		n, err := tracer.Execute(steps)
		//
		printTable(tracer.table)
		//
		if err != nil {
			reportFault(err)
		}
		//
		fmt.Printf("\n%s at pc %d after %d steps\n", tracer.vm.Status(), tracer.vm.PC(), n)
	},
}

// Tracer executes a machine whilst recording each instruction executed.
type tracer struct {
	vm    *machine.Machine
	table *termio.TablePrinter
}

func newTracer(mem memory.Memory) *tracer {
	var (
		table = termio.NewTablePrinter(4)
		t     = &tracer{nil, table}
	)
	//
	header := table.AddRow("step", "pc", "instruction", "operands")
	//
	for col := uint(0); col < table.Width(); col++ {
		table.SetEscape(col, header, termio.BoldAnsiEscape())
	}
	//
	t.vm = machine.New(mem).WithObserver(t.observe)
	//
	return t
}

// Execute a given number of steps, or until the machine halts when steps is 0.
func (p *tracer) Execute(steps uint) (uint, error) {
	if steps == 0 {
		return machine.ExecuteAll(p.vm, intcode.CHUNK)
	}
	//
	log.Debugf("executing at most %d steps", steps)
	//
	return p.vm.Execute(steps)
}

func (p *tracer) observe(pc uint, insn instruction.Instruction) {
	row := p.table.AddRow(
		fmt.Sprintf("%d", p.table.Height()),
		fmt.Sprintf("%d", pc),
		insn.String(),
		p.operands(insn.Uses()))
	//
	p.table.SetEscape(2, row, opcodeEscape(insn.Opcode()))
}

// Describe the current values held at a given set of addresses.
func (p *tracer) operands(addresses []int64) string {
	var values = make([]string, len(addresses))
	//
	for i, address := range addresses {
		if value, err := p.vm.Memory().Read(address); err != nil {
			values[i] = fmt.Sprintf("%s=?", instruction.AddressToString(address))
		} else {
			values[i] = fmt.Sprintf("%s=%d", instruction.AddressToString(address), value)
		}
	}
	//
	return strings.Join(values, " ")
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Int64("noun", 0, "value written to address 1 before execution")
	traceCmd.Flags().Int64("verb", 0, "value written to address 2 before execution")
	traceCmd.Flags().Uint("steps", 0, "maximum number of steps to execute (0 for no limit)")
}
