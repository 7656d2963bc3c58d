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

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program_file",
	Short: "print the instructions of a program.",
	Long: `Disassemble a given program by a linear sweep from address 0.  Cells
	which cannot be decoded as an instruction are shown as data.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args)
		//
		program := readProgramFile(args[0])
		checkpoint := machine.NewCheckPoint(program)
		//
		fmt.Printf("%s: %d words (digest %016x)\n\n", args[0], checkpoint.Len(), checkpoint.Digest())
		printTable(disassemble(program))
	},
}

// Disassemble a program into a table with one row per instruction (or data
// word).  Decoding resumes immediately after each instruction, and at the next
// word after any word which could not be decoded.
func disassemble(program []int64) *termio.TablePrinter {
	var (
		mem   = memory.NewArray(machine.MEMORY, program)
		table = termio.NewTablePrinter(3)
	)
	//
	header := table.AddRow("address", "words", "instruction")
	//
	for col := uint(0); col < table.Width(); col++ {
		table.SetEscape(col, header, termio.BoldAnsiEscape())
	}
	//
	for pc := uint(0); pc < mem.Len(); {
		var (
			insn, err = instruction.Decode(mem, pc)
			row       uint
		)
		//
		if err != nil {
			row = table.AddRow(fmt.Sprintf("%d", pc), fmt.Sprintf("%d", program[pc]), "data")
			table.SetEscape(2, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
			pc++
		} else {
			row = table.AddRow(fmt.Sprintf("%d", pc), formatWords(program[pc:pc+insn.Width()]), insn.String())
			table.SetEscape(2, row, opcodeEscape(insn.Opcode()))
			pc += insn.Width()
		}
	}
	//
	return table
}

// Determine the colour in which a given instruction is shown.
func opcodeEscape(opcode instruction.Opcode) termio.AnsiEscape {
	switch opcode {
	case instruction.HALT:
		return termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	case instruction.MUL:
		return termio.NewAnsiEscape().FgColour(termio.TERM_CYAN)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	}
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
