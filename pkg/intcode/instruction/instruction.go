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
package instruction

import (
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Opcode identifies the operation performed by an instruction.  The set of
// opcodes is closed: any other value found at the program counter is a
// decoding error.
type Opcode int64

const (
	// ADD sets [dest] = [srcA] + [srcB].
	ADD Opcode = 1
	// MUL sets [dest] = [srcA] * [srcB].
	MUL Opcode = 2
	// HALT terminates execution.
	HALT Opcode = 99
)

func (p Opcode) String() string {
	switch p {
	case ADD:
		return "add"
	case MUL:
		return "mul"
	case HALT:
		return "halt"
	default:
		return fmt.Sprintf("opcode(%d)", int64(p))
	}
}

// Instruction provides an abstract notion of a "machine instruction".  That
// is, a single atomic unit which can be executed against a given memory.
type Instruction interface {
	// Opcode returns the opcode from which this instruction was decoded.
	Opcode() Opcode
	// Width returns the number of memory cells occupied by this instruction.
	Width() uint
	// Uses returns the set of addresses used (i.e. read) by this instruction.
	Uses() []int64
	// Definitions returns the set of addresses defined (i.e. written) by this
	// instruction.
	Definitions() []int64
	// Execute this instruction against a given memory.  This can fail if an
	// address used or defined by this instruction is out-of-bounds.
	Execute(mem memory.Memory) error
	// Provide human readable form of instruction
	String() string
}

// DecodingError is reported when the word at the program counter is not a
// recognised opcode.
type DecodingError struct {
	// Program counter at which decoding was attempted
	PC uint
	// Word found at that position
	Value int64
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("unknown opcode %d at address %d", e.Value, e.PC)
}

// Decode the instruction starting at a given position in memory.  This fails
// with an out-of-bounds error if any cell of the instruction lies outside the
// memory, or with a decoding error if the opcode is not recognised.
func Decode(mem memory.ReadOnlyMemory, pc uint) (Instruction, error) {
	word, err := mem.Read(int64(pc))
	//
	if err != nil {
		return nil, err
	}
	//
	switch Opcode(word) {
	case ADD:
		left, right, target, err := decodeOperands(mem, pc)
		if err != nil {
			return nil, err
		}
		//
		return &Add{left, right, target}, nil
	case MUL:
		left, right, target, err := decodeOperands(mem, pc)
		if err != nil {
			return nil, err
		}
		//
		return &Mul{left, right, target}, nil
	case HALT:
		return &Halt{}, nil
	default:
		return nil, &DecodingError{pc, word}
	}
}

// Read the three address operands following the opcode at a given position.
func decodeOperands(mem memory.ReadOnlyMemory, pc uint) (left, right, target int64, err error) {
	var operands [3]int64
	//
	for i := range operands {
		if operands[i], err = mem.Read(int64(pc) + int64(i) + 1); err != nil {
			return 0, 0, 0, err
		}
	}
	//
	return operands[0], operands[1], operands[2], nil
}
