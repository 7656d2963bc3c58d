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
package machine

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// ErrHalted is returned when attempting to step a machine which has already
// halted.
var ErrHalted = errors.New("machine has halted")

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.
func ExecuteAll[M Core](machine M, n uint) (uint, error) {
	var nsteps uint
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}

// Core represents the state of an executing machine.  A machine is either
// running or halted and, once halted, can never resume.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).  Fewer
	// steps than requested are executed only when the machine halts or fails.
	Execute(steps uint) (uint, error)
	// Status returns the current status of this machine.
	Status() Status
	// PC returns the current position of the Program Counter.
	PC() uint
	// Memory returns the memory of this machine.
	Memory() memory.Memory
}

// Status of a machine, which is either running or halted.
type Status uint8

const (
	// RUNNING indicates the machine can execute further instructions.
	RUNNING Status = iota
	// HALTED indicates the machine has decoded a halt instruction.  This is
	// terminal.
	HALTED
)

func (p Status) String() string {
	if p == HALTED {
		return "halted"
	}
	//
	return "running"
}

// Observer is notified of each instruction just before it is executed.
type Observer func(pc uint, insn instruction.Instruction)

// ExecutionError wraps an error arising during execution with the position of
// the Program Counter at which it arose.  The wrapped error is either an
// instruction.DecodingError or a memory.OutOfBoundsError.
type ExecutionError struct {
	PC  uint
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("pc %d: %s", e.PC, e.Err.Error())
}

// Unwrap returns the underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
