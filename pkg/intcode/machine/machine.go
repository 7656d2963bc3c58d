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
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Machine is the interpreter.  It repeatedly decodes the instruction at the
// Program Counter and executes it, advancing the Program Counter by the width
// of that instruction, until a halt instruction is decoded.  There are no
// control-flow instructions, hence the Program Counter never decreases.
type Machine struct {
	memory   memory.Memory
	pc       uint
	status   Status
	observer Observer
}

// New boots a machine over a given memory, with execution starting from
// address 0.
func New(mem memory.Memory) *Machine {
	return &Machine{mem, 0, RUNNING, nil}
}

// WithObserver returns a machine updated with the given observer, but which is
// otherwise identical to before.  Observe that the returned machine shares
// memory with this machine.
func (p Machine) WithObserver(observer Observer) *Machine {
	var machine = p
	//
	machine.observer = observer
	//
	return &machine
}

// Execute implementation for the Core interface.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps && p.status == RUNNING {
		if err := p.Step(); err != nil {
			return nsteps, err
		}
		//
		nsteps++
	}
	//
	return nsteps, nil
}

// Step executes exactly one instruction.  Any failure (either decoding or
// accessing memory) aborts execution and leaves the Program Counter at the
// failing instruction.
func (p *Machine) Step() error {
	if p.status == HALTED {
		return ErrHalted
	}
	//
	insn, err := instruction.Decode(p.memory, p.pc)
	if err != nil {
		return &ExecutionError{p.pc, err}
	}
	//
	if p.observer != nil {
		p.observer(p.pc, insn)
	}
	//
	switch insn.(type) {
	case *instruction.Halt:
		p.status = HALTED
		return nil
	default:
		if err := insn.Execute(p.memory); err != nil {
			return &ExecutionError{p.pc, err}
		}
	}
	//
	p.pc += insn.Width()
	//
	return nil
}

// Status implementation for the Core interface.
func (p *Machine) Status() Status {
	return p.status
}

// PC implementation for the Core interface.
func (p *Machine) PC() uint {
	return p.pc
}

// Memory implementation for the Core interface.
func (p *Machine) Memory() memory.Memory {
	return p.memory
}
