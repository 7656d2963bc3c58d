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
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Halt terminates execution of the machine.  It reads no operands, hence it
// occupies a single cell.
type Halt struct{}

// Opcode implementation for Instruction interface.
func (p *Halt) Opcode() Opcode {
	return HALT
}

// Width implementation for Instruction interface.
func (p *Halt) Width() uint {
	return 1
}

// Uses implementation for Instruction interface.
func (p *Halt) Uses() []int64 {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *Halt) Definitions() []int64 {
	return nil
}

// Execute implementation for Instruction interface.  Halting has no effect on
// memory; it is the machine which stops.
func (p *Halt) Execute(_ memory.Memory) error {
	return nil
}

func (p *Halt) String() string {
	return "halt"
}
