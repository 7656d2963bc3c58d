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

// Mul represents an instruction of the following form:
//
// [t] = [l] * [r]
//
// As for Add, all operands are addresses and the product wraps on overflow.
type Mul struct {
	// Source addresses
	Left, Right int64
	// Target address
	Target int64
}

// Opcode implementation for Instruction interface.
func (p *Mul) Opcode() Opcode {
	return MUL
}

// Width implementation for Instruction interface.
func (p *Mul) Width() uint {
	return 4
}

// Uses implementation for Instruction interface.
func (p *Mul) Uses() []int64 {
	return []int64{p.Left, p.Right}
}

// Definitions implementation for Instruction interface.
func (p *Mul) Definitions() []int64 {
	return []int64{p.Target}
}

// Execute implementation for Instruction interface.
func (p *Mul) Execute(mem memory.Memory) error {
	return execute(mem, p.Left, p.Right, p.Target, func(l, r int64) int64 { return l * r })
}

func (p *Mul) String() string {
	return binaryToString("*", p.Left, p.Right, p.Target)
}
