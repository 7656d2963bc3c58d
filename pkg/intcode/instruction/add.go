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

// Add represents an instruction of the following form:
//
// [t] = [l] + [r]
//
// Here, l and r are the *source addresses* and t is the *target address*.
// All three are addresses, never immediate values.  The sum is computed over
// 64bit words and wraps on overflow.
type Add struct {
	// Source addresses
	Left, Right int64
	// Target address
	Target int64
}

// Opcode implementation for Instruction interface.
func (p *Add) Opcode() Opcode {
	return ADD
}

// Width implementation for Instruction interface.
func (p *Add) Width() uint {
	return 4
}

// Uses implementation for Instruction interface.
func (p *Add) Uses() []int64 {
	return []int64{p.Left, p.Right}
}

// Definitions implementation for Instruction interface.
func (p *Add) Definitions() []int64 {
	return []int64{p.Target}
}

// Execute implementation for Instruction interface.
func (p *Add) Execute(mem memory.Memory) error {
	return execute(mem, p.Left, p.Right, p.Target, func(l, r int64) int64 { return l + r })
}

func (p *Add) String() string {
	return binaryToString("+", p.Left, p.Right, p.Target)
}
