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
package intcode

import (
	"slices"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// NOUN is the address overwritten by the first parameter of a program.
const NOUN = 1

// VERB is the address overwritten by the second parameter of a program.
const VERB = 2

// CHUNK determines how many steps are executed at a time when running a
// machine to completion.
const CHUNK = 1024

// Run executes a given memory image to completion, starting from address 0.
// The memory is mutated in place and returned, such that the caller can
// inspect any address of interest (canonically address 0).  Observe that
// running the same slice twice does not give the same result, since the second
// run starts from the state left by the first.  If execution fails, the
// partially updated memory is returned along with the error.
func Run(words []int64) ([]int64, error) {
	var vm = machine.New(memory.NewArray(machine.MEMORY, words))
	//
	_, err := machine.ExecuteAll(vm, CHUNK)
	//
	return words, err
}

// RunWithParameters executes a copy of a given program after overwriting the
// noun and verb addresses.  The program itself is left unchanged, and the
// final state of the copy is returned.
func RunWithParameters(program []int64, noun, verb int64) ([]int64, error) {
	var (
		words = slices.Clone(program)
		mem   = memory.NewArray(machine.MEMORY, words)
	)
	//
	if err := Parameterise(mem, noun, verb); err != nil {
		return words, err
	}
	//
	return Run(words)
}

// Parameterise writes a given noun and verb into their designated addresses
// of a memory.
func Parameterise(mem memory.Memory, noun, verb int64) error {
	if err := mem.Write(NOUN, noun); err != nil {
		return err
	}
	//
	return mem.Write(VERB, verb)
}
