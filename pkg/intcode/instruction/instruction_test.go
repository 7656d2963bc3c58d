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
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_Decode_Add(t *testing.T) {
	insn := checkDecode(t, []int64{1, 9, 10, 3}, 0)
	//
	assert.Equal(t, &Add{9, 10, 3}, insn)
	assert.Equal(t, ADD, insn.Opcode())
	assert.Equal(t, uint(4), insn.Width())
	assert.Equal(t, []int64{9, 10}, insn.Uses())
	assert.Equal(t, []int64{3}, insn.Definitions())
	assert.Equal(t, "[3] = [9] + [10]", insn.String())
}

func Test_Decode_Mul(t *testing.T) {
	insn := checkDecode(t, []int64{99, 2, 3, 11, 0}, 1)
	//
	assert.Equal(t, &Mul{3, 11, 0}, insn)
	assert.Equal(t, "[0] = [3] * [11]", insn.String())
}

func Test_Decode_Halt(t *testing.T) {
	// Halt needs no operands, even at the very end of memory.
	insn := checkDecode(t, []int64{1, 0, 0, 0, 99}, 4)
	//
	assert.Equal(t, &Halt{}, insn)
	assert.Equal(t, uint(1), insn.Width())
	assert.Equal(t, 0, len(insn.Uses()))
	assert.Equal(t, 0, len(insn.Definitions()))
}

func Test_Decode_Invalid(t *testing.T) {
	for _, word := range []int64{0, 3, 4, 98, 100, -1} {
		_, err := Decode(memory.NewArray("mem", []int64{word, 0, 0, 0}), 0)
		decErr := assert.ErrorAs[*DecodingError](t, err)
		//
		assert.Equal(t, uint(0), decErr.PC)
		assert.Equal(t, word, decErr.Value)
	}
}

func Test_Decode_OutOfBounds(t *testing.T) {
	mem := memory.NewArray("mem", []int64{1, 0, 0})
	// Truncated operands
	_, err := Decode(mem, 0)
	oob := assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	assert.Equal(t, int64(3), oob.Address)
	// Program counter itself out-of-bounds
	_, err = Decode(mem, 3)
	oob = assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	assert.Equal(t, int64(3), oob.Address)
}

func Test_Execute_Add(t *testing.T) {
	words := []int64{1, 1, 1, 4, 99, 5, 6, 0, 99}
	//
	checkExecute(t, words, &Add{1, 1, 4})
	assert.Equal(t, []int64{1, 1, 1, 4, 2, 5, 6, 0, 99}, words)
}

func Test_Execute_Mul(t *testing.T) {
	words := []int64{2, 3, 0, 3, 99}
	//
	checkExecute(t, words, &Mul{3, 0, 3})
	assert.Equal(t, []int64{2, 3, 0, 6, 99}, words)
}

func Test_Execute_SelfReference(t *testing.T) {
	words := []int64{1, 0, 0, 0, 99}
	// Target coincides with both sources.
	checkExecute(t, words, &Add{0, 0, 0})
	assert.Equal(t, []int64{2, 0, 0, 0, 99}, words)
}

func Test_Execute_OutOfBounds(t *testing.T) {
	var (
		words = []int64{1, 2, 3}
		mem   = memory.NewArray("mem", words)
	)
	//
	for _, insn := range []Instruction{&Add{5, 0, 0}, &Mul{0, -1, 0}, &Add{0, 0, 3}} {
		err := insn.Execute(mem)
		assert.ErrorAs[*memory.OutOfBoundsError](t, err, "executing %s", insn.String())
	}
	// Nothing was written
	assert.Equal(t, []int64{1, 2, 3}, words)
}

func Test_Opcode_String(t *testing.T) {
	assert.Equal(t, "add", ADD.String())
	assert.Equal(t, "mul", MUL.String())
	assert.Equal(t, "halt", HALT.String())
	assert.Equal(t, "opcode(7)", Opcode(7).String())
}

func checkDecode(t *testing.T, words []int64, pc uint) Instruction {
	insn, err := Decode(memory.NewArray("mem", words), pc)
	assert.NoError(t, err)
	//
	return insn
}

func checkExecute(t *testing.T, words []int64, insn Instruction) {
	assert.NoError(t, insn.Execute(memory.NewArray("mem", words)))
}
