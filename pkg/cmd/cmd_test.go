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
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/assert"
)

var example = []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

func Test_Disasm_01(t *testing.T) {
	table := disassemble(example)
	//
	assert.Equal(t, 7, table.Height())
	checkRow(t, table.Get, 1, "0", "1,9,10,3", "[3] = [9] + [10]")
	checkRow(t, table.Get, 2, "4", "2,3,11,0", "[0] = [3] * [11]")
	checkRow(t, table.Get, 3, "8", "99", "halt")
	checkRow(t, table.Get, 4, "9", "30", "data")
	checkRow(t, table.Get, 6, "11", "50", "data")
}

func Test_Disasm_02(t *testing.T) {
	// Truncated instruction at the end
	table := disassemble([]int64{7, 1, 0})
	//
	assert.Equal(t, 4, table.Height())
	checkRow(t, table.Get, 1, "0", "7", "data")
	checkRow(t, table.Get, 2, "1", "1", "data")
	checkRow(t, table.Get, 3, "2", "0", "data")
}

func Test_Trace_01(t *testing.T) {
	tracer := newTracer(memory.NewArray(machine.MEMORY, slices.Clone(example)))
	//
	n, err := tracer.Execute(0)
	//
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, machine.HALTED, tracer.vm.Status())
	assert.Equal(t, 4, tracer.table.Height())
	checkRow(t, tracer.table.Get, 1, "1", "0", "[3] = [9] + [10]", "[9]=30 [10]=40")
	checkRow(t, tracer.table.Get, 2, "2", "4", "[0] = [3] * [11]", "[3]=70 [11]=50")
	checkRow(t, tracer.table.Get, 3, "3", "8", "halt", "")
}

func Test_Trace_02(t *testing.T) {
	tracer := newTracer(memory.NewArray(machine.MEMORY, slices.Clone(example)))
	//
	n, err := tracer.Execute(2)
	//
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, machine.RUNNING, tracer.vm.Status())
	assert.Equal(t, 8, tracer.vm.PC())
	assert.Equal(t, 3, tracer.table.Height())
}

func Test_Trace_03(t *testing.T) {
	tracer := newTracer(memory.NewArray(machine.MEMORY, []int64{1, 0, 0, 0, 7}))
	//
	n, err := tracer.Execute(0)
	//
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, tracer.table.Height())
	//
	decoding := assert.ErrorAs[*instruction.DecodingError](t, err)
	assert.Equal(t, 7, decoding.Value)
	assert.Equal(t, 4, decoding.PC)
}

func Test_Trace_04(t *testing.T) {
	tracer := newTracer(memory.NewArray(machine.MEMORY, []int64{1, 0, 7, 0, 99}))
	//
	_, err := tracer.Execute(0)
	//
	assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	checkRow(t, tracer.table.Get, 1, "1", "0", "[0] = [0] + [7]", "[0]=1 [7]=?")
}

func Test_FormatWords(t *testing.T) {
	assert.Equal(t, "", formatWords(nil))
	assert.Equal(t, "99", formatWords([]int64{99}))
	assert.Equal(t, "1,-2,3", formatWords([]int64{1, -2, 3}))
}

func checkRow(t *testing.T, get func(uint, uint) string, row uint, expected ...string) {
	t.Helper()
	//
	for col, cell := range expected {
		assert.Equal(t, cell, get(uint(col), row), "row %d, column %d", row, col)
	}
}
