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
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_CheckPoint_Restore(t *testing.T) {
	var (
		program    = []int64{1, 0, 0, 0, 99}
		checkpoint = NewCheckPoint(program)
	)
	// Each restored machine operates on its own memory
	for i := 0; i < 3; i++ {
		vm := checkpoint.Restore()
		_, err := ExecuteAll(vm, 4)
		assert.NoError(t, err)
		assert.Equal(t, []int64{2, 0, 0, 0, 99}, vm.Memory().Contents())
	}
	// Original program untouched
	assert.Equal(t, []int64{1, 0, 0, 0, 99}, program)
}

func Test_CheckPoint_Continue(t *testing.T) {
	var (
		words = []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}
		vm    = New(memory.NewArray(MEMORY, words))
	)
	// Stop after the first instruction
	_, err := vm.Execute(1)
	assert.NoError(t, err)
	//
	checkpoint := vm.CheckPoint()
	assert.Equal(t, uint(4), checkpoint.PC())
	assert.Equal(t, RUNNING, checkpoint.Status())
	// Finish the original
	_, err = ExecuteAll(vm, 4)
	assert.NoError(t, err)
	// Continuation reaches the same state
	resumed := checkpoint.Restore()
	_, err = ExecuteAll(resumed, 4)
	assert.NoError(t, err)
	assert.Equal(t, words, resumed.Memory().Contents())
	assert.Equal(t, HALTED, resumed.Status())
}

func Test_CheckPoint_Binary(t *testing.T) {
	var (
		vm       = New(memory.NewArray(MEMORY, []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, -50}))
		restored CheckPoint
	)
	//
	_, err := vm.Execute(1)
	assert.NoError(t, err)
	//
	checkpoint := vm.CheckPoint()
	bytes, err := checkpoint.MarshalBinary()
	assert.NoError(t, err)
	assert.NoError(t, restored.UnmarshalBinary(bytes))
	//
	assert.Equal(t, checkpoint, restored)
	assert.Equal(t, checkpoint.Digest(), restored.Digest())
}

func Test_CheckPoint_Digest(t *testing.T) {
	var (
		c1 = NewCheckPoint([]int64{1, 0, 0, 0, 99})
		c2 = NewCheckPoint([]int64{1, 0, 0, 0, 99})
		c3 = NewCheckPoint([]int64{2, 0, 0, 0, 99})
	)
	//
	assert.Equal(t, c1.Digest(), c2.Digest())
	assert.True(t, c1.Digest() != c3.Digest())
}
