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
package memory

import (
	"testing"

	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_Array_01(t *testing.T) {
	var (
		words = []int64{1, 2, 3}
		array = NewArray("mem", words)
	)
	//
	assert.Equal(t, uint(3), array.Len())
	//
	for i, w := range words {
		v, err := array.Read(int64(i))
		assert.NoError(t, err)
		assert.Equal(t, w, v)
	}
}

func Test_Array_02(t *testing.T) {
	var (
		words = []int64{1, 2, 3}
		array = NewArray("mem", words)
	)
	// Writes are visible in the backing slice
	assert.NoError(t, array.Write(1, 42))
	assert.Equal(t, []int64{1, 42, 3}, words)
}

func Test_Array_03(t *testing.T) {
	array := NewArray("mem", []int64{1, 2, 3})
	//
	for _, address := range []int64{-1, 3, 100} {
		_, err := array.Read(address)
		oob := assert.ErrorAs[*OutOfBoundsError](t, err)
		assert.Equal(t, address, oob.Address)
		assert.Equal(t, uint(3), oob.Size)
		//
		err = array.Write(address, 0)
		assert.ErrorAs[*OutOfBoundsError](t, err)
	}
	// Failed writes leave memory untouched
	assert.Equal(t, []int64{1, 2, 3}, array.Contents())
}

func Test_Array_04(t *testing.T) {
	var (
		words = []int64{1, 2, 3}
		array = NewArray("mem", words)
		clone = array.Clone()
	)
	//
	assert.NoError(t, clone.Write(0, 99))
	assert.Equal(t, []int64{1, 2, 3}, words)
	assert.Equal(t, []int64{99, 2, 3}, clone.Contents())
}

func Test_Array_05(t *testing.T) {
	array := NewArray("empty", nil)
	//
	assert.Equal(t, uint(0), array.Len())
	_, err := array.Read(0)
	assert.ErrorAs[*OutOfBoundsError](t, err)
}
