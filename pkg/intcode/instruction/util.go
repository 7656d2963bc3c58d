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
	"fmt"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Execute a binary operator, reading both sources before writing the target.
// Observe that the target may coincide with either source.
func execute(mem memory.Memory, left, right, target int64, op func(int64, int64) int64) error {
	lhs, err := mem.Read(left)
	if err != nil {
		return err
	}
	//
	rhs, err := mem.Read(right)
	if err != nil {
		return err
	}
	//
	return mem.Write(target, op(lhs, rhs))
}

// AddressToString returns a string representation of an address.
func AddressToString(address int64) string {
	return fmt.Sprintf("[%d]", address)
}

func binaryToString(op string, left, right, target int64) string {
	var builder strings.Builder
	//
	builder.WriteString(AddressToString(target))
	builder.WriteString(" = ")
	builder.WriteString(AddressToString(left))
	builder.WriteString(" ")
	builder.WriteString(op)
	builder.WriteString(" ")
	builder.WriteString(AddressToString(right))
	//
	return builder.String()
}
