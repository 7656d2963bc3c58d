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
package test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/test/util"
)

// Programs generated by cmd/testgen, whose expected outcomes were determined
// without using the interpreter.
func Test_Random(t *testing.T) {
	filenames, err := filepath.Glob(filepath.Join(util.TestDir, "intcode/random/*.ic"))
	//
	if err != nil {
		t.Fatal(err)
	} else if len(filenames) == 0 {
		t.Skip("no generated programs")
	}
	//
	for _, filename := range filenames {
		name := strings.TrimSuffix(filepath.Base(filename), ".ic")
		//
		t.Run(name, func(t *testing.T) {
			util.CheckValid(t, "intcode/random/"+name)
		})
	}
}
