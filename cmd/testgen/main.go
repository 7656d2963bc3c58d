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
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"strings"

	util "github.com/consensys/go-intcode/pkg/cmd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("count", 20, "Number of programs to generate")
	rootCmd.Flags().Uint("min-insns", 1, "Minimum number of instructions (excluding halt)")
	rootCmd.Flags().Uint("max-insns", 8, "Maximum number of instructions (excluding halt)")
	rootCmd.Flags().Uint("max-data", 8, "Maximum number of data words")
	rootCmd.Flags().Int64("max-elem", 100, "Maximum magnitude of a data word")
	rootCmd.Flags().Int64("seed", 2019, "Seed for the random number generator")
	rootCmd.Flags().String("dir", "testdata/intcode/random", "Directory into which programs are written")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for go-intcode.",
	Long: `Generate random programs of add and mul instructions followed by a
	halt, with a data region after the code.  Instructions only ever write to
	the data region, hence the final memory of each program can be determined
	without decoding it.  Each program is written alongside its expected final
	memory and step count.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg TestGenConfig
		//
		if util.GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.count = util.GetUint(cmd, "count")
		cfg.minInsns = util.GetUint(cmd, "min-insns")
		cfg.maxInsns = util.GetUint(cmd, "max-insns")
		cfg.maxData = util.GetUint(cmd, "max-data")
		cfg.maxElem = util.GetInt(cmd, "max-elem")
		dir := util.GetString(cmd, "dir")
		//
		if cfg.minInsns > cfg.maxInsns || cfg.maxData == 0 || cfg.maxElem < 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		rng := rand.New(rand.NewSource(util.GetInt(cmd, "seed")))
		//
		for i := uint(1); i <= cfg.count; i++ {
			program := generateProgram(cfg, rng)
			writeTestProgram(path.Join(dir, fmt.Sprintf("random_%03d", i)), program)
		}
		//
		log.Infof("Wrote %d programs to %s", cfg.count, dir)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	count    uint
	minInsns uint
	maxInsns uint
	maxData  uint
	maxElem  int64
}

// Operation is a generated (add or mul) instruction.
type Operation struct {
	opcode              int64
	left, right, target int64
}

// Program is a generated program, along with the operations it was generated
// from.
type Program struct {
	words []int64
	ops   []Operation
}

// Generate a random program.  Sources are drawn from anywhere in memory, but
// targets only from the data region.
func generateProgram(cfg TestGenConfig, rng *rand.Rand) Program {
	var (
		ninsns = cfg.minInsns + uint(rng.Int63n(int64(cfg.maxInsns-cfg.minInsns+1)))
		ndata  = 1 + uint(rng.Int63n(int64(cfg.maxData)))
		start  = int64(4*ninsns + 1)
		size   = start + int64(ndata)
		ops    = make([]Operation, ninsns)
		words  []int64
	)
	//
	for i := range ops {
		ops[i] = Operation{1 + rng.Int63n(2), rng.Int63n(size), rng.Int63n(size), start + rng.Int63n(int64(ndata))}
		words = append(words, ops[i].opcode, ops[i].left, ops[i].right, ops[i].target)
	}
	// Halt
	words = append(words, 99)
	// Data
	for i := uint(0); i < ndata; i++ {
		words = append(words, rng.Int63n(2*cfg.maxElem+1)-cfg.maxElem)
	}
	//
	return Program{words, ops}
}

// Determine the final memory of a program by evaluating its operations in
// order.  This relies on operations never writing into the code region.
func oracle(program Program) []int64 {
	var mem = append([]int64(nil), program.words...)
	//
	for _, op := range program.ops {
		switch op.opcode {
		case 1:
			mem[op.target] = mem[op.left] + mem[op.right]
		case 2:
			mem[op.target] = mem[op.left] * mem[op.right]
		default:
			panic(fmt.Sprintf("unknown opcode %d", op.opcode))
		}
	}
	//
	return mem
}

func writeTestProgram(filename string, program Program) {
	var sb strings.Builder
	// Expected outcome
	fmt.Fprintf(&sb, ";;memory:%s\n", toString(oracle(program)))
	fmt.Fprintf(&sb, ";;steps:%d\n", len(program.ops)+1)
	// Write the files
	if err := os.WriteFile(filename+".ic", []byte(toString(program.words)+"\n"), 0644); err != nil {
		panic(err)
	} else if err := os.WriteFile(filename+".expect", []byte(sb.String()), 0644); err != nil {
		panic(err)
	}
	// Log what happened
	log.Debugf("Wrote %s.ic (%d words, %d instructions)", filename, len(program.words), len(program.ops)+1)
}

func toString(words []int64) string {
	var strs = make([]string, len(words))
	//
	for i, w := range words {
		strs[i] = fmt.Sprintf("%d", w)
	}
	//
	return strings.Join(strs, ",")
}
