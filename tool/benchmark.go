// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"time"

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
	"github.com/0xsoniclabs/scratch/container"
	"github.com/urfave/cli/v2"
)

// Benchmark measures container operation throughput and reports the memory
// footprint of the structures it built.
var Benchmark = cli.Command{
	Action: addCpuProfileAction(benchmark),
	Name:   "benchmark",
	Usage:  "measures sequence and dict operation throughput",
	Flags: []cli.Flag{
		&numKeysFlag,
		&cpuProfileFlag,
	},
}

func benchmark(context *cli.Context) error {
	numKeys := context.Int(numKeysFlag.Name)
	if numKeys <= 0 {
		return fmt.Errorf("invalid number of keys: %d", numKeys)
	}

	// --- Sequence ---

	sequenceArena := arena.New[container.Node]()
	sequence := container.NewSequence(sequenceArena)

	start := time.Now()
	for i := 0; i < numKeys; i++ {
		sequence.Push(common.ToValue(uint64(i)))
	}
	reportThroughput("sequence push", numKeys, time.Since(start))

	start = time.Now()
	for i := 0; i < numKeys; i++ {
		if _, err := sequence.Get(i); err != nil {
			return err
		}
	}
	reportThroughput("sequence get", numKeys, time.Since(start))

	start = time.Now()
	for sequence.Size() > 0 {
		if _, err := sequence.Pop(); err != nil {
			return err
		}
	}
	reportThroughput("sequence pop", numKeys, time.Since(start))

	// --- Dict ---

	dictArena := arena.New[container.DictNode]()
	dict := container.NewDict(dictArena)

	start = time.Now()
	for i := 0; i < numKeys; i++ {
		dict.Set(common.ToKey(uint64(i)), common.ToValue(uint64(i)+1))
	}
	reportThroughput("dict set", numKeys, time.Since(start))

	start = time.Now()
	for i := 0; i < numKeys; i++ {
		if _, err := dict.Get(common.ToKey(uint64(i))); err != nil {
			return err
		}
	}
	reportThroughput("dict get", numKeys, time.Since(start))

	fmt.Printf("state hash: %x\n", dict.GetStateHash())
	fmt.Printf("sequence footprint:\n%s", sequence.GetMemoryFootprint())
	fmt.Printf("dict footprint:\n%s", dict.GetMemoryFootprint())
	return nil
}

func reportThroughput(name string, operations int, took time.Duration) {
	rate := float64(operations) / took.Seconds()
	fmt.Printf("%s: %d ops in %v (%.0f ops/s)\n", name, operations, took, rate)
}
