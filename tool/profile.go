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
	"os"
	"runtime/pprof"
	"strings"

	"github.com/urfave/cli/v2"
)

// addCpuProfileAction wraps an action function to record a CPU profile into
// the file named by the cpuprofile flag. An empty flag disables profiling.
func addCpuProfileAction(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		fileName := context.String(cpuProfileFlag.Name)
		if strings.TrimSpace(fileName) == "" {
			return action(context)
		}
		if err := startCpuProfiler(fileName); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		return action(context)
	}
}

func startCpuProfiler(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}
