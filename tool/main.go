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

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./tool <command> <flags>

var (
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	numKeysFlag = cli.IntFlag{
		Name:  "num-keys",
		Usage: "the number of keys to operate on",
		Value: 1000,
	}
	dbDirFlag = cli.StringFlag{
		Name:  "db",
		Usage: "the directory of the LevelDB store to synchronize with",
		Value: "./scratch-db",
	}
)

func main() {
	app := &cli.App{
		Name:      "tool",
		Usage:     "scratch container toolbox",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Commands: []*cli.Command{
			&Benchmark,
			&Fill,
			&Sync,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
