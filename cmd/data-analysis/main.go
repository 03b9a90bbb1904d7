// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// main implements the data-analysis cli.
func main() {
	app := cli.App{
		Name:     "Data Analysis",
		HelpName: "data-analysis",
		Usage:    "3x3 matrix statistics and demographic dataset analysis",
		Commands: []*cli.Command{
			&matrixCommand,
			&demographicCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
