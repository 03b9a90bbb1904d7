// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/Ratheesh-DP/data-analysis-streamlit-app/logger"
	"github.com/Ratheesh-DP/data-analysis-streamlit-app/matstats"
)

var numbersFlag = cli.StringFlag{
	Name:    "numbers",
	Aliases: []string{"n"},
	Usage:   "nine comma-separated numbers; read from stdin when omitted",
}

// matrixCommand reports statistics of nine numbers arranged into a
// 3x3 matrix.
var matrixCommand = cli.Command{
	Action: matrixAction,
	Name:   "matrix",
	Usage:  "computes mean, variance, standard deviation, max, min, and sum of a 3x3 matrix",
	Flags: []cli.Flag{
		&numbersFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The data-analysis matrix command arranges nine numbers row-major into
a 3x3 matrix and reports each statistic down the columns (axis 0),
across the rows (axis 1), and over the flattened matrix.

Example:
    data-analysis matrix --numbers "0, 1, 2, 3, 4, 5, 6, 7, 8"`,
}

func matrixAction(ctx *cli.Context) error {
	log := logger.New(ctx.String(logger.LogLevelFlag.Name), "matrix")

	input := ctx.String(numbersFlag.Name)
	if input == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = string(raw)
	}
	xs, err := parseList(input)
	if err != nil {
		return err
	}
	if len(xs) != 9 {
		return fmt.Errorf("please enter exactly 9 numbers; you entered %d", len(xs))
	}
	log.Debugf("parsed %d numbers", len(xs))

	calc, err := matstats.Calculate(xs)
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Println("3x3 Matrix Representation")
	printGrid(os.Stdout, xs)

	heading.Println("Statistical Analysis Results")
	printCalculations(os.Stdout, calc)
	return nil
}

// parseList parses a comma- or whitespace-separated list of numbers.
func parseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	xs := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("please enter valid numbers separated by commas: %q", f)
		}
		xs = append(xs, v)
	}
	return xs, nil
}

// printGrid sends the row-major 3x3 arrangement of xs into the output
// writer.
func printGrid(w io.Writer, xs []float64) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"", "Column 0", "Column 1", "Column 2"})
	tbl.SetBorder(true)

	for row := 0; row < 3; row++ {
		tbl.Append([]string{
			fmt.Sprintf("Row %d", row),
			formatNum(xs[row*3]),
			formatNum(xs[row*3+1]),
			formatNum(xs[row*3+2]),
		})
	}
	tbl.Render()
}

// printCalculations sends a six-row statistics table into the output
// writer, one row per statistic.
func printCalculations(w io.Writer, calc *matstats.Calculations) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Statistic", "Axis 0 (Columns)", "Axis 1 (Rows)", "Flattened"})
	tbl.SetBorder(true)

	for _, stat := range calc.Named() {
		tbl.Append([]string{
			stat.Name,
			formatVec(stat.Values.Cols),
			formatVec(stat.Values.Rows),
			formatNum(stat.Values.Flat),
		})
	}
	tbl.Render()
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

func formatVec(v [3]float64) string {
	return fmt.Sprintf("[%s, %s, %s]", formatNum(v[0]), formatNum(v[1]), formatNum(v[2]))
}
