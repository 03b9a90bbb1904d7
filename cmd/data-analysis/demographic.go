// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/Ratheesh-DP/data-analysis-streamlit-app/census"
	"github.com/Ratheesh-DP/data-analysis-streamlit-app/logger"
)

var (
	csvFlag = cli.StringFlag{
		Name:  "csv",
		Usage: "path of a demographic data CSV file",
	}
	sampleFlag = cli.IntFlag{
		Name:  "sample",
		Usage: "generate `N` synthetic records instead of reading a file",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for --sample",
		Value: 42,
	}
	printFlag = cli.BoolFlag{
		Name:  "print",
		Usage: "also emit the plain-text report",
	}
)

// demographicCommand reports the ten demographic statistics of a
// census-style dataset.
var demographicCommand = cli.Command{
	Action: demographicAction,
	Name:   "demographic",
	Usage:  "analyzes a census-style demographic dataset",
	Flags: []cli.Flag{
		&csvFlag,
		&sampleFlag,
		&seedFlag,
		&printFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The data-analysis demographic command loads a demographic dataset from
a CSV file (columns: age, education, occupation, race, sex,
hours-per-week, native-country, salary; extras ignored) or generates a
seeded synthetic dataset, and reports race counts, age, education and
income shares, working hours, and country statistics.

Examples:
    data-analysis demographic --csv adult.data.csv
    data-analysis demographic --sample 1000 --seed 42`,
}

func demographicAction(ctx *cli.Context) error {
	log := logger.New(ctx.String(logger.LogLevelFlag.Name), "demographic")

	var rows []census.Record
	switch {
	case ctx.String(csvFlag.Name) != "":
		path := ctx.String(csvFlag.Name)
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		rows, err = census.LoadCSV(f)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		log.Noticef("loaded %d records from %s", len(rows), path)
	case ctx.Int(sampleFlag.Name) > 0:
		rows = census.GenerateSample(ctx.Int(sampleFlag.Name), ctx.Uint64(seedFlag.Name))
		log.Noticef("generated %d sample records (seed %d)", len(rows), ctx.Uint64(seedFlag.Name))
	default:
		return fmt.Errorf("either --csv or --sample is required")
	}

	summary, err := census.Summarize(rows)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Println("Dataset Overview")
	printOverview(os.Stdout, rows)

	heading.Println("Demographic Analysis Results")
	printSummary(os.Stdout, summary)

	if ctx.Bool(printFlag.Name) {
		summary.Fprint(os.Stdout)
	}
	return nil
}

// printOverview sends the record count and >50K share into the output
// writer.
func printOverview(w io.Writer, rows []census.Record) {
	rich := 0
	for _, r := range rows {
		if r.Salary == census.SalaryOver50K {
			rich++
		}
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Total Records", "Salary >50K"})
	tbl.SetBorder(true)
	tbl.Append([]string{
		strconv.Itoa(len(rows)),
		fmt.Sprintf("%.1f%%", 100*float64(rich)/float64(len(rows))),
	})
	tbl.Render()
}

// printSummary sends the race tally and the remaining nine statistics
// into the output writer.
func printSummary(w io.Writer, s *census.Summary) {
	races := tablewriter.NewWriter(w)
	races.SetHeader([]string{"Race", "Count"})
	races.SetBorder(true)
	for _, rc := range s.RaceCount {
		races.Append([]string{rc.Race, strconv.Itoa(rc.Count)})
	}
	races.Render()

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Statistic", "Value"})
	tbl.SetBorder(true)
	tbl.Append([]string{"Average age of men", fmt.Sprintf("%.1f", s.AverageAgeMen)})
	tbl.Append([]string{"Bachelors degree holders", fmt.Sprintf("%.1f%%", s.PercentageBachelors)})
	tbl.Append([]string{"Higher education earning >50K", fmt.Sprintf("%.1f%%", s.HigherEducationRich)})
	tbl.Append([]string{"Lower education earning >50K", fmt.Sprintf("%.1f%%", s.LowerEducationRich)})
	tbl.Append([]string{"Minimum work hours per week", strconv.Itoa(s.MinWorkHours)})
	tbl.Append([]string{"Minimum-hour workers earning >50K", fmt.Sprintf("%.1f%%", s.RichPercentage)})
	tbl.Append([]string{"Highest earning country", s.HighestEarningCountry})
	tbl.Append([]string{"Highest earning country share", fmt.Sprintf("%.1f%%", s.HighestEarningCountryPercentage)})
	tbl.Append([]string{"Top occupation in India (>50K)", s.TopINOccupation})
	tbl.Render()
}
