// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// census summarizes census-style demographic record sets. It answers
// a fixed set of ten questions about race, age, education, income,
// working hours, and country of origin.
package census // import "github.com/Ratheesh-DP/data-analysis-streamlit-app/census"

import (
	"fmt"
	"io"
)

// A Record is one row of a demographic dataset. Categorical fields
// are compared by exact value equality ("Male", "Bachelors", ">50K",
// ...); no case or whitespace normalization is performed, so callers
// must supply canonical values.
type Record struct {
	Age           int
	WorkClass     string
	Education     string
	MaritalStatus string
	Occupation    string
	Relationship  string
	Race          string
	Sex           string
	CapitalGain   int
	CapitalLoss   int
	HoursPerWeek  int
	NativeCountry string
	Salary        string
}

// A RaceCount is one entry of the per-race tally.
type RaceCount struct {
	Race  string
	Count int
}

// NoData is the TopINOccupation value reported when the dataset has
// no >50K earners from India.
const NoData = "No data"

// A Summary holds the ten statistics computed by Summarize.
//
// All percentage fields and AverageAgeMen are rounded to one decimal
// digit, half away from zero.
type Summary struct {
	// RaceCount tallies the rows of each race. Every race in the
	// dataset is present and the counts sum to the total row
	// count. Entries are ordered by descending count; equal
	// counts are ordered by race name.
	RaceCount []RaceCount

	// AverageAgeMen is the mean age of rows with sex "Male".
	AverageAgeMen float64

	// PercentageBachelors is the share of rows with education
	// "Bachelors".
	PercentageBachelors float64

	// HigherEducationRich and LowerEducationRich are the shares
	// of ">50K" earners among rows with and without an advanced
	// degree (Bachelors, Masters, or Doctorate).
	HigherEducationRich float64
	LowerEducationRich  float64

	// MinWorkHours is the smallest hours-per-week value.
	MinWorkHours int

	// RichPercentage is the share of ">50K" earners among rows
	// working exactly MinWorkHours.
	RichPercentage float64

	// HighestEarningCountry is the native country with the
	// largest share of ">50K" earners, and
	// HighestEarningCountryPercentage is that share. Equal shares
	// are broken by the lexicographically smallest country name.
	HighestEarningCountry           string
	HighestEarningCountryPercentage float64

	// TopINOccupation is the most common occupation among ">50K"
	// earners with native country "India", or NoData if there are
	// none. Equal counts are broken by the lexicographically
	// smallest occupation name.
	TopINOccupation string
}

// Fprint writes a plain-text report of all ten statistics to w.
func (s *Summary) Fprint(w io.Writer) {
	fmt.Fprintln(w, "Number of each race:")
	for _, rc := range s.RaceCount {
		fmt.Fprintf(w, "  %s: %d\n", rc.Race, rc.Count)
	}
	fmt.Fprintf(w, "Average age of men: %.1f\n", s.AverageAgeMen)
	fmt.Fprintf(w, "Percentage with Bachelors degrees: %.1f%%\n", s.PercentageBachelors)
	fmt.Fprintf(w, "Percentage with higher education that earn >50K: %.1f%%\n", s.HigherEducationRich)
	fmt.Fprintf(w, "Percentage without higher education that earn >50K: %.1f%%\n", s.LowerEducationRich)
	fmt.Fprintf(w, "Min work time: %d hours/week\n", s.MinWorkHours)
	fmt.Fprintf(w, "Percentage of rich among those who work fewest hours: %.1f%%\n", s.RichPercentage)
	fmt.Fprintf(w, "Country with highest percentage of rich: %s\n", s.HighestEarningCountry)
	fmt.Fprintf(w, "Highest percentage of rich people in country: %.1f%%\n", s.HighestEarningCountryPercentage)
	fmt.Fprintf(w, "Top occupations in India: %s\n", s.TopINOccupation)
}
