// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// ErrEmptyDataset is the error reported when a statistic's
// denominator is zero: the dataset is empty, or a required subset
// (men, rows with or without an advanced degree) has no rows.
// Summarize fails fast on the first such statistic rather than
// returning partial results.
var ErrEmptyDataset = errors.New("no rows to aggregate")

// Salary values recognized by the summary.
const (
	SalaryOver50K  = ">50K"
	SalaryUnder50K = "<=50K"
)

// higherEducation reports whether education counts as an advanced
// degree.
func higherEducation(education string) bool {
	switch education {
	case "Bachelors", "Masters", "Doctorate":
		return true
	}
	return false
}

// round1 rounds to one decimal digit, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// pct returns the rounded percentage part/total*100.
func pct(part, total int) float64 {
	return round1(100 * float64(part) / float64(total))
}

// Summarize computes the ten demographic statistics over rows. The
// ten steps are independent and each consumes the full record set
// (filtered as its definition requires); see Summary for the exact
// semantics of every field.
//
// Summarize is pure: it does not modify rows and two calls with the
// same input yield identical results. It fails with an error wrapping
// ErrEmptyDataset when any denominator is zero.
func Summarize(rows []Record) (*Summary, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("race count: %w", ErrEmptyDataset)
	}
	s := new(Summary)

	// Race tally, descending count, ties by name.
	byRace := make(map[string]int)
	for _, r := range rows {
		byRace[r.Race]++
	}
	for race, n := range byRace {
		s.RaceCount = append(s.RaceCount, RaceCount{race, n})
	}
	sort.Slice(s.RaceCount, func(i, j int) bool {
		a, b := s.RaceCount[i], s.RaceCount[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Race < b.Race
	})

	// Average age of men.
	var menAges []float64
	for _, r := range rows {
		if r.Sex == "Male" {
			menAges = append(menAges, float64(r.Age))
		}
	}
	if len(menAges) == 0 {
		return nil, fmt.Errorf("average age of men: %w", ErrEmptyDataset)
	}
	meanAge, err := stats.Mean(menAges)
	if err != nil {
		return nil, fmt.Errorf("average age of men: %w", err)
	}
	s.AverageAgeMen = round1(meanAge)

	// Share of Bachelors degrees.
	bachelors := 0
	for _, r := range rows {
		if r.Education == "Bachelors" {
			bachelors++
		}
	}
	s.PercentageBachelors = pct(bachelors, len(rows))

	// >50K share with and without an advanced degree.
	var higher, higherRich, lower, lowerRich int
	for _, r := range rows {
		rich := r.Salary == SalaryOver50K
		if higherEducation(r.Education) {
			higher++
			if rich {
				higherRich++
			}
		} else {
			lower++
			if rich {
				lowerRich++
			}
		}
	}
	if higher == 0 {
		return nil, fmt.Errorf("higher education rich: %w", ErrEmptyDataset)
	}
	if lower == 0 {
		return nil, fmt.Errorf("lower education rich: %w", ErrEmptyDataset)
	}
	s.HigherEducationRich = pct(higherRich, higher)
	s.LowerEducationRich = pct(lowerRich, lower)

	// Minimum working hours and the >50K share at that minimum.
	// The minimum is attained by at least one row, so the
	// denominator cannot be zero here.
	hours := make([]float64, len(rows))
	for i, r := range rows {
		hours[i] = float64(r.HoursPerWeek)
	}
	minHours, err := stats.Min(hours)
	if err != nil {
		return nil, fmt.Errorf("min work hours: %w", err)
	}
	s.MinWorkHours = int(minHours)
	var minWorkers, minWorkersRich int
	for _, r := range rows {
		if r.HoursPerWeek == s.MinWorkHours {
			minWorkers++
			if r.Salary == SalaryOver50K {
				minWorkersRich++
			}
		}
	}
	s.RichPercentage = pct(minWorkersRich, minWorkers)

	// Country with the highest >50K share. Group sizes are
	// nonzero by construction. Countries are visited in sorted
	// order and only a strictly larger share replaces the
	// incumbent, so ties resolve to the smallest name.
	type tally struct{ total, rich int }
	byCountry := make(map[string]*tally)
	for _, r := range rows {
		t := byCountry[r.NativeCountry]
		if t == nil {
			t = new(tally)
			byCountry[r.NativeCountry] = t
		}
		t.total++
		if r.Salary == SalaryOver50K {
			t.rich++
		}
	}
	countries := make([]string, 0, len(byCountry))
	for country := range byCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	best := math.Inf(-1)
	for _, country := range countries {
		t := byCountry[country]
		share := 100 * float64(t.rich) / float64(t.total)
		if share > best {
			best = share
			s.HighestEarningCountry = country
		}
	}
	s.HighestEarningCountryPercentage = round1(best)

	// Most common occupation among >50K earners from India.
	byOccupation := make(map[string]int)
	for _, r := range rows {
		if r.NativeCountry == "India" && r.Salary == SalaryOver50K {
			byOccupation[r.Occupation]++
		}
	}
	s.TopINOccupation = NoData
	if len(byOccupation) > 0 {
		occupations := make([]string, 0, len(byOccupation))
		for occupation := range byOccupation {
			occupations = append(occupations, occupation)
		}
		sort.Strings(occupations)
		top := 0
		for _, occupation := range occupations {
			if n := byOccupation[occupation]; n > top {
				top = n
				s.TopINOccupation = occupation
			}
		}
	}

	return s, nil
}
