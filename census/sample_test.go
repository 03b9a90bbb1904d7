// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleDeterministic(t *testing.T) {
	a := GenerateSample(100, 42)
	b := GenerateSample(100, 42)
	assert.Equal(t, a, b)

	c := GenerateSample(100, 43)
	assert.NotEqual(t, a, c)
}

func TestGenerateSampleDomains(t *testing.T) {
	rows := GenerateSample(200, 7)
	require.Len(t, rows, 200)

	races := make(map[string]bool)
	for _, r := range sampleRaces {
		races[r] = true
	}
	for _, rec := range rows {
		assert.GreaterOrEqual(t, rec.Age, 17)
		assert.Less(t, rec.Age, 90)
		assert.GreaterOrEqual(t, rec.HoursPerWeek, 1)
		assert.Less(t, rec.HoursPerWeek, 80)
		assert.True(t, races[rec.Race], "unknown race %q", rec.Race)
		assert.Contains(t, []string{SalaryUnder50K, SalaryOver50K}, rec.Salary)
		assert.Contains(t, []string{"Male", "Female"}, rec.Sex)
		assert.Contains(t, sampleCountries, rec.NativeCountry)
	}
}

func TestGenerateSampleSummarizes(t *testing.T) {
	// A reasonably sized sample exercises every aggregation step
	// without hitting a zero denominator.
	rows := GenerateSample(1000, 42)
	s, err := Summarize(rows)
	require.NoError(t, err)
	assert.NotEmpty(t, s.RaceCount)
	assert.NotEmpty(t, s.HighestEarningCountry)
	assert.Greater(t, s.AverageAgeMen, 17.0)
	assert.GreaterOrEqual(t, s.MinWorkHours, 1)
}
