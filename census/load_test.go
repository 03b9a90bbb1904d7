// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	const data = `age,workclass,education,occupation,race,sex,capital-gain,hours-per-week,native-country,salary
39, State-gov, Bachelors, Adm-clerical, White, Male, 2174, 40, United-States, <=50K
50, Self-emp-not-inc, Masters, Exec-managerial, Black, Female, 0, 13, India, >50K
`
	recs, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, Record{
		Age:           39,
		WorkClass:     "State-gov",
		Education:     "Bachelors",
		Occupation:    "Adm-clerical",
		Race:          "White",
		Sex:           "Male",
		CapitalGain:   2174,
		HoursPerWeek:  40,
		NativeCountry: "United-States",
		Salary:        "<=50K",
	}, recs[0])
	assert.Equal(t, "India", recs[1].NativeCountry)
	assert.Equal(t, ">50K", recs[1].Salary)
}

func TestLoadCSVExtraColumnsIgnored(t *testing.T) {
	const data = `fnlwgt,age,education,occupation,race,sex,hours-per-week,native-country,salary
77516,39,Bachelors,Sales,White,Male,40,United-States,<=50K
`
	recs, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 39, recs[0].Age)
	assert.Empty(t, recs[0].WorkClass)
	assert.Zero(t, recs[0].CapitalGain)
}

func TestLoadCSVMissingColumns(t *testing.T) {
	const data = `age,education,race
39,Bachelors,White
`
	recs, err := LoadCSV(strings.NewReader(data))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Nil(t, recs)
	for _, name := range []string{"occupation", "sex", "hours-per-week", "native-country", "salary"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadCSVBadNumber(t *testing.T) {
	const data = `age,education,occupation,race,sex,hours-per-week,native-country,salary
forty,Bachelors,Sales,White,Male,40,United-States,<=50K
`
	_, err := LoadCSV(strings.NewReader(data))
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"age"`)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadCSVThenSummarize(t *testing.T) {
	const data = `age,education,occupation,race,sex,hours-per-week,native-country,salary
30,Bachelors,Sales,White,Male,40,United-States,>50K
50,HS-grad,Sales,White,Male,40,United-States,<=50K
20,Bachelors,Tech,Asian-Pac-Islander,Female,20,India,>50K
60,Masters,Tech,Asian-Pac-Islander,Male,20,India,>50K
`
	recs, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	s, err := Summarize(recs)
	require.NoError(t, err)
	assert.Equal(t, 46.7, s.AverageAgeMen)
	assert.Equal(t, "Tech", s.TopINOccupation)
}
