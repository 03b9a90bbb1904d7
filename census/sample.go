// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Category sets and weights for synthetic datasets, modeled on the
// 1994 census extract this package is usually fed.
var (
	sampleWorkClasses    = []string{"Private", "Self-emp-not-inc", "State-gov", "Federal-gov"}
	sampleEducations     = []string{"Bachelors", "HS-grad", "Masters", "Doctorate", "11th", "Some-college"}
	sampleMaritalStatus  = []string{"Never-married", "Married-civ-spouse", "Divorced", "Widowed"}
	sampleOccupations    = []string{"Prof-specialty", "Exec-managerial", "Adm-clerical", "Sales"}
	sampleRelationships  = []string{"Not-in-family", "Husband", "Wife", "Own-child"}
	sampleRaces          = []string{"White", "Black", "Asian-Pac-Islander", "Amer-Indian-Eskimo", "Other"}
	sampleRaceWeights    = []float64{0.85, 0.10, 0.03, 0.015, 0.005}
	sampleCountries      = []string{"United-States", "India", "Iran", "Cuba", "Mexico"}
	sampleCountryWeights = []float64{0.89, 0.04, 0.02, 0.03, 0.02}
	sampleSalaries       = []string{SalaryUnder50K, SalaryOver50K}
	sampleSalaryWeights  = []float64{0.76, 0.24}
)

// GenerateSample returns n synthetic demographic records drawn from
// fixed category sets with census-like weights. The output is
// deterministic for a given seed.
func GenerateSample(n int, seed uint64) []Record {
	src := rand.NewSource(seed)
	rnd := rand.New(src)
	race := distuv.NewCategorical(sampleRaceWeights, src)
	country := distuv.NewCategorical(sampleCountryWeights, src)
	salary := distuv.NewCategorical(sampleSalaryWeights, src)

	pick := func(cats []string) string { return cats[rnd.Intn(len(cats))] }

	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{
			Age:           17 + rnd.Intn(73),
			WorkClass:     pick(sampleWorkClasses),
			Education:     pick(sampleEducations),
			MaritalStatus: pick(sampleMaritalStatus),
			Occupation:    pick(sampleOccupations),
			Relationship:  pick(sampleRelationships),
			Race:          sampleRaces[int(race.Rand())],
			Sex:           pick([]string{"Male", "Female"}),
			CapitalGain:   rnd.Intn(10000),
			CapitalLoss:   rnd.Intn(1000),
			HoursPerWeek:  1 + rnd.Intn(79),
			NativeCountry: sampleCountries[int(country.Rand())],
			Salary:        sampleSalaries[int(salary.Rand())],
		}
	}
	return recs
}
