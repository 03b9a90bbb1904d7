// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matstats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInputLength is the error returned by Calculate when the input
// does not contain exactly nine numbers. The check happens before any
// numeric work.
var ErrInputLength = errors.New("list must contain nine numbers")

// AxisValues holds one statistic computed along the three axes of the
// grid.
type AxisValues struct {
	// Cols has one value per column, combining the three row
	// values occupying that column. Indexed by column.
	Cols [3]float64

	// Rows has one value per row, combining the three values
	// within that row. Indexed by row.
	Rows [3]float64

	// Flat is the statistic over all nine values irrespective of
	// grid position.
	Flat float64
}

// Calculations is the result of Calculate. Each field holds one of
// the six statistics along the three axes, so the result always has
// six statistics of exactly three entries each: two three-element
// axes and one scalar.
//
// Variance and StdDev are population statistics (divisor N, not N-1).
type Calculations struct {
	Mean     AxisValues
	Variance AxisValues
	StdDev   AxisValues
	Max      AxisValues
	Min      AxisValues
	Sum      AxisValues
}

// NamedAxisValues pairs a statistic with its conventional name. It
// exists for callers that render Calculations as a table.
type NamedAxisValues struct {
	Name   string
	Values AxisValues
}

// Named returns the six statistics in their conventional order under
// their conventional names.
func (c *Calculations) Named() []NamedAxisValues {
	return []NamedAxisValues{
		{"mean", c.Mean},
		{"variance", c.Variance},
		{"standard deviation", c.StdDev},
		{"max", c.Max},
		{"min", c.Min},
		{"sum", c.Sum},
	}
}

// Calculate arranges xs row-major into a 3x3 grid (element i occupies
// row i/3, column i%3) and computes the mean, population variance,
// population standard deviation, max, min, and sum down each column,
// across each row, and over the flattened grid.
//
// No rounding is applied. A NaN input makes every statistic of the
// axes it lies on NaN, max and min included. Calculate fails with
// ErrInputLength if xs does not contain exactly nine values.
func Calculate(xs []float64) (*Calculations, error) {
	if len(xs) != 9 {
		return nil, ErrInputLength
	}

	grid := mat.NewDense(3, 3, append([]float64(nil), xs...))

	var c Calculations
	vec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		mat.Col(vec, i, grid)
		reduce(vec, i, &c, axisCols)
		mat.Row(vec, i, grid)
		reduce(vec, i, &c, axisRows)
	}

	flat := grid.RawMatrix().Data
	c.Mean.Flat = stat.Mean(flat, nil)
	c.Variance.Flat = stat.PopVariance(flat, nil)
	c.StdDev.Flat = stat.PopStdDev(flat, nil)
	c.Max.Flat = maxOf(flat)
	c.Min.Flat = minOf(flat)
	c.Sum.Flat = floats.Sum(flat)

	return &c, nil
}

type axis int

const (
	axisCols axis = iota
	axisRows
)

// reduce computes all six statistics of one column or row vector and
// stores them at index i of the corresponding axis.
func reduce(vec []float64, i int, c *Calculations, ax axis) {
	set := func(av *AxisValues, v float64) {
		if ax == axisCols {
			av.Cols[i] = v
		} else {
			av.Rows[i] = v
		}
	}
	set(&c.Mean, stat.Mean(vec, nil))
	set(&c.Variance, stat.PopVariance(vec, nil))
	set(&c.StdDev, stat.PopStdDev(vec, nil))
	set(&c.Max, maxOf(vec))
	set(&c.Min, minOf(vec))
	set(&c.Sum, floats.Sum(vec))
}

// maxOf and minOf reduce like floats.Max and floats.Min except that a
// NaN element makes the result NaN, matching the arithmetic
// statistics, which propagate NaN on their own.

func maxOf(vec []float64) float64 {
	if floats.HasNaN(vec) {
		return math.NaN()
	}
	return floats.Max(vec)
}

func minOf(vec []float64) float64 {
	if floats.HasNaN(vec) {
		return math.NaN()
	}
	return floats.Min(vec)
}
