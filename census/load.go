// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package census

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RequiredColumns are the CSV headers a dataset must carry before it
// can be summarized. Extra columns are ignored; the optional columns
// (workclass, marital-status, relationship, capital-gain,
// capital-loss) are loaded when present.
var RequiredColumns = []string{
	"age",
	"education",
	"occupation",
	"race",
	"sex",
	"hours-per-week",
	"native-country",
	"salary",
}

var (
	// ErrMissingColumn is reported when the CSV header lacks one
	// of RequiredColumns. The header is validated before any row
	// is read.
	ErrMissingColumn = errors.New("missing required column")

	// ErrParse is reported when a numeric cell cannot be parsed.
	ErrParse = errors.New("malformed numeric value")
)

// LoadCSV reads a demographic dataset from a header-driven CSV
// stream. Cell whitespace is trimmed, which makes the common
// comma-space census formatting ("39, State-gov, ...") load cleanly.
func LoadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	var recs []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(name string, optional bool) (int, error) {
			v := cell(name)
			if v == "" && optional {
				return 0, nil
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("row %d, column %q: %w: %q", line, name, ErrParse, v)
			}
			return n, nil
		}

		rec := Record{
			WorkClass:     cell("workclass"),
			Education:     cell("education"),
			MaritalStatus: cell("marital-status"),
			Occupation:    cell("occupation"),
			Relationship:  cell("relationship"),
			Race:          cell("race"),
			Sex:           cell("sex"),
			NativeCountry: cell("native-country"),
			Salary:        cell("salary"),
		}
		if rec.Age, err = num("age", false); err != nil {
			return nil, err
		}
		if rec.HoursPerWeek, err = num("hours-per-week", false); err != nil {
			return nil, err
		}
		if rec.CapitalGain, err = num("capital-gain", true); err != nil {
			return nil, err
		}
		if rec.CapitalLoss, err = num("capital-loss", true); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
