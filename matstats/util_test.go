// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matstats

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeq3(expect, got [3]float64) bool {
	return aeq(expect[0], got[0]) && aeq(expect[1], got[1]) && aeq(expect[2], got[2])
}
