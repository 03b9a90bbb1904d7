// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// matstats computes descriptive statistics over a 3x3 grid of numbers
// along its columns, its rows, and the flattened grid.
package matstats // import "github.com/Ratheesh-DP/data-analysis-streamlit-app/matstats"
