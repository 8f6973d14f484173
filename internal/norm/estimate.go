// Copyright (C) 2021 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package norm

import (
	"errors"
	"github.com/mlnoga/pfmnorm/internal/qsort"
)

// An estimated normalization range. Min and Max are the bounds applied to
// the target; RealMin and RealMax are the exact extrema of the sample pool,
// for diagnostics only
type Range struct {
	Min     float32 `json:"min"`
	Max     float32 `json:"max"`
	RealMin float32 `json:"realMin"`
	RealMax float32 `json:"realMax"`
}

// Estimates the normalization range from the pooled valid samples.
// Explicit overrides in p are used verbatim; otherwise each bound is a
// trimmed extremum, selected with an independent linear-time quickselect
// pass per tail, trimming c=floor(N*epsilon/2) values. Reorders values.
//
// Note overrides are validated against each other in Params.Verify, but
// trimmed bounds are not: a large epsilon can legally yield Min > Max.
// Apply then classifies every valid sample as an outlier
func EstimateRange(values []float32, p *Params) (r Range, err error) {
	if len(values)==0 {
		return Range{}, errors.New("no valid samples to estimate the range from")
	}

	r.RealMin, r.RealMax=minMax(values)
	c:=int(float64(len(values))*float64(p.Epsilon)/2.0)

	r.Min=p.Min
	if !p.HasMin() {
		r.Min=qsort.QSelectFloat32(values, c+1)
	}
	r.Max=p.Max
	if !p.HasMax() {
		r.Max=qsort.QSelectDescFloat32(values, c+1)
	}
	return r, nil
}

// Exact minimum and maximum of the given data. Data must be non-empty
func minMax(data []float32) (min, max float32) {
	min, max=data[0], data[0]
	for _,v:=range data {
		if v<min { min=v }
		if v>max { max=v }
	}
	return min, max
}
