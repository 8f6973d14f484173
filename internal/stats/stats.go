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


package stats

import (
	"fmt"
	"math"
	"github.com/valyala/fastrand"
	"github.com/mlnoga/pfmnorm/internal/qsort"
)

// Basic statistics on a buffer of valid samples
type Stats struct {
	Min    float32  // Minimum
	Max    float32  // Maximum
	Mean   float32  // Mean (average)
	StdDev float32  // Standard deviation (norm 2, sigma)

	NumValues int   // Number of samples the above were computed from
}


// Pretty print basic stats to string
func (s *Stats) String() string {
	return fmt.Sprintf("Min %.6g Max %.6g Mean %.6g StdDev %.6g N %d",
	                 	s.Min, s.Max,   s.Mean,   s.StdDev,   s.NumValues)
}


// Calculate basic statistics for a data array. Data must be non-empty
func Calc(data []float32) (s *Stats) {
	s=&Stats{NumValues: len(data)}
	s.Min, s.Mean, s.Max=minMeanMax(data)

	variance:=calcVariance(data, s.Mean)
	s.StdDev=float32(math.Sqrt(variance))

	return s
}


// Calculate minimum, mean and maximum of given data
func minMeanMax(data []float32) (min, mean, max float32) {
	mmin, msum, mmax:=data[0], float64(0), data[0]
	for _,v := range data {
		if v<mmin {
			mmin=v
		}
		if v>mmax {
			mmax=v
		}
		msum+=float64(v)
	}
	return mmin, float32(msum/float64(len(data))), mmax
}


// Calculate variance of given data from provided mean
func calcVariance(data []float32, mean float32) (result float64) {
	variance:=float64(0)
	for _,v :=range data {
		diff:=float64(v-mean)
		variance+=diff*diff
	}
	return variance/float64(len(data))
}


// Calculates fast approximate median of the (presumably large) data by randomly
// subsampling numSamples values and taking the median of that. For data shorter
// than numSamples, selects the exact median on a copy instead
func FastApproxMedian(data []float32, numSamples int) float32 {
	samples:=make([]float32, numSamples)
	if len(data)<=numSamples {
		samples=samples[:len(data)]
		copy(samples, data)
	} else {
		max:=uint32(len(data))
		rng:=fastrand.RNG{}
		for i:=range samples {
			index:=rng.Uint32n(max)
			samples[i]=data[index]
		}
	}
	median:=qsort.QSelectMedianFloat32(samples)
	return median
}
