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
	"math"
	"testing"
	"github.com/valyala/fastrand"
)


func TestCalc(t *testing.T) {
	data:=[]float32{2, 4, 4, 4, 5, 5, 7, 9}
	s:=Calc(data)
	if s.Min!=2 { t.Errorf("min got %f expect 2", s.Min) }
	if s.Max!=9 { t.Errorf("max got %f expect 9", s.Max) }
	if s.Mean!=5 { t.Errorf("mean got %f expect 5", s.Mean) }
	if s.StdDev!=2 { t.Errorf("stdDev got %f expect 2", s.StdDev) }
	if s.NumValues!=8 { t.Errorf("numValues got %d expect 8", s.NumValues) }
}


func TestFastApproxMedianSmall(t *testing.T) {
	// below the sample count, the median is exact
	data:=[]float32{9, 1, 7, 3, 5}
	med:=FastApproxMedian(data, 1024)
	if med!=5 {
		t.Errorf("median got %f expect 5", med)
	}
}


func TestFastApproxMedianConstant(t *testing.T) {
	data:=make([]float32, 100000)
	for i:=range data { data[i]=42 }
	med:=FastApproxMedian(data, 1024)
	if med!=42 {
		t.Errorf("median got %f expect 42", med)
	}
}


func TestHistogramPeak(t *testing.T) {
	data:=[]float32{0, 1, 2, 5, 5, 5, 5, 8, 10}
	bins:=make([]int32, 11)
	Histogram(data, 0, 10, bins)
	x, y:=GetPeak(bins, 0, 10)
	if y!=4 {
		t.Errorf("peak count got %d expect 4", y)
	}
	if x<5 || x>6 {
		t.Errorf("peak location got %f expect within [5,6]", x)
	}
}


func TestHistogramModeStdDev(t *testing.T) {
	// synthesize a gaussian-ish sample around mu=0.5, sigma=0.1
	rng:=fastrand.RNG{}
	data:=make([]float32, 100000)
	for i:=range data {
		// sum of uniforms approximates a normal distribution
		sum:=float32(0)
		for j:=0; j<12; j++ {
			sum+=float32(rng.Uint32n(1000000))/1000000.0
		}
		data[i]=0.5+(sum-6)*0.1
	}
	s:=Calc(data)
	mode, stdDev, err:=HistogramModeStdDev(data, s.Min, s.Max, 256)
	if err!=nil { t.Fatalf("fit error: %s", err.Error()) }
	if float32(math.Abs(float64(mode-0.5)))>0.1 {
		t.Errorf("mode got %f expect near 0.5", mode)
	}
	if stdDev<0.05 || stdDev>0.2 {
		t.Errorf("stdDev got %f expect near 0.1", stdDev)
	}
}
