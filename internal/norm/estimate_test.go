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
	"testing"
	"github.com/valyala/fastrand"
)


// values 1..100 in random order
func rampShuffled() []float32 {
	values:=make([]float32, 100)
	for i:=range values {
		values[i]=float32(i+1)
	}
	rng:=fastrand.RNG{}
	for i:=range values {
		j:=rng.Uint32n(uint32(len(values)))
		values[i], values[j] = values[j], values[i]
	}
	return values
}


func TestEstimateNoTrim(t *testing.T) {
	values:=rampShuffled()
	p:=NewParams()
	r, err:=EstimateRange(values, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }

	// epsilon 0: the trimmed bounds equal the true extrema exactly
	if r.RealMin!=1 || r.RealMax!=100 {
		t.Errorf("real extrema got [%g,%g] expect [1,100]", r.RealMin, r.RealMax)
	}
	if r.Min!=r.RealMin || r.Max!=r.RealMax {
		t.Errorf("bounds got [%g,%g] expect [1,100]", r.Min, r.Max)
	}
}


func TestEstimateTrimmed(t *testing.T) {
	values:=rampShuffled()
	p:=NewParams()
	p.Epsilon=0.1

	// c = floor(100*0.1/2) = 5, so min is the 6th smallest and max the 6th largest
	r, err:=EstimateRange(values, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }
	if r.Min!=6 {
		t.Errorf("min got %g expect 6", r.Min)
	}
	if r.Max!=95 {
		t.Errorf("max got %g expect 95", r.Max)
	}
	if r.RealMin!=1 || r.RealMax!=100 {
		t.Errorf("real extrema got [%g,%g] expect [1,100]", r.RealMin, r.RealMax)
	}
}


func TestEstimateOverrides(t *testing.T) {
	values:=rampShuffled()
	p:=NewParams()
	p.Epsilon=0.1
	p.Min, p.Max = 10, 90

	// overrides are used verbatim, trimming only applies to estimated bounds
	r, err:=EstimateRange(values, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }
	if r.Min!=10 || r.Max!=90 {
		t.Errorf("bounds got [%g,%g] expect [10,90]", r.Min, r.Max)
	}
	if r.RealMin!=1 || r.RealMax!=100 {
		t.Errorf("real extrema got [%g,%g] expect [1,100]", r.RealMin, r.RealMax)
	}
}


func TestEstimateInvertedBounds(t *testing.T) {
	values:=rampShuffled()
	p:=NewParams()
	p.Epsilon=1

	// c = floor(100*1/2) = 50: min is the 51st smallest (51) and max the
	// 51st largest (50). Trimmed bounds are not cross-validated, so the
	// inverted range is returned as is
	r, err:=EstimateRange(values, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }
	if r.Min!=51 || r.Max!=50 {
		t.Errorf("bounds got [%g,%g] expect inverted [51,50]", r.Min, r.Max)
	}
}


func TestEstimateEmpty(t *testing.T) {
	p:=NewParams()
	if _, err:=EstimateRange(nil, p); err==nil {
		t.Errorf("expected error for empty sample pool")
	}
}


func TestEstimateSingleValue(t *testing.T) {
	p:=NewParams()
	p.Epsilon=1
	r, err:=EstimateRange([]float32{7}, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }
	if r.Min!=7 || r.Max!=7 {
		t.Errorf("bounds got [%g,%g] expect [7,7]", r.Min, r.Max)
	}
}
