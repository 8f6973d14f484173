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
	"fmt"
	"math"
	"testing"
	"github.com/mlnoga/pfmnorm/internal/pfm"
)


// in-memory loader counting loads per name
type fakeLoader struct {
	grids map[string]*pfm.Image
	loads map[string]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{grids: map[string]*pfm.Image{}, loads: map[string]int{}}
}

func (l *fakeLoader) add(name string, values ...float32) *pfm.Image {
	f:=pfm.NewImage(int32(len(values)), 1)
	f.FileName=name
	copy(f.Data, values)
	l.grids[name]=f
	return f
}

func (l *fakeLoader) Load(name string) (*pfm.Image, error) {
	l.loads[name]++
	f, ok:=l.grids[name]
	if !ok { return nil, fmt.Errorf("no such image %s", name) }
	return f, nil
}


func TestLoadSourcesDedup(t *testing.T) {
	loader:=newFakeLoader()
	target:=loader.add("a.pfm", 1, 2, 3)
	loader.add("b.pfm", 4, 5)

	// duplicate names, including the target itself, collapse to one load
	grids, err:=LoadSources(loader, target, []string{"b.pfm", "a.pfm", "b.pfm", "b.pfm"})
	if err!=nil { t.Fatalf("load: %s", err.Error()) }
	if len(grids)!=2 {
		t.Errorf("grids got %d expect 2", len(grids))
	}
	if loader.loads["a.pfm"]!=0 {
		t.Errorf("target loaded %d times expect 0, it is preloaded", loader.loads["a.pfm"])
	}
	if loader.loads["b.pfm"]!=1 {
		t.Errorf("b.pfm loaded %d times expect 1", loader.loads["b.pfm"])
	}
}


func TestLoadSourcesFailure(t *testing.T) {
	loader:=newFakeLoader()
	target:=loader.add("a.pfm", 1, 2, 3)
	if _, err:=LoadSources(loader, target, []string{"missing.pfm"}); err==nil {
		t.Errorf("expected error for missing source")
	}
}


func TestGatherValid(t *testing.T) {
	loader:=newFakeLoader()
	target:=loader.add("a.pfm", 1, -1.0, 3)
	loader.add("b.pfm", -1.0, 5)
	grids, err:=LoadSources(loader, target, []string{"b.pfm"})
	if err!=nil { t.Fatalf("load: %s", err.Error()) }

	values:=GatherValid(grids, -1.0)
	if len(values)!=3 {
		t.Fatalf("valid values got %d expect 3", len(values))
	}
	if cap(values)!=TotalPixels(grids) {
		t.Errorf("buffer capacity got %d expect presized to %d", cap(values), TotalPixels(grids))
	}
	sum:=float32(0)
	for _,v:=range values { sum+=v }
	if sum!=9 {
		t.Errorf("pooled values sum got %g expect 9", sum)
	}
}


func TestGatherValidNonFinite(t *testing.T) {
	nan:=float32(math.NaN())
	inf:=float32(math.Inf(1))
	loader:=newFakeLoader()
	target:=loader.add("a.pfm", 1, 2, nan, 4, 5, 6, inf, 8, 9, 10, -inf, -1.0)

	grids, err:=LoadSources(loader, target, nil)
	if err!=nil { t.Fatalf("load: %s", err.Error()) }
	values:=GatherValid(grids, -1.0)
	if len(values)!=8 {
		t.Fatalf("valid values got %d expect 8, non-finite samples must be excluded", len(values))
	}
	for _,v:=range values {
		if f64:=float64(v); math.IsNaN(f64) || math.IsInf(f64, 0) {
			t.Fatalf("non-finite sample %g leaked into the pool", v)
		}
	}

	// trimmed estimation over the filtered pool must stay in bounds
	p:=NewParams()
	p.Epsilon=0.4
	r, err:=EstimateRange(values, p)
	if err!=nil { t.Fatalf("estimate: %s", err.Error()) }
	if r.Min!=2 || r.Max!=9 {
		t.Errorf("range got [%g,%g] expect [2,9]", r.Min, r.Max)
	}
}


func TestGatherValidDuplicatesCollapse(t *testing.T) {
	loader:=newFakeLoader()
	target:=loader.add("a.pfm", 1, 2, 3)

	once, err:=LoadSources(loader, target, []string{"a.pfm"})
	if err!=nil { t.Fatalf("load: %s", err.Error()) }
	twice, err:=LoadSources(loader, target, []string{"a.pfm", "a.pfm"})
	if err!=nil { t.Fatalf("load: %s", err.Error()) }

	a:=GatherValid(once, -1.0)
	b:=GatherValid(twice, -1.0)
	if len(a)!=3 || len(b)!=3 {
		t.Errorf("pooled counts got %d and %d expect 3 and 3", len(a), len(b))
	}
}
