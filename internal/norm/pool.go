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
	"github.com/mlnoga/pfmnorm/internal/pfm"
)

// Loads every distinct source grid exactly once, keyed by name. The target
// grid is always a member of the source set and is never loaded again.
// Any load failure aborts the whole set
func LoadSources(loader Loader, target *pfm.Image, names []string) (map[string]*pfm.Image, error) {
	grids:=map[string]*pfm.Image{target.FileName: target}
	for _,name:=range names {
		if _,ok:=grids[name]; ok { continue }
		g, err:=loader.Load(name)
		if err!=nil { return nil, fmt.Errorf("could not load image %s: %s", name, err.Error()) }
		grids[name]=g
	}
	return grids, nil
}

// Total number of samples across all grids, valid and no-data alike
func TotalPixels(grids map[string]*pfm.Image) (total int) {
	for _,g:=range grids {
		total+=g.Pixels()
	}
	return total
}

// Gathers all valid samples from the given grids into one flat buffer,
// sized up front to the total sample count. Samples bit-equal to ignore
// are skipped, as are IEEE NaN and infinities, which decode from well-formed
// files but would break the selection partitioning. Buffer order carries
// no meaning
func GatherValid(grids map[string]*pfm.Image, ignore float32) []float32 {
	values:=make([]float32, 0, TotalPixels(grids))
	for _,g:=range grids {
		for _,v:=range g.Data {
			if v==ignore { continue }
			if f64:=float64(v); math.IsNaN(f64) || math.IsInf(f64, 0) { continue }
			values=append(values, v)
		}
	}
	return values
}
