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
	"github.com/mlnoga/pfmnorm/internal/pfm"
)

// Rewrites the target grid in place in one pass, mapping [r.Min,r.Max]
// linearly to [0,1], and returns the number of outliers. Samples equal to
// ignore stay untouched and are not counted. Out-of-range samples clamp to
// 0 or 1 when clamp is set, and become the ignore value otherwise.
// A zero-width range maps every in-range sample to 0, never to IEEE NaN
func Apply(f *pfm.Image, r Range, ignore float32, clamp bool) (outliers int) {
	delta:=r.Max-r.Min
	for i,v:=range f.Data {
		if v==ignore { continue }
		if v>=r.Min && v<=r.Max {
			if delta==0 {
				f.Data[i]=0
			} else {
				f.Data[i]=(v-r.Min)/delta
			}
		} else if v>r.Max {
			if clamp {
				f.Data[i]=1.0
			} else {
				f.Data[i]=ignore
			}
			outliers++
		} else {
			if clamp {
				f.Data[i]=0.0
			} else {
				f.Data[i]=ignore
			}
			outliers++
		}
	}
	return outliers
}
