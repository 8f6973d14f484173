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

// Marker values for unset range overrides
const (
	MinAuto = -math.MaxFloat32
	MaxAuto =  math.MaxFloat32
)

// Parameters for one normalization run
type Params struct {
	Epsilon float32  `json:"epsilon"` // Fraction of values to trim, half per tail, in [0,1]
	Ignore  float32  `json:"ignore"`  // The no-data value, excluded from all statistics
	Clamp   bool     `json:"clamp"`   // Clamp outliers to [0,1] instead of marking them no-data
	Min     float32  `json:"minimum"` // Explicit lower bound, MinAuto for trimmed estimation
	Max     float32  `json:"maximum"` // Explicit upper bound, MaxAuto for trimmed estimation
	Sources []string `json:"images"`  // Grids supplying statistics; the target is always included
}

// Returns parameters with the default settings
func NewParams() *Params {
	return &Params{
		Epsilon: 0,
		Ignore:  -1.0,
		Clamp:   false,
		Min:     MinAuto,
		Max:     MaxAuto,
	}
}

func (p *Params) HasMin() bool { return p.Min!=float32(MinAuto) }
func (p *Params) HasMax() bool { return p.Max!=float32(MaxAuto) }

// Validates the parameters. Called before any grid is loaded
func (p *Params) Verify() error {
	if p.Epsilon<0 || p.Epsilon>1 {
		return fmt.Errorf("epsilon %g is supposed to be in the interval [0,1]", p.Epsilon)
	}
	if p.HasMin() && p.HasMax() && p.Max<p.Min {
		return fmt.Errorf("minimum %g has to be smaller than maximum %g", p.Min, p.Max)
	}
	return nil
}

// Loads named sample grids
type Loader interface {
	Load(name string) (*pfm.Image, error)
}

// Persists named sample grids
type Saver interface {
	Save(name string, f *pfm.Image) error
}
