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

package pfm

import (
	"fmt"
)

// A grayscale PFM (portable float map) image.
// Spec here: http://www.pauldebevec.com/Research/HDR/PFM/
type Image struct {
	FileName string // Original file name, if any, for log output

	Width  int32 // Number of columns
	Height int32 // Number of rows

	Scale float32 // Scale factor from the header. The sign encodes the
	// byte order on disk: negative is little-endian, positive big-endian

	Data []float32 // The sample data, row-major, top row first
}

// Creates a grayscale PFM image of the given dimensions with allocated data
func NewImage(width, height int32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Scale:  -1,
		Data:   make([]float32, int(width)*int(height)),
	}
}

// Number of samples in the image. Computed in int, as the header admits
// dimensions whose product overflows int32
func (f *Image) Pixels() int {
	return int(f.Width) * int(f.Height)
}

func (f *Image) DimensionsToString() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}
