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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Write a PFM image to the file with the given name
func (f *Image) WriteFile(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err = f.Write(writer); err != nil {
		return err
	}
	return writer.Flush()
}

// Write a PFM image. Output is always little-endian, so the header scale
// factor is written with a negative sign
func (f *Image) Write(w io.Writer) error {
	scale := f.Scale
	if scale == 0 {
		scale = -1
	}
	if scale > 0 {
		scale = -scale
	}
	if _, err := fmt.Fprintf(w, "Pf\n%d %d\n%g\n", f.Width, f.Height, scale); err != nil {
		return err
	}

	buf := make([]byte, int(f.Width)*4)

	// the bottom row of the image is the first row in the file
	for y := f.Height - 1; y >= 0; y-- {
		row := f.Data[y*f.Width : (y+1)*f.Width]
		for x, v := range row {
			binary.LittleEndian.PutUint32(buf[x*4:], math.Float32bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
