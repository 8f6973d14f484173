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
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/tiff"
)

// Write a 16-bit TIFF preview of the image, assuming data in [0,1].
// Samples equal to ignore are rendered in the no-data highlight color
func (f *Image) WriteMonoTIFF16ToFile(fileName string, ignore float32) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return f.WriteMonoTIFF16(writer, ignore)
}

// Write a 16-bit TIFF preview of the image, assuming data in [0,1].
// Samples equal to ignore are rendered in the no-data highlight color
func (f *Image) WriteMonoTIFF16(writer io.Writer, ignore float32) error {
	// convert samples into Golang Image
	width, height := int(f.Width), int(f.Height)
	img := image.NewRGBA64(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	nr, ng, nb, _ := noDataColor.RGBA()
	noData := color.RGBA64{uint16(nr), uint16(ng), uint16(nb), 65535}
	for y := 0; y < height; y++ {
		yoffset := y * width
		for x := 0; x < width; x++ {
			gray := f.Data[yoffset+x]
			if gray == ignore {
				img.SetRGBA64(x, y, noData)
				continue
			}
			// replace NaNs with zeros for export, else TIFF output breaks
			if math.IsNaN(float64(gray)) || gray < 0 {
				gray = 0
			}
			if gray > 1 {
				gray = 1
			}
			g := uint16(gray * 65535)
			img.SetRGBA64(x, y, color.RGBA64{g, g, g, 65535})
		}
	}

	return tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
