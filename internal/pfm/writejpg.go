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
	"image/jpeg"
	"io"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Highlight color for no-data samples in preview exports, so removed
// outliers stand out against the grayscale payload
var noDataColor = colorful.Hsv(32, 0.95, 0.95)

// Write an 8-bit grayscale JPEG preview of the image, assuming data in [0,1].
// Samples equal to ignore are rendered in the no-data highlight color
func (f *Image) WriteMonoJPGToFile(fileName string, ignore float32, quality int) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return f.WriteMonoJPG(writer, ignore, quality)
}

// Write an 8-bit grayscale JPEG preview of the image, assuming data in [0,1].
// Samples equal to ignore are rendered in the no-data highlight color
func (f *Image) WriteMonoJPG(writer io.Writer, ignore float32, quality int) error {
	// convert samples into Golang Image
	width, height := int(f.Width), int(f.Height)
	img := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	nr, ng, nb := noDataColor.RGB255()
	noData := color.RGBA{nr, ng, nb, 255}
	for y := 0; y < height; y++ {
		yoffset := y * width
		for x := 0; x < width; x++ {
			gray := f.Data[yoffset+x]
			if gray == ignore {
				img.SetRGBA(x, y, noData)
				continue
			}
			// replace NaNs with zeros for export, else JPG output breaks
			if math.IsNaN(float64(gray)) || gray < 0 {
				gray = 0
			}
			if gray > 1 {
				gray = 1
			}
			g := uint8(gray * 255)
			img.SetRGBA(x, y, color.RGBA{g, g, g, 255})
		}
	}

	return jpeg.Encode(writer, img, &jpeg.Options{Quality: quality})
}
