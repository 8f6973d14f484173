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
	"strconv"
)

const maxDimension = 1 << 20 // sanity limit for header width/height values

// Read a PFM image from the file with the given name
func NewImageFromFile(fileName string) (f *Image, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f = &Image{FileName: fileName}
	if err = f.Read(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("%s: %s", fileName, err.Error())
	}
	return f, nil
}

// Read a PFM image: header tokens (type, width, height, scale), then one
// binary float32 per sample, rows ordered bottom-to-top as per the format
func (f *Image) Read(r *bufio.Reader) (err error) {
	magic, err := readToken(r)
	if err != nil {
		return err
	}
	switch magic {
	case "Pf":
		// grayscale, one channel
	case "PF":
		return fmt.Errorf("color PFM images are not supported")
	default:
		return fmt.Errorf("not a PFM file, header type is %q", magic)
	}

	if f.Width, err = readDimension(r); err != nil {
		return err
	}
	if f.Height, err = readDimension(r); err != nil {
		return err
	}

	tok, err := readToken(r)
	if err != nil {
		return err
	}
	scale, err := strconv.ParseFloat(tok, 32)
	if err != nil || scale == 0 {
		return fmt.Errorf("invalid scale factor %q", tok)
	}
	f.Scale = float32(scale)

	return f.readData(r)
}

// Read the binary sample payload in the byte order given by the scale sign
func (f *Image) readData(r io.Reader) error {
	var order binary.ByteOrder = binary.BigEndian
	if f.Scale < 0 {
		order = binary.LittleEndian
	}

	f.Data = make([]float32, int(f.Width)*int(f.Height))
	buf := make([]byte, int(f.Width)*4)

	// the first row in the file is the bottom row of the image
	for y := f.Height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("reading row %d: %s", y, err.Error())
		}
		row := f.Data[y*f.Width : (y+1)*f.Width]
		for x := range row {
			row[x] = math.Float32frombits(order.Uint32(buf[x*4:]))
		}
	}
	return nil
}

func readDimension(r *bufio.Reader) (int32, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || n > maxDimension {
		return 0, fmt.Errorf("invalid image dimension %q", tok)
	}
	return int32(n), nil
}

// Read the next whitespace-delimited header token, consuming exactly one
// whitespace byte after it, so the binary payload can follow immediately
func readToken(r *bufio.Reader) (string, error) {
	var b byte
	var err error
	for {
		if b, err = r.ReadByte(); err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}
	tok := []byte{b}
	for {
		if b, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				return string(tok), nil
			}
			return "", err
		}
		if isSpace(b) {
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
