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


package ops

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"github.com/pbnjay/memory"
	"github.com/mlnoga/pfmnorm/internal/norm"
	"github.com/mlnoga/pfmnorm/internal/pfm"
	"github.com/mlnoga/pfmnorm/internal/stats"
)

// An execution context for operators
type Context struct {
	Log      io.Writer
	Loader   norm.Loader
	Saver    norm.Saver
	MemoryMB int  // memory.TotalMemory()/1024/1024
}

func NewContext(log io.Writer, loader norm.Loader, saver norm.Saver) *Context {
	return &Context{
		Log      : log,
		Loader   : loader,
		Saver    : saver,
		MemoryMB : int(memory.TotalMemory()/1024/1024),
	}
}

// An image processing operator: takes zero or one image, produces one
// image or an error. Init validates the configuration before any image
// is touched
type Operator interface {
	Init() error
	Apply(f *pfm.Image, c *Context) (fOut *pfm.Image, err error)
}

// Applies a sequence of operators to an image. Initializes every step
// before the first one runs, so configuration errors surface before any I/O
type Sequence struct {
	Steps []Operator  `json:"steps"`
}

func NewSequence(steps ...Operator) *Sequence {
	return &Sequence{Steps: steps}
}

func (s *Sequence) Run(f *pfm.Image, c *Context) (fOut *pfm.Image, err error) {
	for _,step:=range s.Steps {
		if err=step.Init(); err!=nil { return nil, err }
	}
	for _,step:=range s.Steps {
		if f, err=step.Apply(f, c); err!=nil { return nil, err }
	}
	return f, nil
}


// Load a single PFM image via the context loader. Takes zero inputs
type OpLoad struct {
	FileName string  `json:"fileName"`
}

func NewOpLoad(fileName string) *OpLoad {
	return &OpLoad{FileName: fileName}
}

func (op *OpLoad) Init() error {
	if op.FileName=="" { return errors.New("missing input file name") }
	return nil
}

func (op *OpLoad) Apply(f *pfm.Image, c *Context) (result *pfm.Image, err error) {
	f, err=c.Loader.Load(op.FileName)
	if err!=nil { return nil, fmt.Errorf("could not load image %s: %s", op.FileName, err.Error()) }
	return f, nil
}


// Normalize the target image range to [0,1] with a trimmed range estimate
// pooled across the source set. Mutates the target in place
type OpNormalize struct {
	norm.Params
}

func NewOpNormalize(p *norm.Params) *OpNormalize {
	return &OpNormalize{Params: *p}
}

func (op *OpNormalize) Init() error {
	return op.Params.Verify()
}

func (op *OpNormalize) Apply(f *pfm.Image, c *Context) (result *pfm.Image, err error) {
	grids, err:=norm.LoadSources(c.Loader, f, op.Sources)
	if err!=nil { return nil, err }

	if poolMB:=norm.TotalPixels(grids)*4/(1024*1024); c.MemoryMB>0 && poolMB>c.MemoryMB/2 {
		fmt.Fprintf(c.Log, "Warning: sample pool needs %d MiB of %d MiB physical memory\n", poolMB, c.MemoryMB)
	}

	values:=norm.GatherValid(grids, op.Ignore)
	fmt.Fprintf(c.Log, "%d valid values\n", len(values))

	rng, err:=norm.EstimateRange(values, &op.Params)
	if err!=nil { return nil, err }
	fmt.Fprintf(c.Log, "Minimal value: %g\n", rng.RealMin)
	fmt.Fprintf(c.Log, "Maximal value: %g\n", rng.RealMax)
	fmt.Fprintf(c.Log, "Normalizing range %g - %g\n", rng.Min, rng.Max)

	outliers:=norm.Apply(f, rng, op.Ignore, op.Clamp)
	if op.Clamp {
		fmt.Fprintf(c.Log, "Clamped %d outliers\n", outliers)
	} else {
		fmt.Fprintf(c.Log, "Removed %d outliers\n", outliers)
	}
	return f, nil
}


// Print statistics of the image's valid values. Does not mutate the image
type OpStats struct {
	Ignore     float32  `json:"ignore"`
	NumSamples int      `json:"numSamples"`
	NumBins    int      `json:"numBins"`
}

func NewOpStats(ignore float32) *OpStats {
	return &OpStats{Ignore: ignore, NumSamples: 128*1024, NumBins: 4096}
}

func (op *OpStats) Init() error {
	if op.NumSamples<=0 || op.NumBins<2 { return errors.New("invalid stats sampling configuration") }
	return nil
}

func (op *OpStats) Apply(f *pfm.Image, c *Context) (result *pfm.Image, err error) {
	grids:=map[string]*pfm.Image{f.FileName: f}
	values:=norm.GatherValid(grids, op.Ignore)
	fmt.Fprintf(c.Log, "%s: %d of %d values valid\n", f.FileName, len(values), f.Pixels())
	if len(values)==0 { return f, nil }

	s:=stats.Calc(values)
	fmt.Fprintf(c.Log, "%s: %v\n", f.FileName, s)
	fmt.Fprintf(c.Log, "%s: Approx median %.6g\n", f.FileName, stats.FastApproxMedian(values, op.NumSamples))

	if s.Min<s.Max {
		mode, stdDev, err:=stats.HistogramModeStdDev(values, s.Min, s.Max, op.NumBins)
		if err!=nil { return nil, err }
		fmt.Fprintf(c.Log, "%s: Histogram peak %.6g scale %.6g\n", f.FileName, mode, stdDev)
	}
	return f, nil
}


// Saves the image under the given filename; a no-op when the name is empty.
// PFM output goes through the context saver, JPEG and TIFF previews are
// written directly
type OpSave struct {
	FileName string   `json:"fileName"`
	Ignore   float32  `json:"ignore"`
}

func NewOpSave(fileName string, ignore float32) *OpSave {
	return &OpSave{FileName: fileName, Ignore: ignore}
}

func (op *OpSave) Init() error { return nil }

func (op *OpSave) Apply(f *pfm.Image, c *Context) (result *pfm.Image, err error) {
	if op.FileName=="" { return f, nil }
	fnLower:=strings.ToLower(op.FileName)

	if strings.HasSuffix(fnLower, ".pfm") {
		fmt.Fprintf(c.Log, "Writing %s pixel PFM to %s\n", f.DimensionsToString(), op.FileName)
		err=c.Saver.Save(op.FileName, f)
	} else if strings.HasSuffix(fnLower, ".jpeg") || strings.HasSuffix(fnLower, ".jpg") {
		fmt.Fprintf(c.Log, "Writing %s pixel JPEG preview to %s\n", f.DimensionsToString(), op.FileName)
		err=f.WriteMonoJPGToFile(op.FileName, op.Ignore, 95)
	} else if strings.HasSuffix(fnLower, ".tif") || strings.HasSuffix(fnLower, ".tiff") {
		fmt.Fprintf(c.Log, "Writing %s pixel TIFF preview to %s\n", f.DimensionsToString(), op.FileName)
		err=f.WriteMonoTIFF16ToFile(op.FileName, op.Ignore)
	} else {
		err=errors.New("unknown output suffix")
	}
	if err!=nil { return nil, fmt.Errorf("could not save image %s: %s", op.FileName, err.Error()) }
	return f, nil
}
