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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"
	"github.com/mlnoga/pfmnorm/internal/norm"
	"github.com/mlnoga/pfmnorm/internal/ops"
	"github.com/mlnoga/pfmnorm/internal/rest"
)

const version = "0.1.0"

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

var log     = flag.String("log", "%auto", "save log output to `file`. `%auto` replaces suffix of output file with .log")
var jpg     = flag.String("jpg", "", "save 8bit preview of output as JPEG to `file`")
var tiff    = flag.String("tiff", "", "save 16bit preview of output as TIFF to `file`")

var epsilon = flag.Float64("epsilon", 0.0, "fraction of values to trim as outliers, split evenly between both range ends")
var ignore  = flag.Float64("ignore", -1.0, "no-data value, excluded from estimation and left untouched")
var clamp   = flag.Bool("clamp", false, "clamp outliers to [0,1] instead of replacing them with the no-data value")
var minimum = flag.Float64("minimum", float64(norm.MinAuto), "override the estimated range minimum")
var maximum = flag.Float64("maximum", float64(norm.MaxAuto), "override the estimated range maximum")
var images  = flag.String("images", "", "comma-separated additional images to pool range samples from")

var chroot  = flag.String("chroot", "", "change filesystem root to `directory` before serving (requires root)")
var setuid  = flag.Int("setuid", -1, "change to this user id before serving, -1=no change")

func main() {
	logWriter:=io.Writer(os.Stdout)
	start:=time.Now()
	flag.Usage=func(){
 	    fmt.Fprintf(logWriter, `pfmnorm Copyright (c) 2021 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (normalize|stats|serve|version|help) (in.pfm [out.pfm])

Commands:
  normalize Normalize input image values to [0,1] and save the result (default)
  stats     Show input image statistics
  serve     Serve the normalizer as a REST API on port 8080
  version   Show version information
  help      Show this help message

Flags:
`, os.Args[0])
	    flag.PrintDefaults()
	}
	flag.Parse()

	args:=flag.Args()
	if len(args)<1 {
		flag.Usage()
		return
	}
	cmd:=args[0]
	switch cmd {
	case "normalize", "stats", "serve", "version":
		args=args[1:]
	case "help", "?":
		flag.Usage()
		return
	default:
		cmd="normalize" // bare `pfmnorm in.pfm out.pfm` normalizes
	}

	// Initialize logging to file in addition to stdout, if selected
	if *log=="%auto" {
		if cmd=="normalize" && len(args)>=2 {
			*log=strings.TrimSuffix(args[1], filepath.Ext(args[1]))+".log"
		} else {
			*log=""
		}
	}
	var logFlusher *bufio.Writer
	if *log!="" {
		f, err:=os.Create(*log)
		if err!=nil {
			fmt.Fprintf(logWriter, "Unable to open logfile '%s'\n", *log)
			os.Exit(1)
		}
		defer f.Close()
		logFlusher=bufio.NewWriter(f)
		defer logFlusher.Flush()
		logWriter=io.MultiWriter(os.Stdout, logFlusher)
	}

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(logWriter, "Could not create CPU profile: %s\n", err.Error())
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(logWriter, "Could not start CPU profile: %s\n", err.Error())
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	var err error
	switch cmd {
	case "serve":
		if err=rest.MakeSandbox(logWriter, *chroot, *setuid); err!=nil {
			fmt.Fprintf(logWriter, "Error securing process: %s\n", err.Error())
			os.Exit(1)
		}
		rest.Serve()

	case "stats":
		if len(args)<1 {
			fmt.Fprintf(logWriter, "Need at least one input file for stats\n\n")
			flag.Usage()
			os.Exit(1)
		}
		steps:=[]ops.Operator{}
		for _,fileName:=range args {
			steps=append(steps, ops.NewOpLoad(fileName), ops.NewOpStats(float32(*ignore)))
		}
		err=runSequence(ops.NewSequence(steps...), logWriter)

	case "normalize":
		if len(args)<1 || len(args)>2 {
			fmt.Fprintf(logWriter, "Need an input file and an optional output file to normalize\n\n")
			flag.Usage()
			os.Exit(1)
		}
		in:=args[0]
		out:="out.pfm"
		if len(args)>1 { out=args[1] }

		p:=norm.NewParams()
		p.Epsilon=float32(*epsilon)
		p.Ignore =float32(*ignore)
		p.Clamp  =*clamp
		p.Min    =float32(*minimum)
		p.Max    =float32(*maximum)
		if *images!="" { p.Sources=strings.Split(*images, ",") }

		seq:=ops.NewSequence(
			ops.NewOpLoad(in),
			ops.NewOpNormalize(p),
			ops.NewOpSave(out,   p.Ignore),
			ops.NewOpSave(*jpg,  p.Ignore),
			ops.NewOpSave(*tiff, p.Ignore),
		)
		err=runSequence(seq, logWriter)

	case "version":
		fmt.Fprintf(logWriter, "Version %s\n", version)
	}

	elapsed:=time.Now().Sub(start)
	fmt.Fprintf(logWriter, "\nDone after %v\n", elapsed)

	// Store memory profile if flagged
	if *memprofile != "" {
		f, ferr := os.Create(*memprofile)
		if ferr != nil {
			fmt.Fprintf(logWriter, "Could not create memory profile: %s\n", ferr.Error())
			os.Exit(1)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if ferr := pprof.Lookup("allocs").WriteTo(f,0); ferr != nil {
			fmt.Fprintf(logWriter, "Could not write allocation profile: %s\n", ferr.Error())
			os.Exit(1)
		}
	}

	if logFlusher!=nil { logFlusher.Flush() }
	if err!=nil {
		fmt.Fprintf(logWriter, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func runSequence(seq *ops.Sequence, logWriter io.Writer) error {
	store:=ops.NewFileStore(logWriter)
	c:=ops.NewContext(logWriter, store, store)
	_, err:=seq.Run(nil, c)
	return err
}
