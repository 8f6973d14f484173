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


package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"github.com/gin-gonic/gin"

	"github.com/mlnoga/pfmnorm/internal/norm"
	"github.com/mlnoga/pfmnorm/internal/ops"
)


func Serve() {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET ("/ping",      getPing)
			v1.POST("/stats",     postStats)
			v1.POST("/normalize", postNormalize)
		}
	}
	r.Run() // listen and serve on 0.0.0.0:8080
}

func getPing(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

func printArgs(logWriter io.Writer, prefix, suffix string, args interface{}) error {
	m,err:=json.MarshalIndent(args, "", "  ")
	if err!=nil { return err }
	fmt.Fprintf(logWriter, "%s%s%s", prefix, string(m), suffix)
	return nil
}

// run turns the HTTP response into a streaming text/plain run log and
// executes the given operator sequence against the on-disk grid store
func run(c *gin.Context, args interface{}, seq *ops.Sequence) {
	logWriter := c.Writer
	header := logWriter.Header()
	header.Set("Content-Type", "text/plain")
	logWriter.WriteHeader(http.StatusOK)

	if err:=printArgs(logWriter, "Arguments:\n", "\n", args); err!=nil {
		fmt.Fprintf(logWriter, "Error printing arguments: %s\n", err.Error())
		return
	}

	store:=ops.NewFileStore(logWriter)
	ctx:=ops.NewContext(logWriter, store, store)
	if _, err:=seq.Run(nil, ctx); err!=nil {
		fmt.Fprintf(logWriter, "error: %s\n", err.Error())
	}
	logWriter.(http.Flusher).Flush()
}


type postStatsArgs struct {
	FileNames []string  `json:"fileNames"`
	Ignore    float32   `json:"ignore"`
}

func postStats(c *gin.Context)  {
	var args postStatsArgs
	args.Ignore=-1.0
	if err:=c.ShouldBind(&args); err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}

	steps:=[]ops.Operator{}
	for _,fileName:=range args.FileNames {
		steps=append(steps, ops.NewOpLoad(fileName), ops.NewOpStats(args.Ignore))
	}
	run(c, &args, ops.NewSequence(steps...))
}


type postNormalizeArgs struct {
	Target string       `json:"target"`
	Out    string       `json:"out"`
	Jpg    string       `json:"jpg"`
	Tiff   string       `json:"tiff"`
	Params *norm.Params `json:"params"`
}

func postNormalize(c *gin.Context) {
	args:=postNormalizeArgs{Params: norm.NewParams()}
	if err:=c.ShouldBind(&args); err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}

	seq:=ops.NewSequence(
		ops.NewOpLoad(args.Target),
		ops.NewOpNormalize(args.Params),
		ops.NewOpSave(args.Out,  args.Params.Ignore),
		ops.NewOpSave(args.Jpg,  args.Params.Ignore),
		ops.NewOpSave(args.Tiff, args.Params.Ignore),
	)
	run(c, &args, seq)
}
