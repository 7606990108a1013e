// Copyright 2026 Dxfkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"

	"github.com/dxfkit/dxf/cmd/util"
	"github.com/dxfkit/dxf/config"
	"github.com/dxfkit/dxf/loader"
	"github.com/dxfkit/dxf/util/writers"
)

func dxfTags(ctx context.Context, dxf *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := dxf.Command("tags", "print the tags of a DXF file")
	file := cmd.Arg("file", "DXF file, .sz files are snappy compressed").Required().String()
	maxLines := cmd.Flag("max-lines", "stop after this many lines, 0 prints all").Default("0").Uint32()
	keepComments := cmd.Flag("keep-comments", "print comment tags").Bool()

	return cmd, func(input string) int {
		o := newOverrides()
		setBool(o, config.KeepCommentsKey, *keepComments)
		s, err := loadSettings(configPath, o)
		util.CheckErrorNoUsage(err)
		return runTags(os.Stdout, *file, *maxLines, s)
	}
}

func runTags(w io.Writer, path string, maxLines uint32, s settings) int {
	rc, err := loader.Open(path)
	if err != nil {
		fmt.Fprintln(w, color.RedString("error: %s", err))
		return 1
	}
	defer rc.Close()

	out := &writers.MaxLineWriter{Dest: w, MaxLines: maxLines}
	r := loader.NewReader(rc, s.loaderOptions()...)
	for {
		t, err := r.Next()
		if err == io.EOF {
			return 0
		} else if err != nil {
			fmt.Fprintln(w, color.RedString("error: %s", err))
			return 1
		}

		if _, err := fmt.Fprintln(out, t); err == writers.MaxLinesErr {
			return 0
		} else if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
			return 1
		}
	}
}
