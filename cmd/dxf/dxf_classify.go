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
	"strconv"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"

	"github.com/dxfkit/dxf/cmd/util"
	"github.com/dxfkit/dxf/tag"
)

func dxfClassify(ctx context.Context, dxf *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := dxf.Command("classify", "show the value category of group codes, or all category bands if no code is given")
	codes := cmd.Arg("codes", "group codes").Strings()

	return cmd, func(input string) int {
		return runClassify(os.Stdout, *codes)
	}
}

var categoryColors = map[tag.Category]*color.Color{
	tag.VertexCategory:  color.New(color.FgCyan),
	tag.DecimalCategory: color.New(color.FgYellow),
	tag.IntegerCategory: color.New(color.FgGreen),
	tag.TextCategory:    color.New(color.Reset),
}

func runClassify(w io.Writer, args []string) int {
	if len(args) == 0 {
		for _, b := range tag.Bands() {
			fmt.Fprintf(w, "%4d-%-4d  %s\n", b.First, b.Last, categoryColors[b.Category].Sprint(b.Category))
		}
		fmt.Fprintf(w, "%9s  %s\n", "*", tag.TextCategory)
		return 0
	}

	exitCode := 0
	for _, arg := range args {
		code, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(w, color.RedString("%s: not a group code", arg))
			exitCode = 1
			continue
		}
		cat := tag.Classify(code)
		fmt.Fprintf(w, "%6d  %s\n", code, categoryColors[cat].Sprint(cat))
	}
	return exitCode
}
