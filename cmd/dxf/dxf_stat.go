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
	"time"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/dxfkit/dxf/cmd/util"
	"github.com/dxfkit/dxf/config"
	"github.com/dxfkit/dxf/document"
	"github.com/dxfkit/dxf/loader"
	"github.com/dxfkit/dxf/util/verbose"
)

func dxfStat(ctx context.Context, dxf *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := dxf.Command("stat", "load DXF files and show object table statistics")
	files := cmd.Arg("files", "DXF files, .sz files are snappy compressed").Required().Strings()
	bucketCount := cmd.Flag("bucket-count", "object table bucket count, rounded up to a power of two").Uint64()
	recoverVal := cmd.Flag("recover", "assign new handles to records with invalid or duplicate handles").Bool()

	return cmd, func(input string) int {
		o := newOverrides()
		setUint(o, config.BucketCountKey, *bucketCount)
		setBool(o, config.RecoverKey, *recoverVal)
		s, err := loadSettings(configPath, o)
		util.CheckErrorNoUsage(err)
		return runStat(ctx, os.Stdout, *files, s)
	}
}

type fileStat struct {
	path string
	size int64
	doc  *document.Document
}

func statFile(ctx context.Context, path string, s settings) (fileStat, error) {
	start := time.Now()
	info, err := os.Stat(path)
	if err != nil {
		return fileStat{}, err
	}

	tags, err := loader.LoadFile(path, s.loaderOptions()...)
	if err != nil {
		return fileStat{}, err
	}

	doc, err := document.Build(tags, s.documentOptions()...)
	if err != nil {
		return fileStat{}, err
	}

	verbose.Log(ctx, "%s loaded in %s", path, time.Since(start))
	return fileStat{path: path, size: info.Size(), doc: doc}, nil
}

// runStat loads every file on its own goroutine. Each document owns its object
// table, no table is shared between goroutines.
func runStat(ctx context.Context, w io.Writer, paths []string, s settings) int {
	stats := make([]fileStat, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := statFile(ctx, path, s)
			if err != nil {
				return err
			}
			stats[i] = st
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Fprintln(w, color.RedString("error: %s", err))
		return 1
	}

	for _, st := range stats {
		printStat(w, st)
	}
	return 0
}

func printStat(w io.Writer, st fileStat) {
	doc := st.doc
	ts := doc.Stats()
	fmt.Fprintf(w, "%s (%s)\n", color.New(color.Bold).Sprint(st.path), humanize.Bytes(uint64(st.size)))
	fmt.Fprintf(w, "  tags:        %s\n", humanize.Comma(int64(doc.TagCount)))
	fmt.Fprintf(w, "  records:     %s\n", humanize.Comma(int64(len(doc.Records))))
	fmt.Fprintf(w, "  objects:     %s\n", humanize.Comma(int64(ts.Objects)))
	fmt.Fprintf(w, "  max handle:  %s\n", ts.MaxHandle)
	fmt.Fprintf(w, "  buckets:     %s of %s used, longest chain %d, mean chain %.2f\n",
		humanize.Comma(int64(ts.UsedBuckets)), humanize.Comma(int64(ts.Buckets)), ts.MaxChain, ts.MeanChain())
	for _, diag := range doc.Diagnostics {
		if diag.Record.Assigned() {
			fmt.Fprintf(w, "  %s\n", color.YellowString("%s, new handle %s", diag.Err, diag.Record.Handle()))
		} else {
			fmt.Fprintf(w, "  %s\n", color.YellowString("%s, not stored", diag.Err))
		}
	}
}
