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
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxfkit/dxf/config"
	"github.com/dxfkit/dxf/loader"
	"github.com/dxfkit/dxf/objtable"
	"github.com/dxfkit/dxf/tag"
)

func init() {
	color.NoColor = true
}

func writeDXF(t *testing.T, dir, name string, tags []tag.Tag) string {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, loader.WriteTags(f, tags))
	require.NoError(t, f.Close())
	return path
}

func drawing(handles ...string) []tag.Tag {
	tags := []tag.Tag{tag.String(0, "SECTION"), tag.String(2, "ENTITIES")}
	for _, h := range handles {
		tags = append(tags, tag.String(0, "POINT"))
		if h != "" {
			tags = append(tags, tag.String(5, h))
		}
		tags = append(tags, tag.String(999, "point"), tag.Vector(10, 1, 2, 3))
	}
	return append(tags, tag.String(0, "ENDSEC"), tag.String(0, "EOF"))
}

func TestRunClassify(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 0, runClassify(&buf, []string{"10", "19", "70", "0"}))
	assert.Equal(t, "    10  VERTEX\n    19  DECIMAL\n    70  INTEGER\n     0  TEXT\n", buf.String())

	buf.Reset()
	assert.Equal(t, 1, runClassify(&buf, []string{"x", "40"}))
	assert.Contains(t, buf.String(), "x: not a group code")
	assert.Contains(t, buf.String(), "40  DECIMAL")

	buf.Reset()
	assert.Equal(t, 0, runClassify(&buf, nil))
	assert.Equal(t, len(tag.Bands())+1, strings.Count(buf.String(), "\n"))
}

func TestRunTags(t *testing.T) {
	path := writeDXF(t, t.TempDir(), "a.dxf", drawing("1", "2"))

	var buf bytes.Buffer
	assert.Equal(t, 0, runTags(&buf, path, 0, settings{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, `(0, "SECTION")`, lines[0])
	assert.Equal(t, "(10, (1, 2, 3))", lines[4])

	buf.Reset()
	assert.Equal(t, 0, runTags(&buf, path, 0, settings{keepComments: true}))
	assert.Contains(t, buf.String(), `(999, "point")`)

	buf.Reset()
	assert.Equal(t, 0, runTags(&buf, path, 3, settings{}))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	buf.Reset()
	assert.Equal(t, 1, runTags(&buf, filepath.Join(t.TempDir(), "missing.dxf"), 0, settings{}))
}

func TestRunStat(t *testing.T) {
	dir := t.TempDir()
	a := writeDXF(t, dir, "a.dxf", drawing("1", "2", "1000"))
	b := writeDXF(t, dir, "b.dxf", drawing("7"))

	s := settings{bucketCount: 16}
	var buf bytes.Buffer
	assert.Equal(t, 0, runStat(context.Background(), &buf, []string{a, b}, s))

	out := buf.String()
	assert.Contains(t, out, a)
	assert.Contains(t, out, b)
	assert.Contains(t, out, "objects:     3")
	assert.Contains(t, out, "max handle:  1000")
	assert.Contains(t, out, "of 16 used")
	assert.True(t, strings.Index(out, a) < strings.Index(out, b))
}

func TestRunStatDuplicateHandle(t *testing.T) {
	path := writeDXF(t, t.TempDir(), "dup.dxf", drawing("5", "5"))

	var buf bytes.Buffer
	assert.Equal(t, 1, runStat(context.Background(), &buf, []string{path}, settings{bucketCount: 16}))
	assert.Contains(t, buf.String(), "corrupt document")

	buf.Reset()
	assert.Equal(t, 0, runStat(context.Background(), &buf, []string{path}, settings{bucketCount: 16, recover: true}))
	assert.Contains(t, buf.String(), "objects:     2")
	assert.Contains(t, buf.String(), "new handle 6")
}

func TestRunStatHandleSpaceExhausted(t *testing.T) {
	path := writeDXF(t, t.TempDir(), "full.dxf", drawing("18446744073709551615", ""))

	var buf bytes.Buffer
	assert.Equal(t, 1, runStat(context.Background(), &buf, []string{path}, settings{bucketCount: 16}))
	assert.Contains(t, buf.String(), "corrupt document")

	buf.Reset()
	assert.Equal(t, 0, runStat(context.Background(), &buf, []string{path}, settings{bucketCount: 16, recover: true}))
	assert.Contains(t, buf.String(), "objects:     1")
	assert.Contains(t, buf.String(), "not stored")
}

func TestLoadSettings(t *testing.T) {
	s, err := loadSettings("", nil)
	require.NoError(t, err)
	assert.Equal(t, objtable.DefaultBucketCount, s.bucketCount)
	assert.False(t, s.keepComments)
	assert.False(t, s.recover)

	path := filepath.Join(t.TempDir(), "dxf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table:\n  bucket_count: 64\ndocument:\n  recover: true\n"), 0644))

	s, err = loadSettings(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, s.bucketCount)
	assert.True(t, s.recover)

	o := newOverrides()
	setUint(o, config.BucketCountKey, 128)
	setUint(o, "unset", 0)
	setBool(o, config.KeepCommentsKey, true)
	setBool(o, "off", false)
	assert.Equal(t, 2, o.Size())

	s, err = loadSettings(path, o)
	require.NoError(t, err)
	assert.Equal(t, 128, s.bucketCount)
	assert.True(t, s.keepComments)
	assert.True(t, s.recover)

	_, err = loadSettings(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadSettingsBucketCountLimit(t *testing.T) {
	tests := []struct {
		count uint64
		ok    bool
	}{
		{objtable.MaxBucketCount, true},
		{objtable.MaxBucketCount + 1, false},
		{1<<62 + 1, false},
		{math.MaxUint64, false},
	}

	for _, test := range tests {
		t.Run(strconv.FormatUint(test.count, 10), func(t *testing.T) {
			o := newOverrides()
			setUint(o, config.BucketCountKey, test.count)
			s, err := loadSettings("", o)
			if test.ok {
				require.NoError(t, err)
				assert.Equal(t, int(test.count), s.bucketCount)
			} else {
				assert.True(t, ErrBucketCountTooBig.Is(err))
			}
		})
	}

	path := filepath.Join(t.TempDir(), "dxf.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\nbucket_count = 4611686018427387905\n"), 0644))
	_, err := loadSettings(path, nil)
	assert.True(t, ErrBucketCountTooBig.Is(err))
}
