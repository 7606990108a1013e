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

package loader

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxfkit/dxf/tag"
)

func dxf(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestLoadEntities(t *testing.T) {
	src := dxf(
		"  0", "SECTION",
		"  2", "ENTITIES",
		"999", "a comment",
		"  0", "  LINE  ",
		"  5", "31",
		"  8", " layer 0 ",
		" 10", "1.0",
		" 20", "2.0",
		" 30", "3.0",
		" 11", "4.0",
		" 21", "5.0",
		" 40", "0.5",
		" 70", "  3",
		"310", "0102",
		"310", "0304",
		"  0", "ENDSEC",
	)

	tags, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	expected := []tag.Tag{
		tag.String(0, "SECTION"),
		tag.String(2, "ENTITIES"),
		tag.String(0, "LINE"),
		tag.String(5, "31"),
		tag.String(8, " layer 0 "),
		tag.Vector(10, 1, 2, 3),
		tag.Vector2(11, 4, 5),
		tag.Real(40, 0.5),
		tag.Integer(70, 3),
		tag.Binary(310, []byte{1, 2, 3, 4}),
		tag.String(0, "ENDSEC"),
	}
	assert.Equal(t, expected, tags)
	assert.True(t, tags[0].EqualsStructural(0, "SECTION"))
}

func TestLoadKeepComments(t *testing.T) {
	tags, err := Load(strings.NewReader(dxf("999", "hello", "0", "EOF")), KeepComments(true))
	require.NoError(t, err)
	assert.Equal(t, []tag.Tag{tag.String(999, "hello"), tag.String(0, "EOF")}, tags)
}

func TestLoadCRLF(t *testing.T) {
	src := "  0\r\nSECTION\r\n 10\r\n1\r\n 20\r\n2\r\n"
	tags, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []tag.Tag{tag.String(0, "SECTION"), tag.Vector2(10, 1, 2)}, tags)
}

func TestLoadWithoutFinalNewline(t *testing.T) {
	tags, err := Load(strings.NewReader("0\nEOF"))
	require.NoError(t, err)
	assert.Equal(t, []tag.Tag{tag.String(0, "EOF")}, tags)
}

func TestLoadEmpty(t *testing.T) {
	tags, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestBinaryMergeStopsAtOtherCode(t *testing.T) {
	src := dxf("310", "AA", "310", "BB", "311", "CC", "310", "", "0", "EOF")
	tags, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []tag.Tag{
		tag.Binary(310, []byte{0xaa, 0xbb}),
		tag.Binary(311, []byte{0xcc}),
		tag.Binary(310, nil),
		tag.String(0, "EOF"),
	}, tags)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   func(error) bool
	}{
		{"group code", dxf("XX", "LINE"), ErrInvalidGroupCode.Is},
		{"group code range", dxf("5000", "LINE"), ErrInvalidGroupCode.Is},
		{"decimal", dxf("40", "abc"), ErrInvalidValue.Is},
		{"integer", dxf("70", "1.5"), ErrInvalidValue.Is},
		{"missing y", dxf("10", "1", "0", "LINE"), ErrMissingAxis.Is},
		{"missing y at end", dxf("10", "1"), ErrMissingAxis.Is},
		{"bad y", dxf("10", "1", "20", "y"), ErrInvalidValue.Is},
		{"bad z", dxf("10", "1", "20", "2", "30", "z"), ErrInvalidValue.Is},
		{"hex", dxf("310", "0G"), ErrInvalidHex.Is},
		{"odd hex", dxf("1004", "ABC"), ErrInvalidHex.Is},
		{"missing value", "  0\n", ErrUnexpectedEOF.Is},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.src))
			require.Error(t, err)
			assert.True(t, test.is(err), "unexpected error %v", err)
		})
	}
}

func TestReaderLineNumbers(t *testing.T) {
	_, err := Load(strings.NewReader(dxf("0", "LINE", "40", "bad")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReaderNext(t *testing.T) {
	r := NewReader(strings.NewReader(dxf("0", "EOF")))
	tg, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, tag.String(0, "EOF"), tg)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 2, r.Lines())
}

func TestWriteLoadRoundTrip(t *testing.T) {
	big := make([]byte, 300)
	for i := range big {
		big[i] = byte(i * 7)
	}

	tags := []tag.Tag{
		tag.String(0, "SECTION"),
		tag.String(1, "  padded text "),
		tag.Integer(70, -12),
		tag.Integer(90, 1<<40),
		tag.Real(40, 0.1),
		tag.Real(41, 1e-9),
		tag.Vector(10, 1.5, -2.5, 0),
		tag.Vector2(11, 3, 4),
		tag.Vector(1010, 1, 2, 3),
		tag.Binary(310, big),
		tag.Binary(1004, nil),
		tag.String(0, "ENDSEC"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, tags))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, tags, loaded)
}

func TestWriterSplitsBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, []tag.Tag{tag.Binary(310, make([]byte, 2*MaxBinaryRecord+1))}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Len(t, lines[1], 2*MaxBinaryRecord)
	assert.Len(t, lines[5], 2)
}

func TestWriterOmitsZFor2D(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, []tag.Tag{tag.Vector2(10, 1, 2)}))
	assert.Equal(t, " 10\n1\n 20\n2\n", buf.String())
}

func TestWriterRejectsUndefined(t *testing.T) {
	err := WriteTags(io.Discard, []tag.Tag{tag.Undefined(1)})
	require.Error(t, err)
	assert.True(t, ErrUndefinedTag.Is(err))
}
