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
	"bufio"
	"fmt"
	"io"
	"strconv"

	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dxfkit/dxf/tag"
)

// MaxBinaryRecord is the count of raw bytes a single binary record may hold,
// 254 hex digits.
const MaxBinaryRecord = 127

var ErrUndefinedTag = goerrors.NewKind("cannot write undefined tag with group code %d")

// Writer writes tags as ASCII DXF.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) record(code int, value string) error {
	_, err := fmt.Fprintf(w.bw, "%3d\n%s\n", code, value)
	return err
}

func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Write writes a single tag. Binary tags are split into records of at most
// MaxBinaryRecord bytes and vectors into their axis tags, the z-axis is left
// out for tags which want a 2D export.
func (w *Writer) Write(t tag.Tag) error {
	code := t.GroupCode()
	switch t.Kind() {
	case tag.StringKind:
		s, _ := t.AsString()
		return w.record(code, s)
	case tag.IntegerKind:
		i, _ := t.AsInteger()
		return w.record(code, strconv.FormatInt(i, 10))
	case tag.RealKind:
		f, _ := t.AsReal()
		return w.record(code, formatReal(f))
	case tag.Vec3Kind, tag.Vec2Kind:
		v, _ := t.AsVec3()
		xc, yc, zc := tag.VectorComponentCodes(code)
		if err := w.record(xc, formatReal(v.X)); err != nil {
			return err
		}
		if err := w.record(yc, formatReal(v.Y)); err != nil {
			return err
		}
		if t.Wants2DExport() {
			return nil
		}
		return w.record(zc, formatReal(v.Z))
	case tag.BinaryDataKind:
		data, _ := t.AsBytes()
		if len(data) == 0 {
			return w.record(code, "")
		}
		for len(data) > 0 {
			n := len(data)
			if n > MaxBinaryRecord {
				n = MaxBinaryRecord
			}
			if err := w.record(code, Hexlify(data[:n])); err != nil {
				return err
			}
			data = data[n:]
		}
		return nil
	default:
		return ErrUndefinedTag.New(code)
	}
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// WriteTags writes all tags and flushes the writer.
func WriteTags(wr io.Writer, tags []tag.Tag) error {
	w := NewWriter(wr)
	for _, t := range tags {
		if err := w.Write(t); err != nil {
			return err
		}
	}
	return w.Flush()
}
