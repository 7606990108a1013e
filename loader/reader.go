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
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dxfkit/dxf/tag"
)

var (
	ErrInvalidGroupCode = goerrors.NewKind("line %d: invalid group code %q")
	ErrInvalidValue     = goerrors.NewKind("line %d: invalid %s value %q for group code %d")
	ErrInvalidHex       = goerrors.NewKind("line %d: invalid hex data for group code %d")
	ErrMissingAxis      = goerrors.NewKind("line %d: vertex with group code %d has no y-axis")
	ErrUnexpectedEOF    = goerrors.NewKind("line %d: missing value for group code %d")
)

type rawTag struct {
	code  int
	value string
	line  int
}

// Reader reads tags from an ASCII DXF stream. Each tag is a group code line
// followed by a value line. The group code selects how the value is parsed,
// see tag.Classify.
type Reader struct {
	br           *bufio.Reader
	line         int
	pending      *rawTag
	keepComments bool
}

type Option func(*Reader)

// KeepComments makes the reader return comment tags (group code 999), which
// are skipped by default.
func KeepComments(keep bool) Option {
	return func(r *Reader) {
		r.keepComments = keep
	}
}

func NewReader(rd io.Reader, opts ...Option) *Reader {
	r := &Reader{br: bufio.NewReader(rd)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lines returns the count of lines read so far.
func (r *Reader) Lines() int {
	return r.line
}

func (r *Reader) readLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err == io.EOF && len(s) > 0 {
		err = nil
	}
	if err != nil {
		return "", err
	}
	r.line++
	return TrimLineEnding(s), nil
}

func (r *Reader) readRaw() (rawTag, error) {
	if r.pending != nil {
		raw := *r.pending
		r.pending = nil
		return raw, nil
	}

	codeLine, err := r.readLine()
	if err == io.EOF {
		return rawTag{}, io.EOF
	} else if err != nil {
		return rawTag{}, errors.Wrapf(err, "line %d", r.line+1)
	}

	line := r.line
	code := SafeGroupCode(codeLine)
	if code == tag.ErrorCode {
		return rawTag{}, ErrInvalidGroupCode.New(line, codeLine)
	}

	value, err := r.readLine()
	if err == io.EOF {
		return rawTag{}, ErrUnexpectedEOF.New(line, code)
	} else if err != nil {
		return rawTag{}, errors.Wrapf(err, "line %d", r.line+1)
	}

	if code == tag.StructureCode {
		value = strings.TrimSpace(value)
	}

	return rawTag{code: code, value: value, line: line}, nil
}

func (r *Reader) unread(raw rawTag) {
	r.pending = &raw
}

// Next returns the next tag or io.EOF at the end of the stream.
func (r *Reader) Next() (tag.Tag, error) {
	for {
		raw, err := r.readRaw()
		if err != nil {
			return tag.Tag{}, err
		}
		if raw.code == tag.CommentCode && !r.keepComments {
			continue
		}
		return r.build(raw)
	}
}

func (r *Reader) build(raw rawTag) (tag.Tag, error) {
	switch tag.Classify(raw.code) {
	case tag.VertexCategory:
		return r.vertex(raw)
	case tag.DecimalCategory:
		f, ok := SafeStrToReal(raw.value)
		if !ok {
			return tag.Tag{}, ErrInvalidValue.New(raw.line, "decimal", raw.value, raw.code)
		}
		return tag.Real(raw.code, f), nil
	case tag.IntegerCategory:
		i, ok := SafeStrToInt64(raw.value)
		if !ok {
			return tag.Tag{}, ErrInvalidValue.New(raw.line, "integer", raw.value, raw.code)
		}
		return tag.Integer(raw.code, i), nil
	default:
		if tag.IsBinaryCode(raw.code) {
			return r.binary(raw)
		}
		return tag.String(raw.code, raw.value), nil
	}
}

func parseAxis(raw rawTag) (float64, error) {
	f, ok := SafeStrToReal(raw.value)
	if !ok {
		return 0, ErrInvalidValue.New(raw.line, "decimal", raw.value, raw.code)
	}
	return f, nil
}

// vertex assembles a vector from its x-, y- and optional z-axis tags. A vertex
// without z-axis becomes a Vec2 tag.
func (r *Reader) vertex(xRaw rawTag) (tag.Tag, error) {
	_, yCode, zCode := tag.VectorComponentCodes(xRaw.code)

	x, err := parseAxis(xRaw)
	if err != nil {
		return tag.Tag{}, err
	}

	yRaw, err := r.readRaw()
	if err == io.EOF {
		return tag.Tag{}, ErrMissingAxis.New(xRaw.line, xRaw.code)
	} else if err != nil {
		return tag.Tag{}, err
	}
	if yRaw.code != yCode {
		return tag.Tag{}, ErrMissingAxis.New(xRaw.line, xRaw.code)
	}
	y, err := parseAxis(yRaw)
	if err != nil {
		return tag.Tag{}, err
	}

	zRaw, err := r.readRaw()
	if err == io.EOF {
		return tag.Vector2(xRaw.code, x, y), nil
	} else if err != nil {
		return tag.Tag{}, err
	}
	if zRaw.code != zCode {
		r.unread(zRaw)
		return tag.Vector2(xRaw.code, x, y), nil
	}
	z, err := parseAxis(zRaw)
	if err != nil {
		return tag.Tag{}, err
	}
	return tag.Vector(xRaw.code, x, y, z), nil
}

// binary merges consecutive records with the same binary group code into a
// single tag. DXF limits a record to 127 bytes, so longer data is split over
// several records.
func (r *Reader) binary(first rawTag) (tag.Tag, error) {
	var chunks [][]byte
	raw := first
	for {
		data, ok := Unhexlify(raw.value)
		if !ok {
			return tag.Tag{}, ErrInvalidHex.New(raw.line, raw.code)
		}
		chunks = append(chunks, data)

		next, err := r.readRaw()
		if err == io.EOF {
			break
		} else if err != nil {
			return tag.Tag{}, err
		}
		if next.code != first.code {
			r.unread(next)
			break
		}
		raw = next
	}

	if len(chunks) > 1 {
		logrus.Tracef("merged %d binary records with group code %d at line %d", len(chunks), first.code, first.line)
	}
	return tag.Binary(first.code, ConcatenateBytes(chunks)), nil
}

// Load reads all tags of a stream.
func Load(rd io.Reader, opts ...Option) ([]tag.Tag, error) {
	r := NewReader(rd, opts...)
	var tags []tag.Tag
	for {
		t, err := r.Next()
		if err == io.EOF {
			return tags, nil
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
}
