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

// Package tag models DXF tags: a group code paired with a typed value.
package tag

import (
	"fmt"
	"strconv"

	"gopkg.in/src-d/go-errors.v1"
)

// Reserved group codes. Group codes are not an enum, every int is a possible
// group code.
const (
	ErrorCode     = -1
	StructureCode = 0
	CommentCode   = 999
)

// ErrTypeMismatch is returned by the As* accessors when the requested
// representation does not match the stored kind.
var ErrTypeMismatch = errors.NewKind("tag (%d, %s) has no %s value")

// Vec3 is a 3-component vector. 2D vertices are stored with Z = 0.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Tag is the atomic (group code, value) unit of a DXF document. A Tag is
// immutable, the kind and value are fixed by the constructor.
//
// The zero Tag is an undefined tag with group code 0.
type Tag struct {
	code int
	kind Kind
	str  string
	bin  []byte
	i    int64
	r    float64
	vec  Vec3
}

// Undefined creates a tag which has a group code but no value yet. It is a
// placeholder for "not yet classified" and every accessor fails on it.
func Undefined(code int) Tag {
	return Tag{code: code, kind: UndefinedKind}
}

// Error creates the error tag, an undefined tag with group code ErrorCode.
func Error() Tag {
	return Undefined(ErrorCode)
}

// String creates a text tag. Text is stored as is, white space is not stripped.
func String(code int, s string) Tag {
	return Tag{code: code, kind: StringKind, str: s}
}

// Binary creates a binary data tag. The data may be empty and may be longer
// than a single DXF record, see the loader for merging of consecutive records.
func Binary(code int, b []byte) Tag {
	data := make([]byte, len(b))
	copy(data, b)
	return Tag{code: code, kind: BinaryDataKind, bin: data}
}

// Integer creates a tag holding a signed 64-bit integer.
func Integer(code int, i int64) Tag {
	return Tag{code: code, kind: IntegerKind, i: i}
}

// Real creates a tag holding a float64.
func Real(code int, r float64) Tag {
	return Tag{code: code, kind: RealKind, r: r}
}

// Vector creates a Vec3Kind tag.
//
// The group codes of the component tags follow the rule x = code,
// y = code + 10, z = code + 20. See VectorComponentCodes.
func Vector(code int, x, y, z float64) Tag {
	return Tag{code: code, kind: Vec3Kind, vec: Vec3{x, y, z}}
}

// Vector2 creates a Vec2Kind tag for a vertex that has no z-axis.
func Vector2(code int, x, y float64) Tag {
	return Tag{code: code, kind: Vec2Kind, vec: Vec3{x, y, 0}}
}

func (t Tag) GroupCode() int {
	return t.code
}

func (t Tag) Kind() Kind {
	return t.kind
}

func (t Tag) mismatch(want Kind) error {
	return ErrTypeMismatch.New(t.code, t.kind, want)
}

// AsString returns the text of a StringKind tag.
func (t Tag) AsString() (string, error) {
	if t.kind != StringKind {
		return "", t.mismatch(StringKind)
	}
	return t.str, nil
}

// AsBytes returns a copy of the data of a BinaryDataKind tag.
func (t Tag) AsBytes() ([]byte, error) {
	if t.kind != BinaryDataKind {
		return nil, t.mismatch(BinaryDataKind)
	}
	return append([]byte{}, t.bin...), nil
}

func (t Tag) AsInteger() (int64, error) {
	if t.kind != IntegerKind {
		return 0, t.mismatch(IntegerKind)
	}
	return t.i, nil
}

func (t Tag) AsReal() (float64, error) {
	if t.kind != RealKind {
		return 0, t.mismatch(RealKind)
	}
	return t.r, nil
}

// AsVec3 returns the vector of a Vec3Kind or Vec2Kind tag.
func (t Tag) AsVec3() (Vec3, error) {
	if !IsVectorKind(t.kind) {
		return Vec3{}, t.mismatch(Vec3Kind)
	}
	return t.vec, nil
}

// IsError returns true if the tag is an error tag. A tag of any kind can be an
// error tag.
func (t Tag) IsError() bool {
	return t.code == ErrorCode
}

func (t Tag) IsUndefined() bool {
	return t.kind == UndefinedKind
}

func (t Tag) HasStringValue() bool {
	return t.kind == StringKind
}

// HasBinaryData returns true for binary tags, including empty ones.
func (t Tag) HasBinaryData() bool {
	return t.kind == BinaryDataKind
}

func (t Tag) HasRealValue() bool {
	return t.kind == RealKind
}

func (t Tag) HasIntegerValue() bool {
	return t.kind == IntegerKind
}

// HasVectorValue is true for Vec3Kind and Vec2Kind.
func (t Tag) HasVectorValue() bool {
	return IsVectorKind(t.kind)
}

// Wants2DExport is true only for Vec2Kind: the vertex was loaded without a
// z-axis and should be written back without one.
func (t Tag) Wants2DExport() bool {
	return t.kind == Vec2Kind
}

// EqualsStructural returns true if the tag is a text tag with the given group
// code and text. Meant to detect structure tags like (0, "SECTION") without
// testing the kind first.
func (t Tag) EqualsStructural(code int, s string) bool {
	return t.code == code && t.kind == StringKind && t.str == s
}

// String renders the tag as "(code, value)".
func (t Tag) String() string {
	var val string
	switch t.kind {
	case StringKind:
		val = strconv.Quote(t.str)
	case BinaryDataKind:
		val = fmt.Sprintf("<%d bytes>", len(t.bin))
	case IntegerKind:
		val = strconv.FormatInt(t.i, 10)
	case RealKind:
		val = strconv.FormatFloat(t.r, 'g', -1, 64)
	case Vec3Kind:
		val = t.vec.String()
	case Vec2Kind:
		val = fmt.Sprintf("(%g, %g)", t.vec.X, t.vec.Y)
	default:
		val = "undefined"
	}
	return fmt.Sprintf("(%d, %s)", t.code, val)
}
