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

package tag

// Kind describes which representation a Tag stores.
type Kind uint8

// All supported kinds of tag values are enumerated here.
//
// Vec2Kind is stored exactly like Vec3Kind with z = 0. It only records that the
// vertex was loaded without a z-axis so it can be written back the same way.
const (
	UndefinedKind Kind = iota
	StringKind
	IntegerKind
	RealKind
	Vec3Kind
	Vec2Kind
	BinaryDataKind
)

var KindToString = map[Kind]string{
	UndefinedKind:  "Undefined",
	StringKind:     "String",
	IntegerKind:    "Integer",
	RealKind:       "Real",
	Vec3Kind:       "Vec3",
	Vec2Kind:       "Vec2",
	BinaryDataKind: "BinaryData",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := KindToString[k]; ok {
		return s
	}
	return "unknown"
}

// IsVectorKind returns true for Vec3Kind and Vec2Kind.
func IsVectorKind(k Kind) bool {
	return k == Vec3Kind || k == Vec2Kind
}
