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

// Category is the coarse value category of a group code, it tells a loader how
// to parse the value line that follows the group code.
type Category uint8

const (
	TextCategory Category = iota
	VertexCategory
	DecimalCategory
	IntegerCategory
)

var categoryToString = map[Category]string{
	TextCategory:    "TEXT",
	VertexCategory:  "VERTEX",
	DecimalCategory: "DECIMAL",
	IntegerCategory: "INTEGER",
}

func (c Category) String() string {
	return categoryToString[c]
}

// Band is an inclusive range of group codes sharing one category.
type Band struct {
	First, Last int
	Category    Category
}

var bands = []Band{
	{10, 18, VertexCategory},
	{110, 112, VertexCategory},
	{210, 213, VertexCategory},
	{1010, 1013, VertexCategory},

	{19, 59, DecimalCategory},
	{113, 149, DecimalCategory},
	{214, 239, DecimalCategory},
	{460, 469, DecimalCategory},
	{1014, 1059, DecimalCategory},

	{60, 79, IntegerCategory},
	{90, 99, IntegerCategory},
	{160, 179, IntegerCategory},
	{270, 289, IntegerCategory},
	{370, 389, IntegerCategory},
	{400, 409, IntegerCategory},
	{420, 429, IntegerCategory},
	{440, 459, IntegerCategory},
	{1060, 1071, IntegerCategory},
}

// MaxGroupCode is the largest group code defined by the DXF reference.
const MaxGroupCode = 1071

// categories is indexed by group code. It is filled once from bands and never
// written again, so lookups need no synchronization.
var categories [MaxGroupCode + 1]Category

func init() {
	for _, b := range bands {
		for code := b.First; code <= b.Last; code++ {
			categories[code] = b.Category
		}
	}
}

// Bands returns a copy of the non-text group code bands.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

// Classify returns the category of a group code. It is total: every code not
// inside a vertex, decimal or integer band is Text.
func Classify(code int) Category {
	if code < 0 || code > MaxGroupCode {
		return TextCategory
	}
	return categories[code]
}

// IsValidGroupCode returns true if code is in the range defined by the DXF
// reference, including the error code -1.
func IsValidGroupCode(code int64) bool {
	return code >= ErrorCode && code <= MaxGroupCode
}

// IsBinaryCode returns true for group codes whose values are hex encoded
// binary data. Consecutive records of these codes form one logical value.
func IsBinaryCode(code int) bool {
	return (code >= 310 && code <= 319) || code == 1004
}

// VectorComponentCodes returns the group codes of the x-, y- and z-axis tags
// of a vector starting at code.
func VectorComponentCodes(code int) (x, y, z int) {
	return code, code + 10, code + 20
}
