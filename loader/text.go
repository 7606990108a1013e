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
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/dxfkit/dxf/tag"
)

// These converters are tuned for reading DXF tags, they are not general
// purpose functions.

// TrimLineEnding removes trailing "\n" and "\r" characters. Other white space
// is kept because it can be significant in text values.
func TrimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// SafeStrToReal parses a decimal value, surrounding white space is ignored.
func SafeStrToReal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SafeStrToInt64 parses an integer value, surrounding white space is ignored.
func SafeStrToInt64(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// SafeGroupCode parses a group code line. Returns tag.ErrorCode if the line is
// not a valid group code.
func SafeGroupCode(s string) int {
	code, ok := SafeStrToInt64(s)
	if !ok || !tag.IsValidGroupCode(code) {
		return tag.ErrorCode
	}
	return int(code)
}

// Hexlify encodes data as upper case hex digits, two per byte.
func Hexlify(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// Unhexlify decodes a hex string, upper and lower case digits are accepted.
func Unhexlify(s string) ([]byte, bool) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	return data, true
}

// ConcatenateBytes joins the data of consecutive binary records.
func ConcatenateBytes(chunks [][]byte) []byte {
	n := 0
	for _, c := range chunks {
		n += len(c)
	}
	data := make([]byte, 0, n)
	for _, c := range chunks {
		data = append(data, c...)
	}
	return data
}
