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

package writers

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxLineWriter(t *testing.T) {
	tests := []struct {
		maxLines uint32
		writes   []string
		expected string
		errAt    int
	}{
		{0, []string{"a\nb\n", "c\n"}, "a\nb\nc\n", -1},
		{1, []string{"a\nb\n"}, "a\n", 0},
		{2, []string{"a\n", "b\n", "c\n"}, "a\nb\n", 2},
		{2, []string{"a\nb\n"}, "a\nb\n", -1},
		{3, []string{"abc", "d\ne\n", "f\ng"}, "abcd\ne\nf\n", 2},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d %q", test.maxLines, test.writes), func(t *testing.T) {
			var buf bytes.Buffer
			w := &MaxLineWriter{Dest: &buf, MaxLines: test.maxLines}
			errAt := -1
			for i, s := range test.writes {
				if _, err := w.Write([]byte(s)); err != nil {
					assert.Equal(t, MaxLinesErr, err)
					errAt = i
					break
				}
			}
			assert.Equal(t, test.expected, buf.String())
			assert.Equal(t, test.errAt, errAt)
		})
	}
}
