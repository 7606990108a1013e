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
//
// This file incorporates work covered by the following copyright and
// permission notice:
//
// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package writers

import (
	"errors"
	"io"
)

// MaxLinesErr is returned by MaxLineWriter.Write once more than MaxLines lines
// would be written.
var MaxLinesErr = errors.New("maximum number of lines written")

// MaxLineWriter counts the lines written to Dest and refuses to write beyond
// MaxLines lines. A MaxLines of 0 writes any number of lines.
type MaxLineWriter struct {
	Dest     io.Writer
	MaxLines uint32
	NumLines uint32
}

// Write writes data up to and including the newline which completes line
// MaxLines and returns MaxLinesErr if any data was cut off.
func (w *MaxLineWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	checkMax := w.MaxLines > 0

	if checkMax && w.NumLines >= w.MaxLines {
		return 0, MaxLinesErr
	}

	var err error
	n := len(data)

	for i, b := range data {
		if b == '\n' {
			w.NumLines++
			if checkMax && w.NumLines >= w.MaxLines {
				n = i + 1
				if n < len(data) {
					err = MaxLinesErr
				}
				break
			}
		}
	}

	cnt, werr := w.Dest.Write(data[:n])
	if werr != nil {
		return cnt, werr
	}
	return cnt, err
}
