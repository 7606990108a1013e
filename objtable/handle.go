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

package objtable

import (
	"strconv"

	"github.com/pkg/errors"
)

// Handle is the 64-bit identifier of a DXF object. It is persisted as a plain
// decimal integer token under group code 5 (or 105 for DIMSTYLE records).
type Handle uint64

// NullHandle is invalid by definition and is never stored.
const NullHandle Handle = 0

// IsValid returns false for NullHandle.
func (h Handle) IsValid() bool {
	return h != NullHandle
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// ParseHandle parses a decimal handle token. The null handle "0" parses
// without error, it is up to the caller to reject it.
func ParseHandle(s string) (Handle, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NullHandle, errors.Wrapf(err, "invalid handle %q", s)
	}
	return Handle(n), nil
}
