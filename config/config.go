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

package config

import (
	"errors"
	"strconv"
	"strings"
)

// Keys understood by the dxf tools.
const (
	BucketCountKey  = "table.bucket_count"
	KeepCommentsKey = "loader.keep_comments"
	RecoverKey      = "document.recover"
	LogLevelKey     = "log.level"
)

// ErrConfigParamNotFound is returned when a key is not set.
var ErrConfigParamNotFound = errors.New("param not found")

// ReadableConfig is a set of string properties.
type ReadableConfig interface {
	// GetString retrieves a value for a given key.
	GetString(k string) (string, error)

	// Iter calls cb for each value until all values have been visited or cb
	// returns true.
	Iter(cb func(string, string) (stop bool))

	// Size returns the number of properties.
	Size() int
}

type WritableConfig interface {
	SetStrings(updates map[string]string) error
}

// GetUint returns the value of k parsed as unsigned integer or def if k is
// not set.
func GetUint(cfg ReadableConfig, k string, def uint64) (uint64, error) {
	s, err := cfg.GetString(k)
	if err == ErrConfigParamNotFound {
		return def, nil
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

// GetBool returns the value of k parsed as bool or def if k is not set.
func GetBool(cfg ReadableConfig, k string, def bool) (bool, error) {
	s, err := cfg.GetString(k)
	if err == ErrConfigParamNotFound {
		return def, nil
	} else if err != nil {
		return false, err
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

// GetStringOrDefault returns the value of k or def if k is not set.
func GetStringOrDefault(cfg ReadableConfig, k, def string) string {
	s, err := cfg.GetString(k)
	if err != nil {
		return def
	}
	return s
}
