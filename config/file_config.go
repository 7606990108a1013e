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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) file. Nested tables are
// flattened into dotted keys, so
//
//	table:
//	  bucket_count: 1024
//
// sets "table.bucket_count".
func LoadFile(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %s", path)
	}

	props := map[string]string{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var m map[interface{}]interface{}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "cannot parse config %s", path)
		}
		flattenYAML("", m, props)
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, errors.Wrapf(err, "cannot parse config %s", path)
		}
		flatten("", m, props)
	default:
		return nil, errors.Errorf("unsupported config format %s", path)
	}

	return NewMapConfig(props), nil
}

func joinKey(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + "." + k
}

func flattenYAML(prefix string, m map[interface{}]interface{}, props map[string]string) {
	for k, v := range m {
		key := joinKey(prefix, fmt.Sprint(k))
		if sub, ok := v.(map[interface{}]interface{}); ok {
			flattenYAML(key, sub, props)
			continue
		}
		props[key] = fmt.Sprint(v)
	}
}

func flatten(prefix string, m map[string]interface{}, props map[string]string) {
	for k, v := range m {
		key := joinKey(prefix, k)
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(key, sub, props)
			continue
		}
		props[key] = fmt.Sprint(v)
	}
}
