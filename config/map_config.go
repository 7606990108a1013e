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
// Copyright 2019 Liquidata, Inc.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package config

// MapConfig keeps properties in memory only. Changes made with SetStrings last
// for the lifetime of the process.
type MapConfig struct {
	properties map[string]string
}

// NewMapConfig creates a config backed by properties. A nil map starts an
// empty config.
func NewMapConfig(properties map[string]string) *MapConfig {
	if properties == nil {
		properties = map[string]string{}
	}
	return &MapConfig{properties}
}

func (mc *MapConfig) GetString(k string) (string, error) {
	if val, ok := mc.properties[k]; ok {
		return val, nil
	}

	return "", ErrConfigParamNotFound
}

func (mc *MapConfig) SetStrings(updates map[string]string) error {
	for k, v := range updates {
		mc.properties[k] = v
	}

	return nil
}

func (mc *MapConfig) Iter(cb func(string, string) (stop bool)) {
	for k, v := range mc.properties {
		if cb(k, v) {
			break
		}
	}
}

func (mc *MapConfig) Size() int {
	return len(mc.properties)
}

// ChainConfig looks keys up in a list of configs, the first config holding a
// key wins. Used to let command line flags override a config file.
type ChainConfig struct {
	cfgs []ReadableConfig
}

func NewChainConfig(cfgs ...ReadableConfig) *ChainConfig {
	return &ChainConfig{cfgs}
}

func (cc *ChainConfig) GetString(k string) (string, error) {
	for _, cfg := range cc.cfgs {
		val, err := cfg.GetString(k)
		if err == ErrConfigParamNotFound {
			continue
		}
		return val, err
	}
	return "", ErrConfigParamNotFound
}

// Iter visits every key once with its effective value.
func (cc *ChainConfig) Iter(cb func(string, string) (stop bool)) {
	seen := map[string]bool{}
	for _, cfg := range cc.cfgs {
		stopped := false
		cfg.Iter(func(k, v string) bool {
			if seen[k] {
				return false
			}
			seen[k] = true
			stopped = cb(k, v)
			return stopped
		})
		if stopped {
			return
		}
	}
}

func (cc *ChainConfig) Size() int {
	n := 0
	cc.Iter(func(string, string) bool {
		n++
		return false
	})
	return n
}
