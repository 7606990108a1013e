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

package main

import (
	"strconv"

	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dxfkit/dxf/config"
	"github.com/dxfkit/dxf/d"
	"github.com/dxfkit/dxf/document"
	"github.com/dxfkit/dxf/loader"
	"github.com/dxfkit/dxf/objtable"
	"github.com/dxfkit/dxf/util/verbose"
)

// ErrBucketCountTooBig is returned for a bucket count above
// objtable.MaxBucketCount.
var ErrBucketCountTooBig = goerrors.NewKind("%s: bucket count %d exceeds the maximum of %d")

type settings struct {
	bucketCount  int
	keepComments bool
	recover      bool
}

func (s settings) loaderOptions() []loader.Option {
	return []loader.Option{loader.KeepComments(s.keepComments)}
}

func (s settings) documentOptions() []document.Option {
	return []document.Option{document.WithBucketCount(s.bucketCount), document.Recover(s.recover)}
}

// loadSettings merges the command line overrides with the config file at
// path, if any. Overrides win, a nil overrides config is ignored.
func loadSettings(path string, overrides config.ReadableConfig) (settings, error) {
	var cfgs []config.ReadableConfig
	if overrides != nil {
		cfgs = append(cfgs, overrides)
	}
	if path != "" {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			return settings{}, err
		}
		cfgs = append(cfgs, fileCfg)
	}
	cfg := config.NewChainConfig(cfgs...)

	var s settings
	n, err := config.GetUint(cfg, config.BucketCountKey, objtable.DefaultBucketCount)
	if err != nil {
		return settings{}, err
	}
	if n > objtable.MaxBucketCount {
		return settings{}, ErrBucketCountTooBig.New(config.BucketCountKey, n, objtable.MaxBucketCount)
	}
	s.bucketCount = int(n)

	if s.keepComments, err = config.GetBool(cfg, config.KeepCommentsKey, false); err != nil {
		return settings{}, err
	}
	if s.recover, err = config.GetBool(cfg, config.RecoverKey, false); err != nil {
		return settings{}, err
	}

	if lvl := config.GetStringOrDefault(cfg, config.LogLevelKey, ""); lvl != "" && !verbose.Verbose() {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return settings{}, err
		}
		logrus.SetLevel(level)
	}

	return s, nil
}

// newOverrides returns the config holding flag values which were given on the
// command line.
func newOverrides() *config.MapConfig {
	return config.NewMapConfig(nil)
}

func setUint(cfg config.WritableConfig, k string, v uint64) {
	if v != 0 {
		d.PanicIfError(cfg.SetStrings(map[string]string{k: strconv.FormatUint(v, 10)}))
	}
}

func setBool(cfg config.WritableConfig, k string, v bool) {
	if v {
		d.PanicIfError(cfg.SetStrings(map[string]string{k: "true"}))
	}
}
