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

// Package verbose holds the process wide verbosity switch of the dxf tools.
package verbose

import (
	"context"

	"github.com/sirupsen/logrus"
)

var verbose bool

// LogFunc receives the messages of Log while verbose output is on.
var LogFunc = func(ctx context.Context, format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// Verbose returns true if verbose output was switched on.
func Verbose() bool {
	return verbose
}

// SetVerbose switches verbose output and moves the logrus level between Debug
// and Info accordingly.
func SetVerbose(v bool) {
	verbose = v
	if v {
		logrus.SetLevel(logrus.DebugLevel)
	} else if logrus.GetLevel() > logrus.InfoLevel {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Log calls LogFunc(ctx, format, args...) iff Verbose() returns true.
func Log(ctx context.Context, format string, args ...interface{}) {
	if Verbose() {
		LogFunc(ctx, format, args...)
	}
}
