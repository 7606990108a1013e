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
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dxfkit/dxf/cmd/util"
	"github.com/dxfkit/dxf/util/profile"
	"github.com/dxfkit/dxf/util/verbose"
)

var kingpinCommands = []util.KingpinCommand{
	dxfClassify,
	dxfTags,
	dxfStat,
}

var actions = []string{
	"poking at",
	"taking apart",
	"counting handles in",
	"squinting at",
	"reading between the lines of",
}

func usageString() string {
	i := rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(actions))
	return fmt.Sprintf(`dxf is a tool for %s DXF drawing exchange files.`, actions[i])
}

// configPath is set by the global --config flag.
var configPath string

func main() {
	// allow short (-h) help
	kingpin.EnableFileExpansion = false
	dxf := kingpin.New("dxf", usageString())
	dxf.HelpFlag.Short('h')

	// global flags
	verboseVal := dxf.Flag("verbose", "show more").Short('v').Bool()
	dxf.Flag("config", "YAML or TOML config file").StringVar(&configPath)
	profile.RegisterProfileFlags(dxf)

	handlers := map[string]util.KingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(context.Background(), dxf)
		handlers[command.FullCommand()] = handler
	}

	input := kingpin.MustParse(dxf.Parse(os.Args[1:]))

	// apply global flags
	verbose.SetVerbose(*verboseVal)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	handler := handlers[strings.Split(input, " ")[0]]
	if handler == nil {
		dxf.Usage(nil)
		os.Exit(1)
	}

	p := profile.MaybeStartProfile()
	exitCode := handler(input)
	p.Stop()
	os.Exit(exitCode)
}
