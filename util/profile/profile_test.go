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

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/attic-labs/kingpin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeStartProfile(t *testing.T) {
	dir := t.TempDir()
	memPath := filepath.Join(dir, "mem.prof")

	app := kingpin.New("test", "")
	RegisterProfileFlags(app)
	_, err := app.Parse([]string{"--memprofile", memPath})
	require.NoError(t, err)
	defer func() { memProfile = "" }()

	p := MaybeStartProfile()
	p.Stop()

	info, err := os.Stat(memPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
