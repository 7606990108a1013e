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

package loader

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/dxfkit/dxf/tag"
)

// SnappySuffix marks DXF files compressed with the snappy framing format.
const SnappySuffix = ".sz"

type fileReader struct {
	io.Reader
	f *os.File
}

func (fr fileReader) Close() error {
	return fr.f.Close()
}

// Open opens a DXF file for reading. Files ending in SnappySuffix are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}

	if strings.HasSuffix(path, SnappySuffix) {
		return fileReader{snappy.NewReader(f), f}, nil
	}
	return fileReader{f, f}, nil
}

// LoadFile reads all tags of the DXF file at path.
func LoadFile(path string, opts ...Option) ([]tag.Tag, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tags, err := Load(rc, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return tags, nil
}
