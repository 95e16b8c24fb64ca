// Copyright 2017-25 the original author or authors.
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

// Package oplio provides compression-aware access to OPL text files: Open
// picks a decompressing io.Reader by file extension, the way PBF blob
// decoders dispatch on a compression type carried in the blob header, and
// LineScanner turns the result into one []byte per line.
package oplio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error

	for i := len(r.closers) - 1; i >= 0; i-- {
		if cerr := r.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// factory functions, one per known compression extension, each wrapping a
// raw file reader in the matching decompressing io.Reader. Mirrors the
// switch-on-type-returning-io.Reader dispatch this module's PBF decoder
// used for blob compression, generalized from a type switch to an
// extension switch.
var factories = map[string]func(io.Reader) (io.Reader, error){
	".gz": func(r io.Reader) (io.Reader, error) {
		return gzip.NewReader(r)
	},
	".xz": func(r io.Reader) (io.Reader, error) {
		return xz.NewReader(r)
	},
	".lz4": func(r io.Reader) (io.Reader, error) {
		return lz4.NewReader(r), nil
	},
	".zst": func(r io.Reader) (io.Reader, error) {
		return zstd.NewReader(r)
	},
}

// Open opens name and, if its extension names a known compression format,
// wraps it in the matching decompressing reader. Files named "*.opl.gz",
// "*.opl.xz", "*.opl.lz4", and "*.opl.zst" are recognized; any other
// extension (including none, or plain ".opl") is read as-is.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name) //nolint:gosec // name is an operator-supplied path, not untrusted input
	if err != nil {
		return nil, fmt.Errorf("oplio: open %s: %w", name, err)
	}

	rdr, err := Decompress(name, f)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	closers := []io.Closer{f}

	if rc, ok := rdr.(io.Closer); ok {
		closers = append(closers, rc)
	}

	return &readCloser{Reader: rdr, closers: closers}, nil
}

// Decompress wraps r in the decompressing reader named's extension calls
// for, leaving r unwrapped if the extension is not recognized. It is split
// out of Open for callers -- such as the opl command's progress bar -- that
// need to read the file's raw, on-disk (and possibly still-compressed)
// bytes themselves before decompression happens.
func Decompress(name string, r io.Reader) (io.Reader, error) {
	factory, ok := factories[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return r, nil
	}

	rdr, err := factory(r)
	if err != nil {
		return nil, fmt.Errorf("oplio: decompress %s: %w", name, err)
	}

	return rdr, nil
}
