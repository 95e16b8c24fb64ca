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

package oplio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/opl/internal/oplio"
)

func TestDecompressUnknownExtensionPassesThrough(t *testing.T) {
	src := bytes.NewReader([]byte("n1 v1\n"))

	r, err := oplio.Decompress("nodes.opl", src)
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "n1 v1\n", string(b))
}

func TestDecompressGzip(t *testing.T) {
	var buf bytes.Buffer

	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("n1 v1\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	r, err := oplio.Decompress("nodes.opl.gz", &buf)
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "n1 v1\n", string(b))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := oplio.Open("does-not-exist.opl")
	require.Error(t, err)
}
