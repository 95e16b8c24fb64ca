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

package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/opl/internal/decoder"
	"m4o.io/opl/model"
)

func TestDecodeBatchCollectsInOrder(t *testing.T) {
	batch := decoder.Batch{
		StartLine: 10,
		Lines:     [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")},
	}

	res := <-decoder.DecodeBatch(batch, parseLen)
	require.NoError(t, res.Error)

	require.Len(t, res.Value.Entities, 3)

	for i, e := range res.Value.Entities {
		n, ok := e.(model.Node)
		require.True(t, ok)
		assert.Equal(t, int64(i+1), int64(n.ID))
	}
}

func TestDecodeBatchAbortsOnError(t *testing.T) {
	batch := decoder.Batch{
		StartLine: 1,
		Lines:     [][]byte{[]byte("ok"), []byte("!bad"), []byte("never")},
	}

	res := <-decoder.DecodeBatch(batch, parseLen)
	require.Error(t, res.Error)
	assert.Empty(t, res.Value.Entities)
}
