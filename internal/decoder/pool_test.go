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
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/opl/internal/decoder"
	"m4o.io/opl/model"
)

// parseLen ignores a line's content: it commits a node whose ID is the
// line's length, tagged with the line number, and fails on a line starting
// with '!'. This lets tests assert ordering independent of the actual
// grammar package (which internal/decoder must not import).
func parseLen(lineNum uint64, line []byte, sink model.Sink) error {
	if len(line) == 0 {
		return nil
	}

	if line[0] == '!' {
		return errors.New("boom: " + string(line))
	}

	b := sink.NewNode(model.ID(len(line)))
	b.AddTag("line", strconv.FormatUint(lineNum, 10))
	b.Commit()

	return nil
}

func TestPoolPreservesSubmissionOrder(t *testing.T) {
	p := decoder.NewPool(parseLen)
	p.Start(4)

	sub := p.Submitter()

	lines := []string{"a", "bb", "ccc", "dddd", "eeeee", "f", "gg", "hhh"}
	for i, l := range lines {
		sub.Submit(uint64(i+1), []byte(l))
	}

	sub.Close()

	var got []int64

	for {
		entity, _, err := p.Next()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		n, ok := entity.(model.Node)
		require.True(t, ok)
		got = append(got, int64(n.ID))
	}

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 1, 2, 3}, got)
}

func TestPoolPropagatesLineError(t *testing.T) {
	p := decoder.NewPool(parseLen)
	p.Start(2)

	sub := p.Submitter()
	sub.Submit(1, []byte("ok"))
	sub.Submit(2, []byte("!bad"))
	sub.Close()

	var errCount int

	for {
		_, _, err := p.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			errCount++
		}
	}

	assert.Equal(t, 1, errCount)
}

func TestPoolStopUnblocksNext(t *testing.T) {
	p := decoder.NewPool(parseLen)
	p.Start(1)

	p.Stop()

	_, _, err := p.Next()
	assert.Error(t, err)
}
