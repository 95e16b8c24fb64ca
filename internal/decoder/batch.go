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

package decoder

import (
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/opl/model"
)

// Batch is one batch's worth of lines, tagged with the 1-based number of
// the first line in the batch so callers can recover each line's absolute
// position.
type Batch struct {
	StartLine uint64
	Lines     [][]byte
}

// BatchResult is what one Batch parses into: the entities and changesets
// its lines committed, in line order.
type BatchResult struct {
	Entities   []model.Entity
	Changesets []model.Changeset
}

// DecodeBatch parses one Batch of lines and sends the result, a single
// rill.Try[BatchResult], down the returned channel: a malformed line
// aborts the batch and reports the error through rill.Try rather than
// panicking, matching rill's per-item error convention. Each call parses
// its batch on its own goroutine, so several batches can be decoded
// concurrently. The root Decoder does not use DecodeBatch; it goes through
// Pool.
func DecodeBatch(batch Batch, parse ParseFunc) (out <-chan rill.Try[BatchResult]) {
	ch := make(chan rill.Try[BatchResult], 1)
	out = ch

	go func() {
		defer close(ch)

		var res BatchResult

		for i, line := range batch.Lines {
			lineNum := batch.StartLine + uint64(i)

			var got item

			sink := newFuncSink(func(it item) { got = it })

			if err := parse(lineNum, line, sink); err != nil {
				slog.Error("unable to parse line", "line", lineNum, "error", err)
				ch <- rill.Try[BatchResult]{Error: err}

				return
			}

			switch {
			case got.entity != nil:
				res.Entities = append(res.Entities, got.entity)
			case got.changeset != nil:
				res.Changesets = append(res.Changesets, *got.changeset)
			}
		}

		ch <- rill.Try[BatchResult]{Value: res}
	}()

	return out
}
