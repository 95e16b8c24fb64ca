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

package opl

import (
	"io"
	"runtime"

	"m4o.io/opl/internal/decoder"
	"m4o.io/opl/internal/oplio"
	"m4o.io/opl/model"
)

// Decoder reads OPL text from a stream and decodes it concurrently,
// handing back one entity or changeset at a time in the order its line
// appeared in the input. Start launches a worker pool, Decode pulls
// results off of it, and Stop tears it down.
type Decoder struct {
	scanner *oplio.LineScanner

	pool *decoder.Pool
	sub  *decoder.Submitter

	scanErr  error
	scanDone bool
}

// NewDecoder returns a Decoder that reads OPL lines from r, accepting only
// the entity kinds set in mask.
func NewDecoder(r io.Reader, mask EntityBits) *Decoder {
	d := &Decoder{
		scanner: oplio.NewLineScanner(r),
	}

	d.pool = decoder.NewPool(func(lineNum uint64, line []byte, sink model.Sink) error {
		_, err := ParseLine(lineNum, line, sink, mask)

		return err
	})

	return d
}

// Start launches n worker goroutines. If Decode is called before Start,
// Start is called with runtime.GOMAXPROCS(-1).
func (d *Decoder) Start(n int) {
	d.pool.Start(n)
	d.sub = d.pool.Submitter()

	go d.feed()
}

func (d *Decoder) feed() {
	defer d.sub.Close()

	for d.scanner.Scan() {
		line := append([]byte(nil), d.scanner.Bytes()...)
		d.sub.Submit(d.scanner.LineNum(), line)
	}

	d.scanErr = d.scanner.Err()
	d.scanDone = true
}

// Decode returns the next entity or changeset committed from the input,
// skipping lines that commit nothing (comments, blanks, masked-out
// kinds). The end of the input is reported as io.EOF; a malformed line's
// error is returned as-is (an *Error) and does not stop the Decoder --
// the next call to Decode resumes with the following line.
func (d *Decoder) Decode() (model.Entity, *model.Changeset, error) {
	if d.sub == nil {
		d.Start(runtime.GOMAXPROCS(-1))
	}

	for {
		entity, changeset, err := d.pool.Next()
		if err == io.EOF {
			if d.scanDone && d.scanErr != nil {
				return nil, nil, d.scanErr
			}

			return nil, nil, io.EOF
		}

		if err != nil {
			return nil, nil, err
		}

		if entity == nil && changeset == nil {
			continue
		}

		return entity, changeset, nil
	}
}

// Stop cancels the Decoder's worker pool. Any in-flight Decode call
// returns promptly, typically with io.EOF.
func (d *Decoder) Stop() {
	d.pool.Stop()
}
