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

// Package decoder is the concurrent line-parsing pipeline behind the
// root-level Decoder façade: a round-robin worker pool that fans OPL text
// lines out to a fixed number of workers and fans the results back in,
// parameterized over the actual grammar call so this package never has to
// import the opl package itself.
package decoder

import (
	"io"
	"sync"

	"m4o.io/opl/model"
)

// ParseFunc parses one line, committing whatever it finds to sink. It is
// opl.ParseLine's shape minus the entity-kind mask, which the caller
// constructing a ParseFunc closes over, and minus ParseLine's committed
// result.
type ParseFunc func(lineNum uint64, line []byte, sink model.Sink) error

// job is one line of work handed to a worker.
type job struct {
	lineNum uint64
	line    []byte
}

// result is what a worker produces for a job: either the single item a
// successful, non-filtered-out line committed, or the error a malformed
// line produced. Both are nil for a line that parsed but committed
// nothing (a comment, an empty line, or a line masked out).
type result struct {
	item item
	err  error
}

// Pool is a round-robin worker pool that parses OPL lines concurrently and
// hands results back out in the same order lines were submitted to
// Submit: a distributor goroutine (driven through Submitter) fans lines
// out to n workers round-robin, each worker runs parse against its own
// funcSink, and a coalescer goroutine fans results back in round-robin so
// the output order matches input order.
type Pool struct {
	parse ParseFunc

	inputs  []chan job
	outputs []chan result
	results chan result
	done    chan struct{}

	start sync.Once
	stop  sync.Once
}

// NewPool constructs a Pool that will call parse for every line submitted
// to it once Start has been called.
func NewPool(parse ParseFunc) *Pool {
	return &Pool{parse: parse}
}

// Start launches n worker goroutines plus the distributor and coalescer.
// Calling Start more than once has no effect beyond the first call.
func (p *Pool) Start(n int) {
	if n < 1 {
		n = 1
	}

	p.start.Do(func() {
		p.inputs = make([]chan job, n)
		p.outputs = make([]chan result, n)
		p.results = make(chan result, n*8)
		p.done = make(chan struct{})

		for i := 0; i < n; i++ {
			input := make(chan job, 8)
			output := make(chan result, 8)

			go p.work(input, output)

			p.inputs[i] = input
			p.outputs[i] = output
		}

		go p.coalesce()
	})
}

func (p *Pool) work(input <-chan job, output chan<- result) {
	defer close(output)

	for j := range input {
		var r result

		sink := newFuncSink(func(it item) { r.item = it })
		if err := p.parse(j.lineNum, j.line, sink); err != nil {
			r.err = err
		}

		select {
		case <-p.done:
			return
		case output <- r:
		}
	}
}

func (p *Pool) coalesce() {
	defer close(p.results)

	n := len(p.outputs)

	for i := 0; ; i = (i + 1) % n {
		select {
		case <-p.done:
			return
		case r, more := <-p.outputs[i]:
			if !more {
				return
			}

			select {
			case <-p.done:
				return
			case p.results <- r:
			}
		}
	}
}

// Submitter round-robins Submit calls across a Pool's workers. It must be
// driven from a single goroutine (the distributor role of the pipeline);
// call Close once there are no more lines.
type Submitter struct {
	pool *Pool
	next int
}

// Submitter returns a handle for feeding lines into the pool.
func (p *Pool) Submitter() *Submitter {
	return &Submitter{pool: p}
}

// Submit hands line, tagged with lineNum, to the next worker in
// round-robin order. It blocks until that worker has room, or the pool
// has been stopped.
func (s *Submitter) Submit(lineNum uint64, line []byte) {
	input := s.pool.inputs[s.next]
	s.next = (s.next + 1) % len(s.pool.inputs)

	select {
	case <-s.pool.done:
	case input <- job{lineNum: lineNum, line: line}:
	}
}

// Close signals that no more lines will be submitted, closing every
// worker's input channel so its goroutine can exit once drained.
func (s *Submitter) Close() {
	for _, input := range s.pool.inputs {
		close(input)
	}
}

// Next blocks for the next result in submission order. It returns io.EOF
// once every worker has drained and the pool has nothing left to report.
func (p *Pool) Next() (model.Entity, *model.Changeset, error) {
	r, more := <-p.results
	if !more {
		return nil, nil, io.EOF
	}

	if r.err != nil {
		return nil, nil, r.err
	}

	return r.item.entity, r.item.changeset, nil
}

// Stop cancels the pipeline; any worker blocked trying to send a result,
// or any Submitter blocked trying to send a job, unblocks and returns.
func (p *Pool) Stop() {
	p.stop.Do(func() {
		if p.done != nil {
			close(p.done)
		}
	})
}
