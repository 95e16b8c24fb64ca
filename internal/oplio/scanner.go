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

package oplio

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single OPL line; relation lines with very large
// member lists are the realistic worst case, and this leaves generous
// headroom over any line actually seen in the wild.
const maxLineSize = 16 * 1024 * 1024

// LineScanner reads a decompressed OPL stream one line at a time,
// tracking the 1-based line number ParseLine needs for its error
// positions.
type LineScanner struct {
	scanner *bufio.Scanner
	lineNum uint64
}

// NewLineScanner wraps r, which should already be the decompressed stream
// oplio.Open returns.
func NewLineScanner(r io.Reader) *LineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineScanner{scanner: scanner}
}

// Scan advances to the next line, returning false at EOF or on a read
// error (distinguishable via Err).
func (s *LineScanner) Scan() bool {
	ok := s.scanner.Scan()
	if ok {
		s.lineNum++
	}

	return ok
}

// Bytes returns the current line, without its line terminator. The slice
// is only valid until the next call to Scan.
func (s *LineScanner) Bytes() []byte {
	return s.scanner.Bytes()
}

// LineNum returns the 1-based number of the line last returned by Bytes.
func (s *LineScanner) LineNum() uint64 {
	return s.lineNum
}

// Err returns the first non-EOF error encountered by Scan.
func (s *LineScanner) Err() error {
	return s.scanner.Err()
}
