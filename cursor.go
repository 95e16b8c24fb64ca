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

// cursor is a mutable read position into a single OPL line. Every scanner
// in this package takes a *cursor and advances c.pos as it consumes bytes;
// none of them keep their own copy of the position. This mirrors the
// char**-threading the upstream C grammar uses, adapted to a byte slice
// and an int index instead of pointer arithmetic.
type cursor struct {
	line []byte
	pos  int
}

func newCursor(line []byte) *cursor {
	return &cursor{line: line}
}

// eof reports whether the cursor has consumed the whole line.
func (c *cursor) eof() bool {
	return c.pos >= len(c.line)
}

// peek returns the byte at the cursor without advancing, or 0 at eof (the
// grammar treats the implicit NUL terminator of the original char* buffers
// as eof).
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}

	return c.line[c.pos]
}

// advance consumes and returns the byte at the cursor, or 0 at eof.
func (c *cursor) advance() byte {
	b := c.peek()
	if !c.eof() {
		c.pos++
	}

	return b
}

// skipSpace requires at least one space/tab byte at the cursor and
// consumes it plus any further space/tab bytes that follow it. Each
// attribute letter in an entity's flat attribute loop is separated from
// the previous value by exactly this: a value parser stops the instant it
// sees something that isn't part of its value, so by the time skipSpace
// runs, anything other than whitespace there means the line is malformed.
func (c *cursor) skipSpace() error {
	if b := c.peek(); b != ' ' && b != '\t' {
		return fail(c.pos, ErrExpectedSpace)
	}

	for !c.eof() && (c.line[c.pos] == ' ' || c.line[c.pos] == '\t') {
		c.pos++
	}

	return nil
}

// hasValue reports whether the byte at the cursor begins an attribute
// value rather than the end of the line or the field's terminating
// whitespace. x, y, X, Y, and T are all optional-value attributes: the
// letter alone is enough to mark them present, but an empty value (the
// next byte is already eof, space, or tab) means no value follows.
func (c *cursor) hasValue() bool {
	b := c.peek()

	return b != 0 && b != ' ' && b != '\t'
}

// expectChar requires and consumes exactly the byte b.
func (c *cursor) expectChar(b byte) error {
	if c.peek() != b {
		return fail(c.pos, errExpectedChar(b))
	}

	c.pos++

	return nil
}

// skipSection scans forward from the cursor's current position to the end
// of the current attribute value -- the next space/tab or eof -- without
// interpreting the bytes in between, and returns the [begin,end) span
// scanned. Used for the T (tags), N (way-nodes), and M (members) attributes,
// whose contents are parsed in a second pass after the flat attribute scan
// completes, so that a malformed tag/way-node/member list is reported with
// the right, fully-scanned line length rather than truncating the line.
func (c *cursor) skipSection() (begin, end int) {
	begin = c.pos

	for !c.eof() && c.line[c.pos] != ' ' && c.line[c.pos] != '\t' {
		c.pos++
	}

	return begin, c.pos
}
