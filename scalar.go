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
	"time"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"m4o.io/opl/model"
)

// maxIntDigits bounds the digit run a single integer attribute may consist
// of: sign plus at most 15 digits. A 16th digit is rejected as too long
// before the value is even range-checked, matching the fixed budget the
// upstream grammar gives every bounded integer field regardless of the
// target type's true width.
const maxIntDigits = 15

// parseInt reads an optional leading '-' followed by one to maxIntDigits
// decimal digits, and range-checks the accumulated value against [lo, hi]
// before narrowing to T. It stops at the first non-digit byte; it does not
// require that byte to be anything in particular, leaving that to the
// caller (most attribute values are terminated by a space).
func parseInt[T constraints.Signed](c *cursor, lo, hi int64) (T, error) {
	start := c.pos

	neg := false
	if c.peek() == '-' {
		neg = true
		c.pos++
	}

	digitsStart := c.pos

	var val int64

	for !c.eof() && isDigit(c.line[c.pos]) {
		if c.pos-digitsStart >= maxIntDigits {
			return 0, fail(start, ErrIntegerTooLong)
		}

		val = val*10 + int64(c.line[c.pos]-'0')
		c.pos++
	}

	if c.pos == digitsStart {
		return 0, fail(start, ErrExpectedInteger)
	}

	if neg {
		val = -val
	}

	if val < lo || val > hi {
		return 0, fail(start, ErrIntegerTooLong)
	}

	return T(val), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseID reads an id attribute value (node/way/relation id).
func parseID(c *cursor) (model.ID, error) {
	v, err := parseInt[int64](c, minInt64, maxInt64)

	return model.ID(v), err
}

// parseChangesetID reads a changeset id attribute value.
func parseChangesetID(c *cursor) (model.ChangesetID, error) {
	v, err := parseInt[int64](c, minInt64, maxInt64)

	return model.ChangesetID(v), err
}

// parseVersion reads a version attribute value.
func parseVersion(c *cursor) (int32, error) {
	return parseInt[int32](c, minInt32, maxInt32)
}

// parseUID reads a uid attribute value.
func parseUID(c *cursor) (model.UID, error) {
	v, err := parseInt[int32](c, minInt32, maxInt32)

	return model.UID(v), err
}

// parseCount reads a non-negative count attribute value (num_changes,
// comments_count).
func parseCount(c *cursor) (uint32, error) {
	v, err := parseInt[int64](c, 0, maxUint32)

	return uint32(v), err
}

const (
	minInt64  = -1 << 63
	maxInt64  = 1<<63 - 1
	minInt32  = -1 << 31
	maxInt32  = 1<<31 - 1
	maxUint32 = 1<<32 - 1
)

// parseVisible reads the single-byte visible flag: 'V' for true, 'D' for
// false. Anything else is an error.
func parseVisible(c *cursor) (bool, error) {
	start := c.pos

	switch c.peek() {
	case 'V':
		c.pos++

		return true, nil
	case 'D':
		c.pos++

		return false, nil
	default:
		return false, fail(start, ErrInvalidVisibleFlag)
	}
}

// timestampLen is the exact length of a non-empty OPL timestamp:
// "2020-01-02T03:04:05Z".
const timestampLen = 20

// parseTimestamp reads an ISO-8601 "Z" timestamp, exactly timestampLen
// bytes, or nothing at all -- an empty field (the next byte is eof, space,
// or tab) yields the zero time.Time, matching the upstream grammar's
// treatment of an absent timestamp as unset rather than an error.
func parseTimestamp(c *cursor) (time.Time, error) {
	b := c.peek()
	if b == 0 || b == ' ' || b == '\t' {
		return time.Time{}, nil
	}

	start := c.pos
	if start+timestampLen > len(c.line) {
		return time.Time{}, fail(start, ErrBadTimestamp)
	}

	raw := c.line[start : start+timestampLen]

	t, err := time.Parse("2006-01-02T15:04:05Z", string(raw))
	if err != nil {
		return time.Time{}, fail(start, ErrBadTimestamp)
	}

	c.pos += timestampLen

	return t, nil
}

// parseEscaped reads a "%HEXDIGITS%" escape (the leading '%' has already
// been consumed) and returns the decoded Unicode code point. It accepts one
// to eight hex digits, terminated by a mandatory closing '%'.
func parseEscaped(c *cursor) (rune, error) {
	start := c.pos

	var cp uint32

	n := 0

	for {
		if c.eof() {
			return 0, fail(c.pos, ErrEOL)
		}

		b := c.peek()
		if b == '%' {
			c.pos++

			break
		}

		d, ok := hexDigit(b)
		if !ok {
			return 0, fail(c.pos, ErrNotHexChar)
		}

		n++
		if n > 8 {
			return 0, fail(start, ErrHexEscapeTooLong)
		}

		cp = cp<<4 | uint32(d)
		c.pos++
	}

	if n == 0 {
		return 0, fail(start, ErrNotHexChar)
	}

	return rune(cp), nil
}

func hexDigit(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint32(b-'A') + 10, true
	default:
		return 0, false
	}
}

// parseString reads a run of bytes up to (but not including) the next
// space, tab, ',', '=', or eof, decoding any "%HEX%" escapes it encounters
// along the way into their UTF-8 encoding.
func parseString(c *cursor) (string, error) {
	var buf []byte

	for {
		b := c.peek()

		switch {
		case b == 0 || b == ' ' || b == '\t' || b == ',' || b == '=':
			return string(buf), nil
		case b == '%':
			c.pos++

			cp, err := parseEscaped(c)
			if err != nil {
				return "", err
			}

			var enc [utf8.UTFMax]byte

			n := utf8.EncodeRune(enc[:], cp)
			buf = append(buf, enc[:n]...)
		default:
			buf = append(buf, b)
			c.pos++
		}
	}
}
