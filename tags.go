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

// parseTags parses the deferred [begin,end) span recorded for a T
// attribute: zero or more "key=value" pairs separated by ','. An empty
// span (begin == end) adds nothing. Each key and value is itself run
// through parseString, so both may carry "%HEX%" escapes.
func parseTags(line []byte, begin, end int, add func(key, value string)) error {
	if begin == end {
		return nil
	}

	c := &cursor{line: line, pos: begin}

	for {
		key, err := parseString(c)
		if err != nil {
			return err
		}

		if err := c.expectChar('='); err != nil {
			return err
		}

		value, err := parseString(c)
		if err != nil {
			return err
		}

		add(key, value)

		if c.pos >= end {
			return nil
		}

		if err := c.expectChar(','); err != nil {
			return err
		}
	}
}
