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

import "m4o.io/opl/model"

// parseMembers parses the deferred [begin,end) span recorded for an M
// attribute: zero or more "K<id>@<role>" entries separated by ',', where K
// is one of 'n', 'w', or 'r'. The '@' is mandatory on every entry, even
// when the role after it is empty.
func parseMembers(line []byte, begin, end int, add func(typ model.MemberType, ref model.ID, role string)) error {
	if begin == end {
		return nil
	}

	c := &cursor{line: line, pos: begin}

	for {
		typ, err := parseMemberType(c)
		if err != nil {
			return err
		}

		ref, err := parseID(c)
		if err != nil {
			return err
		}

		if err := c.expectChar('@'); err != nil {
			return err
		}

		if c.pos >= end {
			add(typ, ref, "")

			return nil
		}

		role, err := parseString(c)
		if err != nil {
			return err
		}

		add(typ, ref, role)

		if c.pos >= end {
			return nil
		}

		if err := c.expectChar(','); err != nil {
			return err
		}
	}
}

func parseMemberType(c *cursor) (model.MemberType, error) {
	start := c.pos

	switch c.peek() {
	case 'n':
		c.pos++

		return model.NodeMember, nil
	case 'w':
		c.pos++

		return model.WayMember, nil
	case 'r':
		c.pos++

		return model.RelationMember, nil
	default:
		return 0, fail(start, ErrUnknownObjectType)
	}
}
