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

package opl_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/opl"
	"m4o.io/opl/model"
)

func TestDecoderDecodesInOrder(t *testing.T) {
	input := "n1 v1\nw2 v1\nr3 v1\nc4 k1\n"

	d := opl.NewDecoder(strings.NewReader(input), opl.AllBits)
	d.Start(3)

	var kinds []string

	for {
		entity, changeset, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		switch {
		case entity != nil:
			kinds = append(kinds, kindOf(entity))
		case changeset != nil:
			kinds = append(kinds, "changeset")
		}
	}

	d.Stop()

	assert.Equal(t, []string{"node", "way", "relation", "changeset"}, kinds)
}

func TestDecoderSkipsMaskedKinds(t *testing.T) {
	input := "n1 v1\nw2 v1\nr3 v1\n"

	d := opl.NewDecoder(strings.NewReader(input), opl.WayBit)
	d.Start(2)

	var kinds []string

	for {
		entity, _, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		kinds = append(kinds, kindOf(entity))
	}

	d.Stop()

	assert.Equal(t, []string{"way"}, kinds)
}

func TestDecoderReportsMalformedLineAndContinues(t *testing.T) {
	input := "n1 v1 v2\nn2 v1\n"

	d := opl.NewDecoder(strings.NewReader(input), opl.AllBits)
	d.Start(1)

	_, _, err := d.Decode()
	require.Error(t, err)

	var oplErr *opl.Error
	require.ErrorAs(t, err, &oplErr)
	assert.Equal(t, uint64(1), oplErr.Line)

	entity, _, err := d.Decode()
	require.NoError(t, err)

	n, ok := entity.(model.Node)
	require.True(t, ok)
	assert.Equal(t, model.ID(2), n.ID)

	d.Stop()
}

func kindOf(e model.Entity) string {
	switch e.(type) {
	case model.Node:
		return "node"
	case model.Way:
		return "way"
	case model.Relation:
		return "relation"
	default:
		return "unknown"
	}
}
