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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/opl"
	"m4o.io/opl/model"
)

func TestParseLineNode(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1,
		[]byte("n17 v1 dV c123 t2016-03-04T12:34:56Z i42 ualice Tamenity=bench x8.4234 y49.0123"),
		sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)
	require.Len(t, sink.Entities, 1)

	n, ok := sink.Entities[0].(model.Node)
	require.True(t, ok)

	assert.Equal(t, model.ID(17), n.ID)
	assert.Equal(t, int32(1), n.Meta.Version)
	assert.True(t, n.Meta.Visible)
	assert.Equal(t, model.ChangesetID(123), n.Meta.Changeset)
	assert.Equal(t, time.Date(2016, 3, 4, 12, 34, 56, 0, time.UTC), n.Meta.Timestamp)
	assert.Equal(t, model.UID(42), n.Meta.UID)
	assert.Equal(t, "alice", n.Meta.User)
	assert.Equal(t, map[string]string{"amenity": "bench"}, n.Tags)
	assert.Equal(t, model.Coordinate(84234000), n.Location.Lon)
	assert.Equal(t, model.Coordinate(490123000), n.Location.Lat)
}

func TestParseLineWay(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1,
		[]byte("w5 v2 dV c9 Thighway=residential Nn100,n101x8.1y49.2,n102"),
		sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)
	require.Len(t, sink.Entities, 1)

	w, ok := sink.Entities[0].(model.Way)
	require.True(t, ok)

	require.Len(t, w.Nodes, 3)
	assert.Equal(t, model.ID(100), w.Nodes[0].Ref)
	assert.False(t, w.Nodes[0].Location.Valid())

	assert.Equal(t, model.ID(101), w.Nodes[1].Ref)
	assert.True(t, w.Nodes[1].Location.Valid())
	assert.Equal(t, model.Coordinate(81000000), w.Nodes[1].Location.Lon)
	assert.Equal(t, model.Coordinate(492000000), w.Nodes[1].Location.Lat)

	assert.Equal(t, model.ID(102), w.Nodes[2].Ref)
	assert.False(t, w.Nodes[2].Location.Valid())

	assert.Equal(t, map[string]string{"highway": "residential"}, w.Tags)
}

func TestParseLineRelation(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("r7 Mn1@from,w2@via,r3@"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)
	require.Len(t, sink.Entities, 1)

	r, ok := sink.Entities[0].(model.Relation)
	require.True(t, ok)

	require.Len(t, r.Members, 3)
	assert.Equal(t, model.Member{Type: model.NodeMember, Ref: 1, Role: "from"}, r.Members[0])
	assert.Equal(t, model.Member{Type: model.WayMember, Ref: 2, Role: "via"}, r.Members[1])
	assert.Equal(t, model.Member{Type: model.RelationMember, Ref: 3, Role: ""}, r.Members[2])
}

func TestParseLineChangeset(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1,
		[]byte("c42 k100 s2016-01-01T00:00:00Z e2016-01-02T00:00:00Z d3 i1 ubob x1.0 y2.0 X3.0 Y4.0 Tcomment=hi"),
		sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)
	require.Len(t, sink.Changesets, 1)

	cs := sink.Changesets[0]

	assert.Equal(t, model.ChangesetID(42), cs.ID)
	assert.Equal(t, uint32(100), cs.NumChanges)
	assert.Equal(t, uint32(3), cs.NumComments)
	assert.True(t, cs.Bounds.Valid())
	assert.Equal(t, model.Coordinate(10000000), cs.Bounds.MinLon)
	assert.Equal(t, model.Coordinate(20000000), cs.Bounds.MinLat)
	assert.Equal(t, model.Coordinate(30000000), cs.Bounds.MaxLon)
	assert.Equal(t, model.Coordinate(40000000), cs.Bounds.MaxLat)
	assert.Equal(t, map[string]string{"comment": "hi"}, cs.Tags)
}

func TestParseLineDuplicateAttribute(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 v1 v2"), sink, opl.AllBits)
	assert.False(t, committed)
	require.Error(t, err)

	var oplErr *opl.Error

	require.ErrorAs(t, err, &oplErr)
	assert.Equal(t, "Duplicate attribute: version (v)", oplErr.Msg)
	assert.Equal(t, uint64(1), oplErr.Line)
	assert.Equal(t, uint64(6), oplErr.Column)
}

func TestParseLineEscapedTagASCII(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 Tname=C%61%fe"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)

	n := sink.Entities[0].(model.Node)
	assert.Equal(t, "Cafe", n.Tags["name"])
}

func TestParseLineEscapedTagSingleCodepoint(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 Tname=Caf%E9%"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)

	n := sink.Entities[0].(model.Node)
	assert.Equal(t, "Café", n.Tags["name"])
}

func TestParseLineEscapedUserUnterminatedAtEOL(t *testing.T) {
	sink := model.NewMemSink()

	_, err := opl.ParseLine(1, []byte("n1 uC%61"), sink, opl.AllBits)
	require.Error(t, err)
	assert.ErrorIs(t, err, opl.ErrEOL)
}

func TestParseLineEscapedUserNotHexChar(t *testing.T) {
	sink := model.NewMemSink()

	_, err := opl.ParseLine(1, []byte("n1 uC%zz%"), sink, opl.AllBits)
	require.Error(t, err)
	assert.ErrorIs(t, err, opl.ErrNotHexChar)
}

func TestParseLineEscapedUserTooLong(t *testing.T) {
	sink := model.NewMemSink()

	_, err := opl.ParseLine(1, []byte("n1 uC%123456789%"), sink, opl.AllBits)
	require.Error(t, err)
	assert.ErrorIs(t, err, opl.ErrHexEscapeTooLong)
}

func TestParseLineUnknownType(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("x1 v1"), sink, opl.AllBits)
	assert.False(t, committed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, opl.ErrUnknownType))

	var oplErr *opl.Error

	require.ErrorAs(t, err, &oplErr)
	assert.Equal(t, uint64(0), oplErr.Column)
}

func TestParseLineUnknownAttribute(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 z5"), sink, opl.AllBits)
	assert.False(t, committed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, opl.ErrUnknownAttribute))

	var oplErr *opl.Error

	require.ErrorAs(t, err, &oplErr)
	assert.Equal(t, uint64(3), oplErr.Column)
}

func TestParseLineIgnoresCommentsAndEmptyLines(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("# a comment"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.False(t, committed)

	committed, err = opl.ParseLine(2, nil, sink, opl.AllBits)
	require.NoError(t, err)
	assert.False(t, committed)

	assert.Empty(t, sink.Entities)
}

func TestParseLineMaskFiltering(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 v1"), sink, opl.WayBit)
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Empty(t, sink.Entities)

	committed, err = opl.ParseLine(2, []byte("n1 v1"), sink, opl.NodeBit)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Len(t, sink.Entities, 1)
}

func TestParseLineIntegerTooLong(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1234567890123456"), sink, opl.AllBits)
	assert.False(t, committed)
	assert.True(t, errors.Is(err, opl.ErrIntegerTooLong))
}

func TestParseLineExpectedInteger(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("nabc"), sink, opl.AllBits)
	assert.False(t, committed)
	assert.True(t, errors.Is(err, opl.ErrExpectedInteger))
}

func TestParseLineEmptyTimestampIsUnset(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 t u"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)

	n := sink.Entities[0].(model.Node)
	assert.True(t, n.Meta.Timestamp.IsZero())
}

func TestParseLineBadTimestamp(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 t2016-03-04X12:34:56Z"), sink, opl.AllBits)
	assert.False(t, committed)
	assert.True(t, errors.Is(err, opl.ErrBadTimestamp))
}

func TestParseLineNodeWithoutLocation(t *testing.T) {
	sink := model.NewMemSink()

	committed, err := opl.ParseLine(1, []byte("n1 x y"), sink, opl.AllBits)
	require.NoError(t, err)
	assert.True(t, committed)

	n := sink.Entities[0].(model.Node)
	assert.False(t, n.Location.Valid())
}
