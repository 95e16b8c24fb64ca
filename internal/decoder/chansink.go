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
	"time"

	"m4o.io/opl/model"
)

// item is whatever a single committed Changeset or Entity becomes once a
// funcSink builder's Commit is called.
type item struct {
	entity    model.Entity
	changeset *model.Changeset
}

// funcSink is model.MemSink's builder machinery adapted to call a single
// callback on Commit instead of appending to an in-memory slice: each of
// the worker pool's per-line parses gets its own funcSink so that exactly
// one item crosses from a line to the caller, which is what a streaming
// Decoder needs and a buffered MemSink does not give you.
type funcSink struct {
	emit func(item)
}

func newFuncSink(emit func(item)) *funcSink {
	return &funcSink{emit: emit}
}

func (s *funcSink) NewNode(id model.ID) model.NodeBuilder {
	return &funcNodeBuilder{sink: s, node: model.Node{ID: id, Tags: map[string]string{}, Location: model.InvalidLocation}}
}

func (s *funcSink) NewWay(id model.ID) model.WayBuilder {
	return &funcWayBuilder{sink: s, way: model.Way{ID: id, Tags: map[string]string{}}}
}

func (s *funcSink) NewRelation(id model.ID) model.RelationBuilder {
	return &funcRelationBuilder{sink: s, relation: model.Relation{ID: id, Tags: map[string]string{}}}
}

func (s *funcSink) NewChangeset(id model.ChangesetID) model.ChangesetBuilder {
	return &funcChangesetBuilder{sink: s, changeset: model.Changeset{ID: id, Tags: map[string]string{}}}
}

type funcNodeBuilder struct {
	sink *funcSink
	node model.Node
}

func (b *funcNodeBuilder) SetVersion(v int32)               { b.node.Meta.Version = v }
func (b *funcNodeBuilder) SetVisible(v bool)                { b.node.Meta.Visible = v }
func (b *funcNodeBuilder) SetChangeset(c model.ChangesetID) { b.node.Meta.Changeset = c }
func (b *funcNodeBuilder) SetTimestamp(t time.Time)         { b.node.Meta.Timestamp = t }
func (b *funcNodeBuilder) SetUID(uid model.UID)             { b.node.Meta.UID = uid }
func (b *funcNodeBuilder) SetUser(user string)              { b.node.Meta.User = user }
func (b *funcNodeBuilder) AddTag(key, value string)         { b.node.Tags[key] = value }
func (b *funcNodeBuilder) SetLocation(loc model.Location)   { b.node.Location = loc }

func (b *funcNodeBuilder) Commit() {
	b.sink.emit(item{entity: b.node})
}

type funcWayBuilder struct {
	sink *funcSink
	way  model.Way
}

func (b *funcWayBuilder) SetVersion(v int32)               { b.way.Meta.Version = v }
func (b *funcWayBuilder) SetVisible(v bool)                { b.way.Meta.Visible = v }
func (b *funcWayBuilder) SetChangeset(c model.ChangesetID) { b.way.Meta.Changeset = c }
func (b *funcWayBuilder) SetTimestamp(t time.Time)         { b.way.Meta.Timestamp = t }
func (b *funcWayBuilder) SetUID(uid model.UID)             { b.way.Meta.UID = uid }
func (b *funcWayBuilder) SetUser(user string)              { b.way.Meta.User = user }
func (b *funcWayBuilder) AddTag(key, value string)         { b.way.Tags[key] = value }

func (b *funcWayBuilder) AddNodeRef(ref model.ID, loc model.Location) {
	b.way.Nodes = append(b.way.Nodes, model.WayNode{Ref: ref, Location: loc})
}

func (b *funcWayBuilder) Commit() {
	b.sink.emit(item{entity: b.way})
}

type funcRelationBuilder struct {
	sink     *funcSink
	relation model.Relation
}

func (b *funcRelationBuilder) SetVersion(v int32)               { b.relation.Meta.Version = v }
func (b *funcRelationBuilder) SetVisible(v bool)                { b.relation.Meta.Visible = v }
func (b *funcRelationBuilder) SetChangeset(c model.ChangesetID) { b.relation.Meta.Changeset = c }
func (b *funcRelationBuilder) SetTimestamp(t time.Time)         { b.relation.Meta.Timestamp = t }
func (b *funcRelationBuilder) SetUID(uid model.UID)              { b.relation.Meta.UID = uid }
func (b *funcRelationBuilder) SetUser(user string)               { b.relation.Meta.User = user }
func (b *funcRelationBuilder) AddTag(key, value string)          { b.relation.Tags[key] = value }

func (b *funcRelationBuilder) AddMember(typ model.MemberType, ref model.ID, role string) {
	b.relation.Members = append(b.relation.Members, model.Member{Type: typ, Ref: ref, Role: role})
}

func (b *funcRelationBuilder) Commit() {
	b.sink.emit(item{entity: b.relation})
}

type funcChangesetBuilder struct {
	sink      *funcSink
	changeset model.Changeset
}

func (b *funcChangesetBuilder) SetNumChanges(n uint32)       { b.changeset.NumChanges = n }
func (b *funcChangesetBuilder) SetNumComments(n uint32)      { b.changeset.NumComments = n }
func (b *funcChangesetBuilder) SetCreatedAt(t time.Time)     { b.changeset.CreatedAt = t }
func (b *funcChangesetBuilder) SetClosedAt(t time.Time)      { b.changeset.ClosedAt = t }
func (b *funcChangesetBuilder) SetUID(uid model.UID)         { b.changeset.UID = uid }
func (b *funcChangesetBuilder) SetUser(user string)          { b.changeset.User = user }
func (b *funcChangesetBuilder) SetBounds(bounds model.Box)   { b.changeset.Bounds = bounds }
func (b *funcChangesetBuilder) AddTag(key, value string)     { b.changeset.Tags[key] = value }

func (b *funcChangesetBuilder) Commit() {
	cs := b.changeset
	b.sink.emit(item{changeset: &cs})
}
