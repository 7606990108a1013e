// Copyright 2026 Dxfkit Authors
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

package document

import (
	"github.com/dxfkit/dxf/objtable"
	"github.com/dxfkit/dxf/tag"
)

// Group codes holding the handle of a record.
const (
	HandleCode         = 5
	DimStyleHandleCode = 105
)

// Record is a group of tags starting with a structure tag (0, name). A record
// is only a substrate for drawing entities, it does not interpret its tags.
type Record struct {
	handle   objtable.Handle
	name     string
	tags     []tag.Tag
	assigned bool
}

func (r *Record) Handle() objtable.Handle {
	return r.handle
}

// Name returns the value of the structure tag, e.g. "LINE".
func (r *Record) Name() string {
	return r.name
}

// Tags returns all tags of the record including the structure tag.
func (r *Record) Tags() []tag.Tag {
	return r.tags
}

// Assigned returns true if the handle was acquired from the object table
// instead of being read from the document.
func (r *Record) Assigned() bool {
	return r.assigned
}

func handleCode(name string) int {
	if name == "DIMSTYLE" {
		return DimStyleHandleCode
	}
	return HandleCode
}

// handleTag returns the handle tag of the record, if any.
func (r *Record) handleTag() (tag.Tag, bool) {
	code := handleCode(r.name)
	for _, t := range r.tags[1:] {
		if t.GroupCode() == code && t.HasStringValue() {
			return t, true
		}
	}
	return tag.Tag{}, false
}

// structural records are not objects and never get a handle.
var structuralRecords = map[string]bool{
	"SECTION": true,
	"ENDSEC":  true,
	"EOF":     true,
	"CLASS":   true,
}

func isStructural(name string) bool {
	return structuralRecords[name]
}

// splitRecords groups tags into records. Tags in front of the first structure
// tag do not belong to any record and are returned as orphans.
func splitRecords(tags []tag.Tag) (records []*Record, orphans int) {
	var cur *Record
	for _, t := range tags {
		if t.GroupCode() == tag.StructureCode && t.HasStringValue() {
			name, _ := t.AsString()
			cur = &Record{name: name, tags: []tag.Tag{t}}
			records = append(records, cur)
			continue
		}
		if cur == nil {
			orphans++
			continue
		}
		cur.tags = append(cur.tags, t)
	}
	return records, orphans
}
