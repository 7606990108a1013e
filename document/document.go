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
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dxfkit/dxf/d"
	"github.com/dxfkit/dxf/objtable"
	"github.com/dxfkit/dxf/tag"
)

// ErrCorruptDocument reports a record whose handle cannot be bound in the
// object table.
var ErrCorruptDocument = goerrors.NewKind("corrupt document: %s record #%d claims handle %q")

// Diagnostic describes a record whose handle was rejected or which could not
// get a handle at all. Cause is objtable.ErrInvalidHandle,
// objtable.ErrDuplicateBinding, objtable.ErrHandleSpaceExhausted or a handle
// parse error. Handle is the handle read from the document, empty if the
// record has none.
type Diagnostic struct {
	Record *Record
	Index  int
	Handle string
	Cause  error
	Err    error
}

// Document owns the records of a DXF document. Every record which is not a
// structure record is stored in the object table by handle.
type Document struct {
	ID          uuid.UUID
	Records     []*Record
	Diagnostics []Diagnostic
	TagCount    int
	Orphans     int

	table *objtable.Table
}

type options struct {
	tableOpts []objtable.Option
	recover   bool
}

type Option func(*options)

// WithBucketCount sets the bucket count of the document's object table.
func WithBucketCount(n int) Option {
	return func(o *options) {
		o.tableOpts = append(o.tableOpts, objtable.WithBucketCount(n))
	}
}

// Recover makes Build assign a fresh handle to records with an invalid or
// duplicate handle instead of failing. The problems are kept as Diagnostics.
// A record which cannot get a fresh handle because the handle space is used
// up is left out of the object table with a NullHandle.
func Recover(b bool) Option {
	return func(o *options) {
		o.recover = b
	}
}

// Build groups tags into records and stores them in a new object table.
//
// Handles read from the document are stored first, then records without a
// handle get one from the table's allocator, so an acquired handle never
// collides with one read later from the document.
func Build(tags []tag.Tag, opts ...Option) (*Document, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	doc := &Document{
		ID:       uuid.New(),
		TagCount: len(tags),
		table:    objtable.New(o.tableOpts...),
	}
	doc.Records, doc.Orphans = splitRecords(tags)
	log := logrus.WithField("doc", doc.ID.String())
	if doc.Orphans > 0 {
		log.Warnf("%d tags in front of the first structure tag ignored", doc.Orphans)
	}

	var unbound []pending
	for i, rec := range doc.Records {
		if isStructural(rec.name) {
			continue
		}

		ht, ok := rec.handleTag()
		if !ok {
			unbound = append(unbound, pending{rec: rec, index: i})
			continue
		}

		s, _ := ht.AsString()
		err := doc.bind(rec, s)
		if err == nil {
			continue
		}
		if err := doc.reject(log, o.recover, rec, i, s, err); err != nil {
			return nil, err
		}
		unbound = append(unbound, pending{rec: rec, index: i, handle: s})
	}

	for _, p := range unbound {
		h, err := doc.table.AcquireFreeHandle()
		if err != nil {
			if err := doc.reject(log, o.recover, p.rec, p.index, p.handle, err); err != nil {
				return nil, err
			}
			continue
		}
		p.rec.handle = h
		p.rec.assigned = true
		d.PanicIfError(doc.table.Store(p.rec))
	}

	log.Debugf("built %d records, %d objects, max handle %s", len(doc.Records), doc.table.Size(), doc.table.MaxHandle())
	return doc, nil
}

// pending is a record waiting for a handle from the allocator.
type pending struct {
	rec    *Record
	index  int
	handle string
}

// reject records a Diagnostic for rec. Unless recovering, the corruption error
// is returned instead.
func (doc *Document) reject(log *logrus.Entry, recovering bool, rec *Record, i int, s string, cause error) error {
	diag := Diagnostic{Record: rec, Index: i, Handle: s, Cause: cause, Err: ErrCorruptDocument.Wrap(cause, rec.name, i, s)}
	if !recovering {
		return diag.Err
	}
	log.WithFields(logrus.Fields{
		"record": rec.name,
		"index":  i,
		"handle": s,
	}).Warn(cause.Error())
	doc.Diagnostics = append(doc.Diagnostics, diag)
	return nil
}

func (doc *Document) bind(rec *Record, s string) error {
	h, err := objtable.ParseHandle(s)
	if err != nil {
		return err
	}
	rec.handle = h
	if err := doc.table.Store(rec); err != nil {
		rec.handle = objtable.NullHandle
		return err
	}
	return nil
}

// Get returns the record stored under h.
func (doc *Document) Get(h objtable.Handle) (*Record, bool) {
	obj, ok := doc.table.Get(h)
	if !ok {
		return nil, false
	}
	return obj.(*Record), true
}

// Objects returns the count of records stored in the object table.
func (doc *Document) Objects() int {
	return doc.table.Size()
}

func (doc *Document) Stats() objtable.Stats {
	return doc.table.Stats()
}

// Table returns the document's object table.
func (doc *Document) Table() *objtable.Table {
	return doc.table
}
