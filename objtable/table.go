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

// Package objtable stores DXF objects by handle.
package objtable

import (
	"math"
	"math/bits"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dxfkit/dxf/d"
)

const (
	// DefaultBucketCount is the bucket count of a table created without
	// options, 2^12 buckets.
	DefaultBucketCount = 1 << 12

	// MaxBucketCount is the biggest bucket count a table accepts, 2^24
	// buckets.
	MaxBucketCount = 1 << 24
)

var ErrInvalidHandle = errors.NewKind("object handle %s is invalid")
var ErrDuplicateBinding = errors.NewKind("object with handle %s already exists")

// ErrHandleSpaceExhausted is returned by AcquireFreeHandle once the biggest
// representable handle is in use.
var ErrHandleSpaceExhausted = errors.NewKind("no free handle above %s")

// Object is anything stored in a Table. The handle of an object must not
// change once it is stored.
type Object interface {
	Handle() Handle
}

type tableEntry struct {
	handle Handle
	object Object
}

type bucket []tableEntry

// Table is the central storage for all DXF objects that have a handle. Storing
// an object hands it over to the table: the relationship between handle and
// object is fixed for the lifetime of the table and entries are never
// removed, so the table does not support deletion. The bucket count is fixed at
// construction and the table never rehashes.
//
// A Table is not safe for concurrent use.
type Table struct {
	buckets   []bucket
	hashMask  uint64
	maxHandle Handle
	size      int
}

type Option func(*Table)

// WithBucketCount sets the number of buckets. Counts which are not a power of
// two are rounded up to the next power of two, counts < 1 select one bucket and
// counts above MaxBucketCount select MaxBucketCount buckets.
func WithBucketCount(n int) Option {
	return func(t *Table) {
		t.buckets = make([]bucket, roundUpPow2(n))
	}
}

// New creates an empty table with DefaultBucketCount buckets unless an option
// says otherwise.
func New(opts ...Option) *Table {
	t := &Table{}
	for _, opt := range opts {
		opt(t)
	}
	if t.buckets == nil {
		t.buckets = make([]bucket, DefaultBucketCount)
	}
	n := len(t.buckets)
	d.PanicIfTrue(n == 0)
	d.PanicIfFalse(n&(n-1) == 0)
	t.hashMask = uint64(n - 1)
	return t
}

// NewWithBits creates a table with 2^n buckets, at most MaxBucketCount.
func NewWithBits(n uint) *Table {
	if n >= uint(bits.Len(MaxBucketCount-1)) {
		return New(WithBucketCount(MaxBucketCount))
	}
	return New(WithBucketCount(1 << n))
}

func roundUpPow2(n int) int {
	if n <= 1 {
		return 1
	}
	if n >= MaxBucketCount {
		return MaxBucketCount
	}
	return 1 << bits.Len(uint(n-1))
}

// bucketFor returns a pointer into the table's own bucket slice. Appending to
// a copy of the bucket would silently lose the entry.
func (t *Table) bucketFor(h Handle) *bucket {
	return &t.buckets[uint64(h)&t.hashMask]
}

// Size returns the count of stored objects.
func (t *Table) Size() int {
	return t.size
}

func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// MaxHandle returns the biggest handle stored or returned by
// AcquireFreeHandle.
func (t *Table) MaxHandle() Handle {
	return t.maxHandle
}

// Get returns the object stored under h. The table keeps the object, Get does
// not hand it over to the caller.
func (t *Table) Get(h Handle) (Object, bool) {
	// linear search, buckets hold only a few entries
	for _, entry := range *t.bucketFor(h) {
		if entry.handle == h {
			return entry.object, true
		}
	}
	return nil, false
}

// GetOr returns the object stored under h or def if there is none.
func (t *Table) GetOr(h Handle, def Object) Object {
	if obj, ok := t.Get(h); ok {
		return obj
	}
	return def
}

// Has returns true if an object is stored under h. Always false for
// NullHandle.
func (t *Table) Has(h Handle) bool {
	if !h.IsValid() {
		return false
	}
	_, ok := t.Get(h)
	return ok
}

// Contains returns true if an object with the handle of obj is stored.
func (t *Table) Contains(obj Object) bool {
	return t.Has(obj.Handle())
}

// AcquireFreeHandle returns a handle bigger than every handle stored or
// returned before. The handle is not reserved: the table will not return it
// again, but it does not prevent storing an object with that handle either,
// and a handle which is never stored leaves a permanent gap.
//
// Once the maximum handle is math.MaxUint64 every further call fails with
// ErrHandleSpaceExhausted.
func (t *Table) AcquireFreeHandle() (Handle, error) {
	if t.maxHandle == math.MaxUint64 {
		return NullHandle, ErrHandleSpaceExhausted.New(t.maxHandle)
	}
	t.maxHandle++
	return t.maxHandle, nil
}

// Store hands obj over to the table. It fails with ErrInvalidHandle for the
// null handle and with ErrDuplicateBinding if the handle is already bound; a
// stored object is never replaced.
func (t *Table) Store(obj Object) error {
	h := obj.Handle()
	if !h.IsValid() {
		return ErrInvalidHandle.New(h)
	}
	if t.Has(h) {
		return ErrDuplicateBinding.New(h)
	}

	b := t.bucketFor(h)
	*b = append(*b, tableEntry{handle: h, object: obj})
	t.size++
	if h > t.maxHandle {
		t.maxHandle = h
	}
	return nil
}

// Iter calls cb for each stored object, bucket by bucket, until all objects
// have been visited or cb returns true.
func (t *Table) Iter(cb func(Object) (stop bool)) {
	for _, b := range t.buckets {
		for _, entry := range b {
			if cb(entry.object) {
				return
			}
		}
	}
}

// Stats describes how the stored objects are spread over the buckets.
type Stats struct {
	Objects     int
	Buckets     int
	UsedBuckets int
	MaxChain    int
	MaxHandle   Handle
}

// MeanChain is the average number of entries of a used bucket.
func (s Stats) MeanChain() float64 {
	if s.UsedBuckets == 0 {
		return 0
	}
	return float64(s.Objects) / float64(s.UsedBuckets)
}

func (t *Table) Stats() Stats {
	st := Stats{Objects: t.size, Buckets: len(t.buckets), MaxHandle: t.maxHandle}
	for _, b := range t.buckets {
		if len(b) == 0 {
			continue
		}
		st.UsedBuckets++
		if len(b) > st.MaxChain {
			st.MaxChain = len(b)
		}
	}
	return st
}
