/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package document

import (
	"github.com/fieldnote/fieldnote/pkg/schema"
)

// IRecordsEdit is a committed record-range replacement, as handed to edit
// listeners.
type IRecordsEdit interface {
	IEdit

	// Start and End bound the replaced range [Start, End).
	Start() int
	End() int

	// Removed and Inserted return copies of the removed and inserted runs.
	Removed() []schema.IRecord
	Inserted() []schema.IRecord
}

// recordsEdit replaces the records in [start, end) with a new run. It owns
// deep copies of both the removed and the inserted records, so later
// mutation of the live sequence cannot corrupt the history.
//
// # Implements:
//   - IEdit
type recordsEdit struct {
	doc        *Document
	name       string
	start, end int
	old, new   []schema.IRecord
}

func newRecordsEdit(doc *Document, name string, start, end int, records []schema.IRecord) (*recordsEdit, error) {
	if err := checkEditIndices(start, end, len(doc.records)); err != nil {
		return nil, err
	}
	return &recordsEdit{
		doc:   doc,
		name:  name,
		start: start,
		end:   end,
		old:   copyRecords(doc.records[start:end]),
		new:   copyRecords(records),
	}, nil
}

func (e *recordsEdit) Name() string { return e.name }

func (e *recordsEdit) Start() int { return e.start }

func (e *recordsEdit) End() int { return e.end }

func (e *recordsEdit) Removed() []schema.IRecord { return copyRecords(e.old) }

func (e *recordsEdit) Inserted() []schema.IRecord { return copyRecords(e.new) }

func (e *recordsEdit) Inverse() IEdit {
	inv, err := newRecordsEdit(
		e.doc, e.name+" Inverse", e.start, e.start+len(e.new), e.old)
	if err != nil {
		// the range is valid by construction: Apply has put len(e.new)
		// records at e.start
		panic(err)
	}
	return inv
}

func (e *recordsEdit) Apply() {
	doc := e.doc
	tail := doc.records[e.end:]
	records := make([]schema.IRecord, 0, e.start+len(e.new)+len(tail))
	records = append(records, doc.records[:e.start]...)
	records = append(records, copyRecords(e.new)...)
	records = append(records, tail...)
	doc.records = records
}

func checkEditIndices(start, end, docLen int) error {
	if err := checkEditIndex(start, docLen, "start"); err != nil {
		return err
	}
	if err := checkEditIndex(end, docLen, "end"); err != nil {
		return err
	}
	if end < start {
		return ErrOutOfBounds("edit end index %d must be at least start index %d", end, start)
	}
	return nil
}

func checkEditIndex(index, docLen int, name string) error {
	if index < 0 {
		return ErrOutOfBounds("edit %s index %d must be at least zero", name, index)
	}
	if index > docLen {
		return ErrOutOfBounds("edit %s index %d must not exceed document length %d", name, index, docLen)
	}
	return nil
}

func copyRecords(records []schema.IRecord) []schema.IRecord {
	copies := make([]schema.IRecord, len(records))
	for i, rec := range records {
		copies[i] = rec.Clone()
	}
	return copies
}
