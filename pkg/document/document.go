/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package document

import (
	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

// EditListener is called synchronously after each committed edit, undo and
// redo replays included, with the edit actually applied. A listener must
// not call back into Document.Edit.
type EditListener func(edit IEdit)

// Def declares a new document.
type Def struct {
	Records  []schema.IRecord
	Format   grammar.IDocumentFormat
	FilePath string
}

// Document owns an ordered record sequence. All mutation goes through Edit,
// so the history can always undo and redo it.
type Document struct {
	id       uuid.UUID
	records  []schema.IRecord
	format   grammar.IDocumentFormat
	filePath string
	history  *EditHistory
	listener listenerList
}

func New(def Def) *Document {
	return &Document{
		id:       uuid.New(),
		records:  append([]schema.IRecord{}, def.Records...),
		format:   def.Format,
		filePath: def.FilePath,
		history:  NewEditHistory(),
	}
}

// ID returns the session-scoped document identity.
func (d *Document) ID() uuid.UUID { return d.id }

// Format returns the document format the document is associated with, or
// nil when none was assigned.
func (d *Document) Format() grammar.IDocumentFormat { return d.format }

func (d *Document) FilePath() string { return d.filePath }

func (d *Document) SetFilePath(path string) { d.filePath = path }

// Len returns the number of records.
func (d *Document) Len() int { return len(d.records) }

// Record returns the record at index i.
func (d *Document) Record(i int) schema.IRecord { return d.records[i] }

// Records returns a copy of the record sequence. The records themselves
// are the live ones.
func (d *Document) Records() []schema.IRecord {
	return append([]schema.IRecord{}, d.records...)
}

// Text renders the whole document with its format.
func (d *Document) Text() string {
	return d.format.FormatDocument(d.records)
}

// AddEditListener subscribes a listener and returns its removal handle.
// Listeners are notified in subscription order.
func (d *Document) AddEditListener(listener EditListener) func() {
	return d.listener.add(listener)
}

// Edit replaces the records in [start, end) with the given run and commits
// the change to the history. Returns an error wrapping ErrOutOfBoundsError
// when the range does not fit the current sequence.
func (d *Document) Edit(name string, start, end int, records []schema.IRecord) error {
	edit, err := newRecordsEdit(d, name, start, end, records)
	if err != nil {
		return err
	}
	edit.Apply()
	d.history.Append(edit)

	if logger.IsVerbose() {
		logger.Verbose("document", d.id.String(), "edit:", name)
	}
	d.listener.notify(edit)
	return nil
}

// Undo reverts the most recent edit and notifies listeners with the
// inverse actually applied.
func (d *Document) Undo() (IEdit, error) {
	edit, err := d.history.Undo()
	if err != nil {
		return nil, err
	}
	d.listener.notify(edit)
	return edit, nil
}

// Redo replays the most recently undone edit.
func (d *Document) Redo() (IEdit, error) {
	edit, err := d.history.Redo()
	if err != nil {
		return nil, err
	}
	d.listener.notify(edit)
	return edit, nil
}

func (d *Document) UndoName() (string, bool) { return d.history.UndoName() }

func (d *Document) RedoName() (string, bool) { return d.history.RedoName() }

// Saved reports whether the document matches its last marked-saved state.
func (d *Document) Saved() bool { return d.history.Saved() }

// MarkSaved records the current state as saved.
func (d *Document) MarkSaved() { d.history.MarkSaved() }

// listenerList keeps subscribers in subscription order with stable handles.
type listenerList struct {
	nextID    int
	listeners []listenerEntry
}

type listenerEntry struct {
	id int
	fn EditListener
}

func (l *listenerList) add(fn EditListener) func() {
	id := l.nextID
	l.nextID++
	l.listeners = append(l.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range l.listeners {
			if e.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *listenerList) notify(edit IEdit) {
	for _, e := range l.listeners {
		e.fn(edit)
	}
}
