/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

// Package store persists named documents in a bolt database. Documents are
// stored as data-file text, so anything the file layer can read the store
// can hold, and a stored document carries its own grammar name.
package store

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/fieldnote/fieldnote/pkg/docfile"
	"github.com/fieldnote/fieldnote/pkg/document"
	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/grammar"
)

const documentsBucketName = "documents"

var ErrDocumentNotFoundError = errors.New("document not found")

func ErrDocumentNotFound(name string) error {
	return fmt.Errorf("%w: «%s»", ErrDocumentNotFoundError, name)
}

// IDocStore is a named document store.
type IDocStore interface {
	// Put stores the document's records under a name, overwriting any
	// previous version.
	Put(name string, doc *document.Document, docFormat grammar.IDocumentFormat) error

	// Get loads the named document, resolving its grammar through the
	// registry. Returns an error wrapping ErrDocumentNotFoundError when
	// the name is unknown.
	Get(name string, reg extensions.IRegistry, ctx any) (*document.Document, error)

	// Names returns the stored document names in key order.
	Names() ([]string, error)

	// Delete removes the named document. Deleting an unknown name is not
	// an error.
	Delete(name string) error

	// Close releases the underlying database.
	Close() error
}

// # Implements:
//   - IDocStore
type docStore struct {
	db *bolt.DB
}

// Open opens (creating if needed) a document store at the given path.
func Open(path string) (IDocStore, error) {
	db, err := bolt.Open(path, 0644, bolt.DefaultOptions)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(documentsBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &docStore{db: db}, nil
}

func (s *docStore) Put(name string, doc *document.Document, docFormat grammar.IDocumentFormat) error {
	data := docfile.Marshal(doc.Records(), docFormat)
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(documentsBucketName)).Put([]byte(name), data)
	})
	if err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("stored", fmt.Sprint(doc.Len()), "records as", name)
	}
	return nil
}

func (s *docStore) Get(name string, reg extensions.IRegistry, ctx any) (*document.Document, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(documentsBucketName)).Get([]byte(name))
		if v == nil {
			return ErrDocumentNotFound(name)
		}
		data = append(data, v...) // v is only valid inside the transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	records, docFormat, err := docfile.Unmarshal(data, reg, ctx, name)
	if err != nil {
		return nil, err
	}
	return document.New(document.Def{Records: records, Format: docFormat}), nil
}

func (s *docStore) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(documentsBucketName)).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *docStore) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(documentsBucketName)).Delete([]byte(name))
	})
}

func (s *docStore) Close() error {
	return s.db.Close()
}
