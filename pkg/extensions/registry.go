/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

// Package extensions is the application's plug-in registry. Grammars and
// command interpreters are registered under their extension names, and the
// rest of the application looks them up by name only, so new grammars plug
// in without the file and storage layers knowing them.
package extensions

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fieldnote/fieldnote/pkg/command"
	"github.com/fieldnote/fieldnote/pkg/grammar"
)

var ErrAlreadyRegisteredError = errors.New("already registered")

// InterpreterFactory creates a command interpreter bound to a document
// format.
type InterpreterFactory func(docFormat grammar.IDocumentFormat) command.IInterpreter

// IRegistry is a named set of document formats and interpreter factories.
type IRegistry interface {
	// AddDocumentFormat registers a document format under its name.
	// Panics (ErrAlreadyRegisteredError) on a duplicate.
	AddDocumentFormat(f grammar.IDocumentFormat)

	// DocumentFormat returns the named document format.
	DocumentFormat(name string) (grammar.IDocumentFormat, bool)

	// DocumentFormatNames returns the registered format names, sorted.
	DocumentFormatNames() []string

	// AddInterpreterFactory registers an interpreter factory for the named
	// document format. Panics (ErrAlreadyRegisteredError) on a duplicate.
	AddInterpreterFactory(formatName string, factory InterpreterFactory)

	// NewInterpreter creates an interpreter for the named document format,
	// or reports that none is registered.
	NewInterpreter(formatName string) (command.IInterpreter, bool)
}

// # Implements:
//   - IRegistry
type registry struct {
	formats      map[string]grammar.IDocumentFormat
	interpreters map[string]InterpreterFactory
}

func NewRegistry() IRegistry {
	return &registry{
		formats:      make(map[string]grammar.IDocumentFormat),
		interpreters: make(map[string]InterpreterFactory),
	}
}

func (r *registry) AddDocumentFormat(f grammar.IDocumentFormat) {
	name := f.Name()
	if _, ok := r.formats[name]; ok {
		panic(fmt.Errorf("%w: document format «%s»", ErrAlreadyRegisteredError, name))
	}
	r.formats[name] = f
}

func (r *registry) DocumentFormat(name string) (grammar.IDocumentFormat, bool) {
	f, ok := r.formats[name]
	return f, ok
}

func (r *registry) DocumentFormatNames() []string {
	names := maps.Keys(r.formats)
	slices.Sort(names)
	return names
}

func (r *registry) AddInterpreterFactory(formatName string, factory InterpreterFactory) {
	if _, ok := r.interpreters[formatName]; ok {
		panic(fmt.Errorf("%w: interpreter for document format «%s»", ErrAlreadyRegisteredError, formatName))
	}
	r.interpreters[formatName] = factory
}

func (r *registry) NewInterpreter(formatName string) (command.IInterpreter, bool) {
	factory, ok := r.interpreters[formatName]
	if !ok {
		return nil, false
	}
	f, ok := r.formats[formatName]
	if !ok {
		return nil, false
	}
	return factory(f), true
}
