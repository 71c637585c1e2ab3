/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

// SerialNumberGenerator issues consecutive observation serial numbers.
// Intended for use in default-rule providers; not safe for concurrent use,
// matching the single-session ownership model of documents.
type SerialNumberGenerator struct {
	next int
}

func NewSerialNumberGenerator(first int) *SerialNumberGenerator {
	return &SerialNumberGenerator{next: first}
}

// Next returns the next serial number and advances the generator.
func (g *SerialNumberGenerator) Next() int {
	n := g.next
	g.next++
	return n
}

// Peek returns the number Next would return, without advancing.
func (g *SerialNumberGenerator) Peek() int { return g.next }

// SetNext resets the generator so that Next returns n.
func (g *SerialNumberGenerator) SetNext(n int) { g.next = n }
