/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import "unicode"

// NoneToken is the display-mode token representing a null field value.
// The editing-mode null token is the empty string.
const NoneToken = `""`

// Tokenize splits a record line into whitespace-separated tokens. A run
// delimited by double quotes forms a single token; inside quotes, backslash
// escapes a quote or a backslash. Quoted tokens are returned verbatim,
// surrounding quotes and escapes included; unescaping happens during field
// parsing.
//
// Returns an error wrapping ErrBadFormatError on an unterminated quote, a
// bad escape, or a quote appearing inside an unquoted token.
func Tokenize(s string) ([]string, error) {
	var tokens []string
	rs := []rune(s)

	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}
		start := i
		if rs[i] == '"' {
			i++
			closed := false
			for i < len(rs) && !closed {
				switch rs[i] {
				case '\\':
					if i+1 >= len(rs) || (rs[i+1] != '\\' && rs[i+1] != '"') {
						return nil, ErrBadFormat("bad escape sequence in quoted token of «%s»", s)
					}
					i += 2
				case '"':
					i++
					closed = true
				default:
					i++
				}
			}
			if !closed {
				return nil, ErrBadFormat("unterminated quote in «%s»", s)
			}
			if i < len(rs) && !unicode.IsSpace(rs[i]) {
				return nil, ErrBadFormat("unexpected text after closing quote in «%s»", s)
			}
		} else {
			for i < len(rs) && !unicode.IsSpace(rs[i]) {
				if rs[i] == '"' {
					return nil, ErrBadFormat("unexpected quote inside token of «%s»", s)
				}
				i++
			}
		}
		tokens = append(tokens, string(rs[start:i]))
	}
	return tokens, nil
}
