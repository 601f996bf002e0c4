/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatLimit indicates a numeric value exceeds the fixed-width
	// capacity of the format (9999 for ids and ratings, 99.9 for points).
	// Values are never silently truncated.
	ErrFormatLimit = errors.New("trf: value exceeds fixed-width format limit")

	// ErrUnknownPointCode indicates an XXS line names a point code outside
	// the scoring table.
	ErrUnknownPointCode = errors.New("trf: unknown point code")
)

// ParseError reports the offending line rather than swallowing it.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trf: line %d: %s (%q)", e.Line, e.Reason, e.Text)
}

func parseErrf(line int, text, format string, args ...interface{}) error {
	return &ParseError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}
