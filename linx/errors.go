// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import (
	"fmt"
	"strings"
)

// OutOfBoundsError reports a value outside its valid interval.
// The interval is inclusive on both ends.
type OutOfBoundsError struct {
	Name     string
	Value    int
	Min, Max int
	notes    []string
}

func (e *OutOfBoundsError) Error() string {
	msg := fmt.Sprintf("out of bounds error: %s %d not in [%d, %d]", e.Name, e.Value, e.Min, e.Max)
	return withNotes(msg, e.notes)
}

// Append annotates the error with an extra line, indented by indent spaces.
func (e *OutOfBoundsError) Append(line string, indent int) {
	e.notes = append(e.notes, strings.Repeat(" ", indent)+line)
}

// SizeMismatchError reports containers or shapes of incompatible sizes.
type SizeMismatchError struct {
	Name     string
	Expected int
	Actual   int
	notes    []string
}

func (e *SizeMismatchError) Error() string {
	msg := fmt.Sprintf("size mismatch error: %s expected %d, got %d", e.Name, e.Expected, e.Actual)
	return withNotes(msg, e.notes)
}

// Append annotates the error with an extra line, indented by indent spaces.
func (e *SizeMismatchError) Append(line string, indent int) {
	e.notes = append(e.notes, strings.Repeat(" ", indent)+line)
}

// AlignmentError reports a buffer which does not meet a requested alignment.
type AlignmentError struct {
	Required int // bytes
	Actual   int // bytes, greatest power of two dividing the address
	notes    []string
}

func (e *AlignmentError) Error() string {
	msg := fmt.Sprintf("alignment error: required %d bytes, got %d", e.Required, e.Actual)
	return withNotes(msg, e.notes)
}

// Append annotates the error with an extra line, indented by indent spaces.
func (e *AlignmentError) Append(line string, indent int) {
	e.notes = append(e.notes, strings.Repeat(" ", indent)+line)
}

// NotImplementedError is returned by operations which are declared but not
// implemented yet.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Op)
}

func withNotes(msg string, notes []string) string {
	if len(notes) == 0 {
		return msg
	}
	return msg + "\n" + strings.Join(notes, "\n")
}
