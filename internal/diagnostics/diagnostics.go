// Package diagnostics renders fatal parse errors with source context: a
// "file:line:column" header, the offending source line, and a caret
// pointing at the failure. It is the byte-offset counterpart of the
// teacher's internal/errors.CompilerError, which carries a pre-computed
// lexer.Position{Line, Column}. Lligne's SourcePos carries only a byte
// range (spec.md §3.1 explicitly puts line/column mapping out of scope
// for the scanner), so diagnostics does that mapping itself from the
// newline offsets the scanner records alongside the token stream.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lligne-lang/lligne-go/internal/token"
)

// SourceError is a fatal error anchored at a byte-range position, ready
// to be rendered with source context.
type SourceError struct {
	Message string
	Pos     token.SourcePos
	File    string
}

// NewSourceError builds a SourceError from a message and position. File
// may be empty (e.g. for a REPL or -e/--eval snippet).
func NewSourceError(message string, pos token.SourcePos, file string) *SourceError {
	return &SourceError{Message: message, Pos: pos, File: file}
}

// Error implements the error interface without source context, for
// contexts where only a one-line message is wanted.
func (e *SourceError) Error() string {
	return e.Message
}

// lineAndColumn converts a byte offset into a 1-indexed line and column,
// given the newline offsets the scanner recorded for source (spec.md §4.1:
// the scanner records the byte offset of every '\n' it skips).
func lineAndColumn(newlineOffsets []uint32, offset uint32) (line, column int) {
	line = 1
	lineStart := uint32(0)
	for _, nl := range newlineOffsets {
		if nl >= offset {
			break
		}
		line++
		lineStart = nl + 1
	}
	return line, int(offset-lineStart) + 1
}

// sourceLine returns the line of source containing the given byte offset,
// or "" if the offset falls outside source.
func sourceLine(source string, newlineOffsets []uint32, offset uint32) string {
	if int(offset) > len(source) {
		return ""
	}
	start := uint32(0)
	end := uint32(len(source))
	for _, nl := range newlineOffsets {
		if nl < offset {
			start = nl + 1
			continue
		}
		end = nl
		break
	}
	return source[start:end]
}

// Format renders e with a header, the source line containing e.Pos, and a
// caret pointing at the start of e.Pos. source and newlineOffsets come
// from the scanner.Outcome (or pkg/lligne.Result) that produced e. If
// color is true, ANSI codes highlight the caret and message.
func (e *SourceError) Format(source string, newlineOffsets []uint32, color bool) string {
	var sb strings.Builder

	line, column := lineAndColumn(newlineOffsets, e.Pos.Start)
	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, line, column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", line, column)
	}

	if text := sourceLine(source, newlineOffsets, e.Pos.Start); text != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(text)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}
