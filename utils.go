package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

func extension(path string) string {
	return strings.TrimLeft(strings.ToLower(filepath.Ext(path)), ".")
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// cut returns at most n bytes of s starting at offset. The art is plain
// ASCII, so byte offsets are column offsets.
func cut(s string, offset, n int) string {
	if offset >= len(s) {
		return ""
	}
	s = s[offset:]
	if n < len(s) {
		s = s[:n]
	}
	return s
}
