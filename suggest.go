package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggest returns up to limit images next to path whose names fuzzy match
// the name of path, best match first.
func suggest(path string, limit int) []string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isImage(e.Name()) {
			names = append(names, e.Name())
		}
	}

	var found []string
	for _, match := range fuzzy.Find(stem, names) {
		if len(found) == limit {
			break
		}
		found = append(found, filepath.Join(dir, match.Str))
	}
	return found
}
