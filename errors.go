package main

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrImport matches every failure to open or decode an image.
var ErrImport = errors.New("failed to import image")

type ImportKind int

const (
	NotFound ImportKind = iota
	Unreadable
	Unsupported
)

func (k ImportKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Unreadable:
		return "unreadable"
	case Unsupported:
		return "unsupported or corrupt image"
	}
	return "unknown"
}

type ImportError struct {
	Path string
	Kind ImportKind
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImport
}

// openError classifies a failure to open or read the file itself.
func openError(path string, err error) error {
	kind := Unreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = NotFound
	}
	return &ImportError{Path: path, Kind: kind, Err: err}
}
