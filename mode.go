package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

var hasDarkBackground = termenv.HasDarkBackground

// parseMode resolves a --mode value. "auto" picks Normal on a dark terminal
// background and Inverted on a light one.
func parseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "normal":
		return Normal, nil
	case "inverted":
		return Inverted, nil
	case "auto":
		if hasDarkBackground() {
			return Normal, nil
		}
		return Inverted, nil
	}
	return Normal, fmt.Errorf("unknown mode %q", s)
}
