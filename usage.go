package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
)

const manual = `# ascii

Turns an image into ASCII art. Every pixel becomes three characters picked by
its brightness from a gradient of 69 glyphs.

## Usage

    ascii [options] <image>

Images wider than 300 pixels are scaled down to 300, keeping the aspect ratio.
PNG, JPEG, GIF, BMP, TIFF and WebP are supported.

## Options

| Flag | Description |
|------|-------------|
| -m, --mode | normal (for dark backgrounds), inverted (for light backgrounds) or auto. Default inverted |
| -p, --pager | browse the result in a scrollable view |
| -v, --verbose | print debug messages to stderr |
| -h, --help | show this help |
| --version | print the version |

## Pager keys

| Key | Action |
|-----|--------|
| arrows, hjkl | scroll |
| pgup, pgdown | scroll a page |
| home, end | jump to the top or bottom |
| ? | toggle help |
| q, esc | quit |
`

func usage(out io.Writer, full bool) {
	if full {
		_, _ = fmt.Fprint(out, "\n  "+bold.Render("ascii "+Version)+"\n\n")
	}
	_, _ = fmt.Fprintf(out, "  Usage: ascii [options] <image>\n\n")
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	put := func(s string) {
		_, _ = fmt.Fprintln(w, s)
	}
	put("    -m, --mode\tnormal, inverted or auto (default inverted)")
	put("    -p, --pager\tbrowse the result in a scrollable view")
	put("    -v, --verbose\tprint debug messages")
	put("    -h, --help\tshow help")
	put("    --version\tprint version")
	if full {
		put("\n  Pager keys:\n")
		put("    arrows, hjkl\tScroll")
		put("    pgup, pgdown\tScroll a page")
		put("    home, end\tJump to top or bottom")
		put("    ?\tToggle help")
		put("    q, esc\tQuit")
	}
	_ = w.Flush()
	_, _ = fmt.Fprintf(out, "\n")
}

// printHelp renders the manual as markdown on a terminal and falls back to
// the plain usage otherwise.
func printHelp(out io.Writer) {
	if isTerminal(out) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err == nil {
			s, err := r.Render(manual)
			if err == nil {
				_, _ = fmt.Fprint(out, s)
				return
			}
		}
	}
	usage(out, true)
}
