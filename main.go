package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
)

const Version = "v1.0.0"

type Options struct {
	Mode    string `short:"m" long:"mode" default:"inverted" description:"Gradient polarity"`
	Pager   bool   `short:"p" long:"pager" description:"Browse the result in a scrollable view"`
	Verbose bool   `short:"v" long:"verbose" description:"Print debug messages to stderr"`
	Help    bool   `short:"h" long:"help" description:"Show help"`
	Version bool   `long:"version" description:"Print version"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	initStyles()

	var opts Options
	rest, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		usage(stderr, false)
		return 2
	}
	if opts.Help {
		printHelp(stdout)
		return 0
	}
	if opts.Version {
		_, _ = fmt.Fprintln(stdout, "ascii "+Version)
		return 0
	}
	if len(rest) != 1 {
		usage(stderr, false)
		return 2
	}
	initLog(stderr, opts.Verbose)

	mode, err := parseMode(opts.Mode)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		usage(stderr, false)
		return 2
	}

	path := rest[0]
	img, _, err := loadImage(path)
	if err != nil {
		reportImportError(stderr, err)
		return 1
	}
	raster := newRaster(fitWidth(img))
	log.Printf("rendering %s in %s mode", sizeOf(raster), mode)

	if opts.Pager && isTerminal(stdout) {
		m, err := newPager(filepath.Base(path), raster, mode)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error running program:", err)
			return 1
		}
		return 0
	}

	_, _ = fmt.Fprintln(stdout, bold.Render("Successfully imported image!"))
	_, _ = fmt.Fprintf(stdout, "Image Size: %d X %d\n", raster.Width, raster.Height)
	if err := render(stdout, raster.Pix, raster.Width, mode); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout)
	return 0
}

func initLog(out io.Writer, verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func reportImportError(out io.Writer, err error) {
	_, _ = fmt.Fprintln(out, danger.Render("Failed to import image!"))
	_, _ = fmt.Fprintln(out, err)

	var importErr *ImportError
	if !errors.As(err, &importErr) || importErr.Kind != NotFound {
		return
	}
	if found := suggest(importErr.Path, 3); len(found) > 0 {
		_, _ = fmt.Fprintln(out, "Did you mean:")
		for _, p := range found {
			_, _ = fmt.Fprintln(out, "    "+hint.Render(p))
		}
	}
}
