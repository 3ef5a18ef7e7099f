// Package main is a terminal demo of the parallax scroll view.
//
// Usage:
//
//	parallax-demo [options]
//
// Scroll with the mouse wheel, arrow keys or page keys. Scrolling up past the
// top pulls the background down and zooms it. Press q or Esc to quit.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/grindlemire/go-parallax/internal/debug"
)

const usage = `parallax-demo - parallax scroll view in the terminal

Usage:
  parallax-demo [options]

Options:
  -fixed            Pin the header to the top instead of scrolling it away
  -transform N      Shift a fixed header up by N rows on the way (implies -fixed)
  -parallax N       Height of the parallax region in rows (default: half the screen)
  -header N         Header height in rows (default 3)
  -speed N          Background and foreground speed divisor (default 5)
  -fade             Fade background and foreground out while scrolling
  -no-scale         Do not zoom the background on overscroll
  -step-color       Switch the header color at the fixed threshold instead of blending
  -rows N           Number of content rows (default 60)
  -children         Lay content out as child views instead of list data
  -flat             List rows without section headings
  -debug PATH       Write debug log to PATH
  -h, --help        Show this help message
`

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n%s", err, usage)
		os.Exit(2)
	}
	if opts.help {
		fmt.Print(usage)
		return
	}

	if opts.debugPath != "" {
		if err := debug.Init(opts.debugPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "error: parallax-demo needs an interactive terminal")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
