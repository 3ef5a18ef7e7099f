package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	parallax "github.com/grindlemire/go-parallax"
	"github.com/grindlemire/go-parallax/internal/debug"
)

const (
	wheelStep   = 2
	sectionRows = 10
)

// demo owns the view, its scroll source and the painter. All of its methods
// run on the frame loop goroutine.
type demo struct {
	screen  tcell.Screen
	opts    demoOptions
	view    *parallax.Scroll
	source  *scrollSource
	painter *painter

	status  string
	resized bool
}

func newDemo(screen tcell.Screen, opts demoOptions) *demo {
	var sections []parallax.Section[string]
	if opts.flat {
		sections = append(sections, parallax.Section[string]{})
	}
	for i := 0; i < opts.rows; i++ {
		if !opts.flat && i%sectionRows == 0 {
			sections = append(sections, parallax.Section[string]{
				Key: fmt.Sprintf("Section %d", i/sectionRows+1),
			})
		}
		last := &sections[len(sections)-1]
		last.Items = append(last.Items, parallax.Item[string]{
			Key:  fmt.Sprintf("row-%d", i+1),
			Data: fmt.Sprintf("Row %d", i+1),
		})
	}

	mode := parallax.ContentData
	if opts.children {
		mode = parallax.ContentChildren
	}

	d := &demo{
		screen:  screen,
		opts:    opts,
		painter: newPainter(screen, mode, sections, "~ Parallax ~"),
		status:  "scroll with the wheel or arrow keys, q to quit",
	}
	if debug.Enabled() {
		d.status += " (debug log on)"
	}

	w, h := screen.Size()
	d.view = parallax.New(opts.config(w, h),
		parallax.OnHeaderFixedChanged(d.onHeaderFixed),
		parallax.OnHeaderVisibilityChanged(d.onHeaderVisibility),
	)
	d.source = newScrollSource(d.maxOffset(), d.view.PlaceholderHeight()/2)
	d.resized = true
	return d
}

func (d *demo) onHeaderFixed(fixed bool) {
	if fixed {
		d.status = "header fixed"
	} else {
		d.status = "header released"
	}
	debug.Log("demo: %s", d.status)
}

func (d *demo) onHeaderVisibility(visible bool) {
	if visible {
		d.status = "header shown"
	} else {
		d.status = "header hidden"
	}
	debug.Log("demo: %s", d.status)
}

// maxOffset is the offset at which the last row sits above the status line.
func (d *demo) maxOffset() float64 {
	_, h := d.screen.Size()
	content := d.view.PlaceholderHeight() + float64(d.painter.rowCount())
	return math.Max(content-float64(h-1), 0)
}

func (d *demo) resize() {
	w, h := d.screen.Size()
	d.view.Reconfigure(d.opts.config(w, h))
	d.source.SetLimit(d.maxOffset())
	d.source.SetOverscroll(d.view.PlaceholderHeight() / 2)
	d.resized = true
	debug.Log("demo: resized to %dx%d", w, h)
}

// handle applies one terminal event. It returns false when the demo should quit.
func (d *demo) handle(ev tcell.Event) bool {
	_, h := d.screen.Size()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.resize()
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			d.source.ScrollBy(-wheelStep)
		case ev.Buttons()&tcell.WheelDown != 0:
			d.source.ScrollBy(wheelStep)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			d.source.ScrollBy(-1)
		case tcell.KeyDown:
			d.source.ScrollBy(1)
		case tcell.KeyPgUp:
			d.source.ScrollBy(-float64(h / 2))
		case tcell.KeyPgDn:
			d.source.ScrollBy(float64(h / 2))
		case tcell.KeyHome:
			d.source.ScrollTo(0)
		case tcell.KeyEnd:
			d.source.ScrollTo(d.maxOffset())
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				d.source.ScrollBy(-1)
			case 'j':
				d.source.ScrollBy(1)
			}
		}
	}
	return true
}

// frame advances the scroll source by one frame and repaints if anything
// changed. It reports whether a frame was drawn.
func (d *demo) frame() bool {
	if ev, ok := d.source.Step(); ok {
		d.view.HandleScroll(ev)
	}
	if !d.view.Dirty() && !d.resized {
		return false
	}
	d.resized = false

	state := d.view.State()
	line := fmt.Sprintf(" %.1f fixed=%v visible=%v %s",
		d.view.Offset(), state.HeaderFixed, state.HeaderVisible, d.status)
	d.painter.Paint(d.view, line)
	d.screen.Show()
	return true
}

// loop runs frames at a fixed rate, applying queued terminal events before
// each one, until ctx is done or the user quits.
func (d *demo) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	d.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !d.handle(ev) {
				return nil
			}
		case <-ticker.C:
			d.frame()
		}
	}
}
