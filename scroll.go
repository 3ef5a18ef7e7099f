package parallax

import (
	"math"
	"sync"

	"github.com/grindlemire/go-parallax/internal/debug"
)

// ScrollEvent is one throttled update from the scroll source.
type ScrollEvent struct {
	// OffsetY is the vertical content offset. It may be negative while the
	// source bounces past the top.
	OffsetY float64
}

// Layer is one positioned layer of the view with its parameters for the
// current offset.
type Layer struct {
	Kind LayerKind
	// Z orders layers back to front.
	Z      int
	Width  float64
	Height float64
	Params VisualParameters
}

// Option is a functional option for New.
type Option func(*Scroll)

// OnHeaderFixedChanged registers the callback fired when a fixed-capable
// header becomes fixed or unfixed.
func OnHeaderFixedChanged(fn func(fixed bool)) Option {
	return func(s *Scroll) {
		s.onFixedChanged = fn
	}
}

// OnHeaderVisibilityChanged registers the callback fired when a floating
// header scrolls out of or back into view.
func OnHeaderVisibilityChanged(fn func(visible bool)) Option {
	return func(s *Scroll) {
		s.onVisibilityChanged = fn
	}
}

// OnScroll registers a listener that receives every scroll event as is,
// before header thresholds are evaluated.
func OnScroll(fn func(ScrollEvent)) Option {
	return func(s *Scroll) {
		s.scrolls.Subscribe(fn)
	}
}

// Scroll coordinates a parallax scroll view: it owns the offset, evaluates
// the layer animations and runs the header threshold machine.
//
// HandleScroll must be called from a single goroutine in the order events
// are produced. Layers and Offset may be read from a render goroutine.
type Scroll struct {
	mu     sync.RWMutex
	engine *Engine

	offset     *Value[float64]
	scrolls    *Events[ScrollEvent]
	thresholds *ThresholdMachine

	onFixedChanged      func(bool)
	onVisibilityChanged func(bool)
}

// New creates a scroll view coordinator for cfg.
func New(cfg Config, opts ...Option) *Scroll {
	s := &Scroll{
		offset:  NewValue(0.0),
		scrolls: NewEvents[ScrollEvent](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = NewEngine(cfg)
	s.thresholds = NewThresholdMachine(s.engine.Config(), s.onFixedChanged, s.onVisibilityChanged)
	return s
}

// Config returns the normalized configuration in use.
func (s *Scroll) Config() Config {
	return s.currentEngine().Config()
}

// Engine returns the engine for the current configuration.
func (s *Scroll) Engine() *Engine {
	return s.currentEngine()
}

func (s *Scroll) currentEngine() *Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Reconfigure replaces the configuration. Like HandleScroll it must run on
// the goroutine delivering scroll events. Header threshold memory is kept
// and re-evaluated at the current offset, so an edge caused by the new
// thresholds fires here and the header state always agrees with Compute.
func (s *Scroll) Reconfigure(cfg Config) Edges {
	engine := NewEngine(cfg)
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	s.thresholds.SetConfig(engine.Config())
	s.offset.dirty.Store(true)
	debug.Log("Scroll.Reconfigure: parallax=%.1f header=%.1f mode=%s",
		engine.cfg.ParallaxHeight, engine.cfg.Header.Height, engine.cfg.Header.Mode)
	return s.thresholds.OnOffsetChanged(s.Offset())
}

// HandleScroll processes one scroll event: the offset is stored, the event
// is passed through to OnScroll listeners, then header thresholds run.
// Events with a NaN offset are dropped.
func (s *Scroll) HandleScroll(ev ScrollEvent) Edges {
	if math.IsNaN(ev.OffsetY) {
		debug.Log("Scroll.HandleScroll: dropping NaN offset")
		return Edges{}
	}
	s.offset.Set(ev.OffsetY)
	s.scrolls.Emit(ev)
	return s.thresholds.OnOffsetChanged(ev.OffsetY)
}

// Offset returns the current scroll offset.
func (s *Scroll) Offset() float64 {
	return s.offset.Get()
}

// OffsetValue returns the observable offset, for layer renderers that
// animate their own content.
func (s *Scroll) OffsetValue() *Value[float64] {
	return s.offset
}

// State returns the header threshold state.
func (s *Scroll) State() ThresholdState {
	return s.thresholds.State()
}

// Dirty returns true if the offset or configuration changed since the last
// call, and clears the flag.
func (s *Scroll) Dirty() bool {
	return s.offset.TakeDirty()
}

// Compute returns the parameters of one layer at the current offset.
func (s *Scroll) Compute(kind LayerKind) VisualParameters {
	return s.currentEngine().Compute(kind, s.Offset())
}

// Layers returns the enabled layers back to front with their parameters
// at the current offset. Background and foreground span the parallax
// region; the header has its own height.
func (s *Scroll) Layers() []Layer {
	engine := s.currentEngine()
	cfg := engine.Config()
	offset := s.Offset()

	layers := make([]Layer, 0, 3)
	if cfg.Background.Enabled {
		layers = append(layers, Layer{
			Kind:   LayerBackground,
			Z:      0,
			Width:  cfg.Width,
			Height: cfg.ParallaxHeight,
			Params: engine.Compute(LayerBackground, offset),
		})
	}
	if cfg.Foreground.Enabled {
		layers = append(layers, Layer{
			Kind:   LayerForeground,
			Z:      1,
			Width:  cfg.Width,
			Height: cfg.ParallaxHeight,
			Params: engine.Compute(LayerForeground, offset),
		})
	}
	if cfg.Header.Enabled {
		layers = append(layers, Layer{
			Kind:   LayerHeader,
			Z:      2,
			Width:  cfg.Width,
			Height: cfg.Header.Height,
			Params: engine.Compute(LayerHeader, offset),
		})
	}
	return layers
}

// PlaceholderHeight is the height of the empty leading row that keeps the
// content from starting underneath the parallax region.
func (s *Scroll) PlaceholderHeight() float64 {
	return s.Config().ParallaxHeight
}
