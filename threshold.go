package parallax

import (
	"math"

	"github.com/grindlemire/go-parallax/internal/debug"
)

// ThresholdState is the header's discrete scroll state.
type ThresholdState struct {
	HeaderFixed   bool
	HeaderVisible bool
}

// InitialThresholdState is the state before the first offset arrives:
// not fixed, visible.
func InitialThresholdState() ThresholdState {
	return ThresholdState{HeaderFixed: false, HeaderVisible: true}
}

// Edges reports which notifications an offset update fired.
type Edges struct {
	FixedChanged      bool
	VisibilityChanged bool
}

// Any reports whether anything fired.
func (e Edges) Any() bool {
	return e.FixedChanged || e.VisibilityChanged
}

// Transition computes the state after offset. It is a pure function: the
// caller owns the state and delivers notifications for the returned edges.
//
// Fixed-capable headers only track the fixed state and floating headers only
// track visibility, so at most one edge fires per update. Without a header,
// or for a NaN offset, the state is returned unchanged.
func Transition(s ThresholdState, offset float64, cfg Config) (ThresholdState, Edges) {
	var edges Edges
	if !cfg.Header.Enabled || math.IsNaN(offset) {
		return s, edges
	}

	if cfg.Header.Mode.Fixed() {
		fixed := offset > cfg.FixedThreshold()
		if fixed != s.HeaderFixed {
			s.HeaderFixed = fixed
			edges.FixedChanged = true
		}
		return s, edges
	}

	visible := offset < cfg.ParallaxHeight
	if visible != s.HeaderVisible {
		s.HeaderVisible = visible
		edges.VisibilityChanged = true
	}
	return s, edges
}

// ThresholdMachine applies Transition to an ordered stream of offsets and
// invokes the notification callbacks on edges.
//
// This is not thread safe: offsets must be delivered in order from a single
// goroutine.
type ThresholdMachine struct {
	cfg   Config
	state ThresholdState

	onFixedChanged      func(bool)
	onVisibilityChanged func(bool)
}

// NewThresholdMachine creates a machine in the initial state. Nil callbacks
// are allowed; state still changes but nothing is notified.
func NewThresholdMachine(cfg Config, onFixedChanged, onVisibilityChanged func(bool)) *ThresholdMachine {
	return &ThresholdMachine{
		cfg:                 cfg.Normalize(),
		state:               InitialThresholdState(),
		onFixedChanged:      onFixedChanged,
		onVisibilityChanged: onVisibilityChanged,
	}
}

// State returns the current state.
func (m *ThresholdMachine) State() ThresholdState {
	return m.state
}

// SetConfig replaces the configuration. The state is kept; the next offset
// is evaluated against the new thresholds.
func (m *ThresholdMachine) SetConfig(cfg Config) {
	m.cfg = cfg.Normalize()
}

// OnOffsetChanged advances the machine and fires callbacks for any edge.
func (m *ThresholdMachine) OnOffsetChanged(offset float64) Edges {
	next, edges := Transition(m.state, offset, m.cfg)
	m.state = next

	if edges.FixedChanged {
		debug.Log("ThresholdMachine: header fixed=%v at offset %.2f", next.HeaderFixed, offset)
		if m.onFixedChanged != nil {
			m.onFixedChanged(next.HeaderFixed)
		}
	}
	if edges.VisibilityChanged {
		debug.Log("ThresholdMachine: header visible=%v at offset %.2f", next.HeaderVisible, offset)
		if m.onVisibilityChanged != nil {
			m.onVisibilityChanged(next.HeaderVisible)
		}
	}
	return edges
}
