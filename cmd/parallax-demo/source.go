package main

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	parallax "github.com/grindlemire/go-parallax"
)

const (
	frameRate     = 60
	frameDuration = time.Second / frameRate

	// springFrequency and springDamping shape how the offset eases towards
	// the target; damping below 1 overshoots a little, like a bounce.
	springFrequency = 9.0
	springDamping   = 0.85

	// overscrollRelease pulls an overscrolled target back towards 0 each frame.
	overscrollRelease = 0.8

	// minStep is the smallest change worth a scroll event.
	minStep = 0.01
)

// scrollSource turns discrete scroll requests into a throttled stream of
// eased offsets, one event per frame at most.
type scrollSource struct {
	spring harmonica.Spring

	target   float64
	pos, vel float64
	limit    float64
	// overscroll is how far above the top the target may be pulled.
	overscroll float64

	last    float64
	emitted bool
}

func newScrollSource(limit, overscroll float64) *scrollSource {
	return &scrollSource{
		spring:     harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		limit:      math.Max(limit, 0),
		overscroll: math.Max(overscroll, 0),
	}
}

// SetLimit changes the largest offset, for example after a resize.
func (s *scrollSource) SetLimit(limit float64) {
	s.limit = math.Max(limit, 0)
	s.target = s.clamp(s.target)
}

// SetOverscroll changes how far above the top the target may be pulled.
func (s *scrollSource) SetOverscroll(overscroll float64) {
	s.overscroll = math.Max(overscroll, 0)
	s.target = s.clamp(s.target)
}

// ScrollBy moves the target by delta rows.
func (s *scrollSource) ScrollBy(delta float64) {
	s.target = s.clamp(s.target + delta)
}

// ScrollTo moves the target to an absolute offset.
func (s *scrollSource) ScrollTo(offset float64) {
	s.target = s.clamp(offset)
}

// Target returns where the offset is heading.
func (s *scrollSource) Target() float64 {
	return s.target
}

func (s *scrollSource) clamp(v float64) float64 {
	return math.Min(math.Max(v, -s.overscroll), s.limit)
}

// Step advances one frame. It returns an event when the offset moved
// enough to be worth rendering.
func (s *scrollSource) Step() (parallax.ScrollEvent, bool) {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)

	if s.target < 0 {
		s.target *= overscrollRelease
		if s.target > -minStep {
			s.target = 0
		}
	}
	if math.Abs(s.pos-s.target) < minStep && math.Abs(s.vel) < minStep {
		s.pos, s.vel = s.target, 0
	}

	settled := s.pos == s.target
	if s.emitted && (s.pos == s.last || (!settled && math.Abs(s.pos-s.last) < minStep)) {
		return parallax.ScrollEvent{}, false
	}
	s.last, s.emitted = s.pos, true
	return parallax.ScrollEvent{OffsetY: s.pos}, true
}
