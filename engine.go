package parallax

import (
	"math"
	"slices"
)

// Scalar is a visual parameter that is either a constant or an
// interpolation of the scroll offset.
type Scalar struct {
	constant float64
	interp   *Interpolation
}

// Constant returns a Scalar that ignores the offset.
func Constant(v float64) Scalar {
	return Scalar{constant: v}
}

// Interpolated returns a Scalar driven by the offset. The control points
// are copied.
func Interpolated(in Interpolation) Scalar {
	in.Input = slices.Clone(in.Input)
	in.Output = slices.Clone(in.Output)
	return Scalar{interp: &in}
}

// IsConstant reports whether the value ignores the offset.
func (s Scalar) IsConstant() bool {
	return s.interp == nil
}

// Interpolation returns a copy of the underlying interpolation, if any.
func (s Scalar) Interpolation() (Interpolation, bool) {
	if s.interp == nil {
		return Interpolation{}, false
	}
	in := *s.interp
	in.Input = slices.Clone(in.Input)
	in.Output = slices.Clone(in.Output)
	return in, true
}

// At evaluates the parameter at offset.
func (s Scalar) At(offset float64) float64 {
	if s.interp == nil {
		return s.constant
	}
	return s.interp.At(offset)
}

// ColorScalar is the header background: absent, constant, blended over the
// offset, or switched as a step at a threshold.
type ColorScalar struct {
	set      bool
	constant Color
	blend    *ColorInterpolation
	step     *colorStep
}

type colorStep struct {
	threshold    float64
	below, above Color
}

// At evaluates the color at offset. ok is false when the layer has no
// background color.
func (c ColorScalar) At(offset float64) (col Color, ok bool) {
	switch {
	case !c.set:
		return Color{}, false
	case c.blend != nil:
		return c.blend.At(offset), true
	case c.step != nil:
		if offset > c.step.threshold {
			return c.step.above, true
		}
		return c.step.below, true
	}
	return c.constant, true
}

// Animation is the per-layer mapping from offset to visual parameters.
// It is built once per configuration.
type Animation struct {
	TranslateY Scalar
	Scale      Scalar
	Opacity    Scalar
	Background ColorScalar
}

// VisualParameters are the values to apply to a layer for one offset.
type VisualParameters struct {
	TranslateY float64
	Scale      float64
	Opacity    float64
	// BackgroundColor is only meaningful when HasBackgroundColor is set.
	BackgroundColor    Color
	HasBackgroundColor bool
}

// At evaluates every parameter at offset. A NaN offset is treated as 0.
func (a Animation) At(offset float64) VisualParameters {
	if math.IsNaN(offset) {
		offset = 0
	}
	p := VisualParameters{
		TranslateY: a.TranslateY.At(offset),
		Scale:      a.Scale.At(offset),
		Opacity:    a.Opacity.At(offset),
	}
	p.BackgroundColor, p.HasBackgroundColor = a.Background.At(offset)
	return p
}

// Engine maps scroll offsets to visual parameters for the three layers.
// It holds no state besides the animations derived from its Config, so it
// is safe for concurrent use.
type Engine struct {
	cfg        Config
	animations [3]Animation
}

// NewEngine builds the layer animations for cfg. cfg is normalized first.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.Normalize()
	return &Engine{
		cfg: cfg,
		animations: [3]Animation{
			LayerBackground: backgroundAnimation(cfg),
			LayerForeground: foregroundAnimation(cfg),
			LayerHeader:     headerAnimation(cfg),
		},
	}
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Animation returns the animation of a layer, for callers that hand
// interpolations to their own animation backend.
func (e *Engine) Animation(kind LayerKind) Animation {
	if int(kind) >= len(e.animations) {
		return neutralAnimation()
	}
	return e.animations[kind]
}

// Compute returns the visual parameters of a layer at offset.
func (e *Engine) Compute(kind LayerKind, offset float64) VisualParameters {
	return e.Animation(kind).At(offset)
}

// ComputeLayerParameters evaluates a single layer without keeping an Engine.
func ComputeLayerParameters(kind LayerKind, offset float64, cfg Config) VisualParameters {
	cfg = cfg.Normalize()
	switch kind {
	case LayerBackground:
		return backgroundAnimation(cfg).At(offset)
	case LayerForeground:
		return foregroundAnimation(cfg).At(offset)
	case LayerHeader:
		return headerAnimation(cfg).At(offset)
	}
	return neutralAnimation().At(offset)
}

func neutralAnimation() Animation {
	return Animation{
		TranslateY: Constant(0),
		Scale:      Constant(1),
		Opacity:    Constant(1),
	}
}

// parallaxTranslate moves a layer height/speed while the content moves height.
// Overscroll is clamped, scrolling past the region keeps the same slope.
func parallaxTranslate(height, speed, idle float64) Scalar {
	if height == 0 {
		return Constant(idle)
	}
	if speed == 0 {
		return Constant(0)
	}
	return Interpolated(Linear(0, height, 0, -(height / speed), Clamp, Extend))
}

func fade(enabled bool, height float64) Scalar {
	if !enabled || height == 0 {
		return Constant(1)
	}
	return Interpolated(Linear(0, height, 1, 0, Clamp, Clamp))
}

func backgroundAnimation(cfg Config) Animation {
	h := cfg.ParallaxHeight
	a := neutralAnimation()
	a.TranslateY = parallaxTranslate(h, cfg.Background.ScrollSpeed, 0)
	a.Opacity = fade(cfg.Background.FadeOut, h)
	if cfg.Background.Scalable && h != 0 {
		// Pulling down by a full region height triples the size.
		a.Scale = Interpolated(Linear(-h, 0, 3, 1, Extend, Clamp))
	}
	return a
}

// foregroundIdleTranslate is the translation of a foreground without a
// parallax region. It is 1, not 0, and callers may rely on it.
const foregroundIdleTranslate = 1

func foregroundAnimation(cfg Config) Animation {
	h := cfg.ParallaxHeight
	a := neutralAnimation()
	a.TranslateY = parallaxTranslate(h, cfg.Foreground.ScrollSpeed, foregroundIdleTranslate)
	a.Opacity = fade(cfg.Foreground.FadeOut, h)
	return a
}

func headerAnimation(cfg Config) Animation {
	a := neutralAnimation()
	ph, hh := cfg.ParallaxHeight, cfg.Header.Height
	span := cfg.HeaderSpan()

	switch cfg.Header.Mode {
	case HeaderFloating:
		switch {
		case ph == 0:
			// No region to scroll through; the header stays put.
		case ph > hh:
			// Hold still while the region above scrolls, then slide off.
			a.TranslateY = Interpolated(Interpolation{
				Input:  []float64{0, span, ph},
				Output: []float64{0, 0, -hh},
				Left:   Clamp,
				Right:  Clamp,
			})
		default:
			a.TranslateY = Interpolated(Linear(0, ph, 0, -hh, Clamp, Clamp))
		}
	case HeaderFixedAtOffset:
		a.TranslateY = Interpolated(Linear(0, span, 0, -cfg.Header.FixedTransformY, Clamp, Clamp))
	}

	bg, fixed := cfg.Header.BackgroundColor, cfg.Header.FixedBackgroundColor
	if bg.IsDefault() {
		return a
	}
	switch {
	case cfg.ColorInterpolation:
		a.Background = ColorScalar{set: true, blend: &ColorInterpolation{
			Input:  [2]float64{0, span},
			Output: [2]Color{bg, fixed},
		}}
	case cfg.Header.Mode.Fixed():
		a.Background = ColorScalar{set: true, step: &colorStep{
			threshold: cfg.FixedThreshold(),
			below:     bg,
			above:     fixed,
		}}
	default:
		a.Background = ColorScalar{set: true, constant: bg}
	}
	return a
}
