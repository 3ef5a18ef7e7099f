package parallax

import "math"

// LayerKind identifies one of the three animated layers.
type LayerKind uint8

const (
	// LayerBackground is drawn behind the content and may scale on overscroll.
	LayerBackground LayerKind = iota
	// LayerForeground is drawn above the background inside the parallax region.
	LayerForeground
	// LayerHeader is the bar on top of everything.
	LayerHeader
)

// String returns the layer name.
func (k LayerKind) String() string {
	switch k {
	case LayerBackground:
		return "background"
	case LayerForeground:
		return "foreground"
	case LayerHeader:
		return "header"
	}
	return "unknown"
}

// HeaderMode selects how the header translates and which threshold edges it reports.
type HeaderMode uint8

const (
	// HeaderFloating scrolls the header away with the parallax region and
	// reports visibility changes.
	HeaderFloating HeaderMode = iota
	// HeaderFixedAtTop keeps the header pinned at the top and reports
	// fixed-state changes.
	HeaderFixedAtTop
	// HeaderFixedAtOffset shifts the header up by FixedTransformY while
	// approaching the fixed state and reports fixed-state changes.
	HeaderFixedAtOffset
)

// String returns the mode name.
func (m HeaderMode) String() string {
	switch m {
	case HeaderFloating:
		return "floating"
	case HeaderFixedAtTop:
		return "fixed-at-top"
	case HeaderFixedAtOffset:
		return "fixed-at-offset"
	}
	return "unknown"
}

// Fixed reports whether the header can lock itself to the top.
func (m HeaderMode) Fixed() bool {
	return m == HeaderFixedAtTop || m == HeaderFixedAtOffset
}

// Defaults.
const (
	// DefaultHeaderHeight is the header height used when WithHeader gets 0.
	DefaultHeaderHeight = 45
	// DefaultScrollSpeed is the background and foreground speed divisor.
	DefaultScrollSpeed = 5
	// ParallaxRatio derives the default parallax height from the viewport width.
	ParallaxRatio = 9.0 / 16.0
)

// Default header colors.
var (
	DefaultHeaderBackgroundColor      = Transparent
	DefaultHeaderFixedBackgroundColor = RGBAColor(0, 0, 0, 255)
)

// LayerConfig configures the background or foreground layer.
type LayerConfig struct {
	// Enabled is true when the layer has something to draw.
	Enabled bool
	// ScrollSpeed divides the scroll distance: the layer moves
	// ParallaxHeight/ScrollSpeed while the content moves ParallaxHeight.
	ScrollSpeed float64
	// FadeOut fades the layer from opaque to transparent over ParallaxHeight.
	FadeOut bool
	// Scalable grows the layer on overscroll. Background only.
	Scalable bool
}

// HeaderConfig configures the header layer.
type HeaderConfig struct {
	Enabled bool
	Height  float64
	Mode    HeaderMode
	// FixedTransformY is the extra translation used while approaching the
	// fixed state; it also pushes the fixed threshold further down.
	FixedTransformY float64
	// BackgroundColor blends into FixedBackgroundColor as the header
	// approaches its fixed position. DefaultColor disables header backgrounds.
	BackgroundColor      Color
	FixedBackgroundColor Color
}

// Config is the static configuration of a parallax scroll view. It is
// supplied at construction and replaced wholesale on reconfiguration.
type Config struct {
	// Width and Height describe the viewport.
	Width  float64
	Height float64
	// ParallaxHeight is the height of the region above the content.
	ParallaxHeight float64

	Background LayerConfig
	Foreground LayerConfig
	Header     HeaderConfig

	// ColorInterpolation is true when style updates run in step with the
	// offset on every frame, so the header background can be blended
	// continuously. When false the fixed color is applied as a step once
	// the header becomes fixed.
	ColorInterpolation bool
}

// ConfigOption is a functional option for NewConfig.
type ConfigOption func(*Config)

// NewConfig returns a normalized configuration for a viewport of the given
// size. Without options only the content is drawn; layers are enabled with
// WithBackground, WithForeground and WithHeader.
func NewConfig(width, height float64, opts ...ConfigOption) Config {
	cfg := Config{
		Width:          width,
		Height:         height,
		ParallaxHeight: width * ParallaxRatio,
		Background: LayerConfig{
			ScrollSpeed: DefaultScrollSpeed,
			Scalable:    true,
		},
		Foreground: LayerConfig{
			ScrollSpeed: DefaultScrollSpeed,
		},
		Header: HeaderConfig{
			Height:               DefaultHeaderHeight,
			BackgroundColor:      DefaultHeaderBackgroundColor,
			FixedBackgroundColor: DefaultHeaderFixedBackgroundColor,
		},
		ColorInterpolation: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Normalize()
}

// WithParallaxHeight sets the height of the parallax region.
func WithParallaxHeight(h float64) ConfigOption {
	return func(c *Config) {
		c.ParallaxHeight = h
	}
}

// WithBackground enables the background layer.
func WithBackground() ConfigOption {
	return func(c *Config) {
		c.Background.Enabled = true
	}
}

// WithBackgroundScrollSpeed sets the background speed divisor.
func WithBackgroundScrollSpeed(divisor float64) ConfigOption {
	return func(c *Config) {
		c.Background.ScrollSpeed = divisor
	}
}

// WithBackgroundFadeOut fades the background out over the parallax height.
func WithBackgroundFadeOut() ConfigOption {
	return func(c *Config) {
		c.Background.FadeOut = true
	}
}

// WithoutBackgroundScale disables the overscroll zoom of the background.
func WithoutBackgroundScale() ConfigOption {
	return func(c *Config) {
		c.Background.Scalable = false
	}
}

// WithForeground enables the foreground layer.
func WithForeground() ConfigOption {
	return func(c *Config) {
		c.Foreground.Enabled = true
	}
}

// WithForegroundScrollSpeed sets the foreground speed divisor.
func WithForegroundScrollSpeed(divisor float64) ConfigOption {
	return func(c *Config) {
		c.Foreground.ScrollSpeed = divisor
	}
}

// WithForegroundFadeOut fades the foreground out over the parallax height.
func WithForegroundFadeOut() ConfigOption {
	return func(c *Config) {
		c.Foreground.FadeOut = true
	}
}

// WithHeader enables a floating header of the given height. A height of 0
// is a zero-height header; pass DefaultHeaderHeight for the default.
func WithHeader(height float64) ConfigOption {
	return func(c *Config) {
		c.Header.Enabled = true
		c.Header.Height = height
	}
}

// WithFixedHeader lets the header lock to the top once the content reaches
// it. A non-zero transformY shifts the header up by that amount on the way.
// It does not enable the header; combine it with WithHeader.
func WithFixedHeader(transformY float64) ConfigOption {
	return func(c *Config) {
		c.Header.Mode = HeaderFixedAtOffset
		c.Header.FixedTransformY = transformY
	}
}

// WithHeaderColors sets the resting and fixed header background colors.
func WithHeaderColors(background, fixed Color) ConfigOption {
	return func(c *Config) {
		c.Header.BackgroundColor = background
		c.Header.FixedBackgroundColor = fixed
	}
}

// WithoutColorInterpolation marks style updates as running apart from the
// offset, so the header background switches color as a step.
func WithoutColorInterpolation() ConfigOption {
	return func(c *Config) {
		c.ColorInterpolation = false
	}
}

// Normalize resolves degenerate values once so per-frame code never has to.
// Lengths that are NaN, infinite or negative become 0. Scroll speeds that
// are not positive and finite become 0, which disables translation.
// The header mode is made consistent with FixedTransformY.
func (c Config) Normalize() Config {
	c.Width = nonNegative(c.Width)
	c.Height = nonNegative(c.Height)
	c.ParallaxHeight = nonNegative(c.ParallaxHeight)
	c.Header.Height = nonNegative(c.Header.Height)
	c.Background.ScrollSpeed = speed(c.Background.ScrollSpeed)
	c.Foreground.ScrollSpeed = speed(c.Foreground.ScrollSpeed)

	if math.IsNaN(c.Header.FixedTransformY) || math.IsInf(c.Header.FixedTransformY, 0) {
		c.Header.FixedTransformY = 0
	}
	if c.Header.Mode.Fixed() {
		c.Header.Mode = HeaderFixedAtTop
		if c.Header.FixedTransformY != 0 {
			c.Header.Mode = HeaderFixedAtOffset
		}
	} else {
		c.Header.Mode = HeaderFloating
	}
	return c
}

// FixedThreshold is the offset past which a fixed-capable header is fixed.
func (c Config) FixedThreshold() float64 {
	return c.ParallaxHeight - c.Header.Height + c.Header.FixedTransformY
}

// HeaderSpan is the distance over which the header approaches its fixed
// position: the part of the parallax region not covered by the header.
// It is never negative.
func (c Config) HeaderSpan() float64 {
	return math.Max(c.ParallaxHeight-c.Header.Height, 0)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func speed(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
