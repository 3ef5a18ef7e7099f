package parallax

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB) with an alpha channel.
	ColorRGB
)

// Color is a layer color. Default, ANSI 256 and true color are supported;
// every color carries an alpha channel so header backgrounds can fade in
// from fully transparent.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
	a       uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns an opaque Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index, a: 255}
}

// RGBColor returns an opaque true color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b, a: 255}
}

// RGBAColor returns a true color with the given alpha (0 transparent, 255 opaque).
func RGBAColor(r, g, b, a uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b, a: a}
}

// Transparent is fully transparent black, the resting header background.
var Transparent = RGBAColor(0, 0, 0, 0)

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		// 0xF -> 0xFF
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

// ParseColor parses the color notations accepted in configuration:
// "#RGB", "#RRGGBB", "rgb(r, g, b)", "rgba(r, g, b, a)" with a in [0, 1],
// and the names "transparent", "black", "white" and "default".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "default":
		return DefaultColor(), nil
	case "transparent":
		return Transparent, nil
	case "black":
		return RGBColor(0, 0, 0), nil
	case "white":
		return RGBColor(255, 255, 255), nil
	}

	if strings.HasPrefix(s, "#") {
		return HexColor(s)
	}

	var args string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args, wantAlpha = s[len("rgba("):len(s)-1], true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return Color{}, fmt.Errorf("unrecognized color %q", s)
	}

	parts := strings.Split(args, ",")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return Color{}, fmt.Errorf("color %q: wrong number of components", s)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color %q: component %d out of range", s, v)
		}
		rgb[i] = uint8(v)
	}

	alpha := uint8(255)
	if wantAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		if f < 0 || f > 1 {
			return Color{}, fmt.Errorf("color %q: alpha %v out of range", s, f)
		}
		alpha = uint8(math.Round(f * 255))
	}
	return RGBAColor(rgb[0], rgb[1], rgb[2], alpha), nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level defaults and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Alpha returns the alpha channel. The default color reports 0.
func (c Color) Alpha() uint8 {
	if c.typ == ColorDefault {
		return 0
	}
	return c.a
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.r == other.r && c.a == other.a
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b && c.a == other.a
	}
	return false
}

// String formats the color the way ParseColor reads it back.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b,
			strconv.FormatFloat(float64(c.a)/255, 'f', -1, 64))
	}
	return "default"
}

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical terminal color values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; the default color is (0, 0, 0).
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 16 + 36*r + 6*g + b, r,g,b in 0-5
			idx -= 16
			level := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return level(idx / 36), level((idx % 36) / 6), level(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend mixes c towards other by t. Channels are mixed in sRGB space and
// alpha linearly. t is clamped to [0, 1]; the endpoints return c or other
// unchanged, anything in between is an RGB color.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case math.IsNaN(t) || t <= 0:
		return c
	case t >= 1:
		return other
	}
	mixed := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	a := float64(c.Alpha()) + (float64(other.Alpha())-float64(c.Alpha()))*t
	return RGBAColor(r, g, b, uint8(math.Round(a)))
}

// Over composites c on top of an opaque backdrop and returns the opaque result.
func (c Color) Over(backdrop Color) Color {
	if c.typ == ColorDefault {
		return backdrop
	}
	if c.a == 255 {
		return c
	}
	under := backdrop
	under.a = 255
	top := c
	top.a = 255
	return under.Blend(top, float64(c.a)/255)
}

// Luminance returns the relative luminance of the color (0.0-1.0).
// Uses the W3C formula for calculating relative luminance.
func (c Color) Luminance() float64 {
	if c.typ == ColorDefault {
		// unknown; assume dark background
		return 0.0
	}
	r, g, b := c.ToRGBValues()

	linearize := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// IsLight returns true if the color is perceptually light.
func (c Color) IsLight() bool {
	if c.typ == ColorDefault {
		return false
	}
	return c.Luminance() > 0.2
}
