package parallax

import (
	"math"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig(160, 40)

	if cfg.ParallaxHeight != 90 {
		t.Errorf("ParallaxHeight = %v, want 90", cfg.ParallaxHeight)
	}
	if cfg.Header.Height != DefaultHeaderHeight {
		t.Errorf("Header.Height = %v, want %v", cfg.Header.Height, DefaultHeaderHeight)
	}
	if cfg.Background.ScrollSpeed != DefaultScrollSpeed || cfg.Foreground.ScrollSpeed != DefaultScrollSpeed {
		t.Errorf("ScrollSpeed = %v/%v, want %v", cfg.Background.ScrollSpeed, cfg.Foreground.ScrollSpeed, DefaultScrollSpeed)
	}
	if !cfg.Background.Scalable {
		t.Error("Background.Scalable = false, want true")
	}
	if cfg.Background.Enabled || cfg.Foreground.Enabled || cfg.Header.Enabled {
		t.Error("layers enabled without options")
	}
	if cfg.Header.Mode != HeaderFloating {
		t.Errorf("Header.Mode = %v, want floating", cfg.Header.Mode)
	}
	if !cfg.Header.BackgroundColor.Equal(Transparent) {
		t.Errorf("Header.BackgroundColor = %v, want transparent", cfg.Header.BackgroundColor)
	}
	if !cfg.Header.FixedBackgroundColor.Equal(RGBAColor(0, 0, 0, 255)) {
		t.Errorf("Header.FixedBackgroundColor = %v, want opaque black", cfg.Header.FixedBackgroundColor)
	}
	if !cfg.ColorInterpolation {
		t.Error("ColorInterpolation = false, want true")
	}
}

func TestNewConfig_Options(t *testing.T) {
	red, blue := RGBColor(255, 0, 0), RGBColor(0, 0, 255)
	cfg := NewConfig(80, 24,
		WithParallaxHeight(12),
		WithBackground(),
		WithBackgroundScrollSpeed(2),
		WithBackgroundFadeOut(),
		WithoutBackgroundScale(),
		WithForeground(),
		WithForegroundScrollSpeed(3),
		WithForegroundFadeOut(),
		WithHeader(0),
		WithFixedHeader(2),
		WithHeaderColors(red, blue),
		WithoutColorInterpolation(),
	)

	want := Config{
		Width:          80,
		Height:         24,
		ParallaxHeight: 12,
		Background:     LayerConfig{Enabled: true, ScrollSpeed: 2, FadeOut: true},
		Foreground:     LayerConfig{Enabled: true, ScrollSpeed: 3, FadeOut: true},
		Header: HeaderConfig{
			Enabled:              true,
			Height:               0,
			Mode:                 HeaderFixedAtOffset,
			FixedTransformY:      2,
			BackgroundColor:      red,
			FixedBackgroundColor: blue,
		},
	}
	if cfg != want {
		t.Errorf("NewConfig() = %+v, want %+v", cfg, want)
	}
}

func TestConfig_Normalize(t *testing.T) {
	type tc struct {
		in    Config
		check func(t *testing.T, c Config)
	}

	tests := map[string]tc{
		"negative heights become zero": {
			in: Config{ParallaxHeight: -10, Header: HeaderConfig{Height: -3}},
			check: func(t *testing.T, c Config) {
				if c.ParallaxHeight != 0 || c.Header.Height != 0 {
					t.Errorf("heights = %v/%v, want 0/0", c.ParallaxHeight, c.Header.Height)
				}
			},
		},
		"NaN and Inf heights become zero": {
			in: Config{ParallaxHeight: math.NaN(), Width: math.Inf(1)},
			check: func(t *testing.T, c Config) {
				if c.ParallaxHeight != 0 || c.Width != 0 {
					t.Errorf("ParallaxHeight/Width = %v/%v, want 0/0", c.ParallaxHeight, c.Width)
				}
			},
		},
		"non-positive speeds become zero": {
			in: Config{Background: LayerConfig{ScrollSpeed: -2}, Foreground: LayerConfig{ScrollSpeed: math.Inf(1)}},
			check: func(t *testing.T, c Config) {
				if c.Background.ScrollSpeed != 0 || c.Foreground.ScrollSpeed != 0 {
					t.Errorf("speeds = %v/%v, want 0/0", c.Background.ScrollSpeed, c.Foreground.ScrollSpeed)
				}
			},
		},
		"fixed with zero transform pins to top": {
			in: Config{Header: HeaderConfig{Mode: HeaderFixedAtOffset}},
			check: func(t *testing.T, c Config) {
				if c.Header.Mode != HeaderFixedAtTop {
					t.Errorf("Mode = %v, want fixed-at-top", c.Header.Mode)
				}
			},
		},
		"fixed at top with transform shifts": {
			in: Config{Header: HeaderConfig{Mode: HeaderFixedAtTop, FixedTransformY: 4}},
			check: func(t *testing.T, c Config) {
				if c.Header.Mode != HeaderFixedAtOffset {
					t.Errorf("Mode = %v, want fixed-at-offset", c.Header.Mode)
				}
			},
		},
		"unknown mode floats": {
			in: Config{Header: HeaderConfig{Mode: HeaderMode(42)}},
			check: func(t *testing.T, c Config) {
				if c.Header.Mode != HeaderFloating {
					t.Errorf("Mode = %v, want floating", c.Header.Mode)
				}
			},
		},
		"NaN transform becomes zero": {
			in: Config{Header: HeaderConfig{Mode: HeaderFixedAtOffset, FixedTransformY: math.NaN()}},
			check: func(t *testing.T, c Config) {
				if c.Header.FixedTransformY != 0 || c.Header.Mode != HeaderFixedAtTop {
					t.Errorf("transform/mode = %v/%v, want 0/fixed-at-top", c.Header.FixedTransformY, c.Header.Mode)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.check(t, tt.in.Normalize())
		})
	}
}

func TestConfig_Thresholds(t *testing.T) {
	type tc struct {
		cfg      Config
		wantThr  float64
		wantSpan float64
	}

	tests := map[string]tc{
		"header shorter than region": {
			cfg:      NewConfig(100, 100, WithParallaxHeight(200), WithHeader(50), WithFixedHeader(0)),
			wantThr:  150,
			wantSpan: 150,
		},
		"transform pushes threshold": {
			cfg:      NewConfig(100, 100, WithParallaxHeight(200), WithHeader(50), WithFixedHeader(20)),
			wantThr:  170,
			wantSpan: 150,
		},
		"header taller than region": {
			cfg:      NewConfig(100, 100, WithParallaxHeight(30), WithHeader(50), WithFixedHeader(0)),
			wantThr:  -20,
			wantSpan: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cfg.FixedThreshold(); got != tt.wantThr {
				t.Errorf("FixedThreshold() = %v, want %v", got, tt.wantThr)
			}
			if got := tt.cfg.HeaderSpan(); got != tt.wantSpan {
				t.Errorf("HeaderSpan() = %v, want %v", got, tt.wantSpan)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if LayerHeader.String() != "header" || LayerKind(9).String() != "unknown" {
		t.Errorf("LayerKind.String() = %q/%q", LayerHeader.String(), LayerKind(9).String())
	}
	if HeaderFixedAtOffset.String() != "fixed-at-offset" || HeaderMode(9).String() != "unknown" {
		t.Errorf("HeaderMode.String() = %q/%q", HeaderFixedAtOffset.String(), HeaderMode(9).String())
	}
}

func TestWithHeader(t *testing.T) {
	type tc struct {
		opts        []ConfigOption
		wantEnabled bool
		wantHeight  float64
		wantMode    HeaderMode
	}

	tests := map[string]tc{
		"default height without option": {
			opts:       nil,
			wantHeight: DefaultHeaderHeight,
			wantMode:   HeaderFloating,
		},
		"explicit height": {
			opts:        []ConfigOption{WithHeader(12)},
			wantEnabled: true,
			wantHeight:  12,
			wantMode:    HeaderFloating,
		},
		"zero height is kept": {
			opts:        []ConfigOption{WithHeader(0)},
			wantEnabled: true,
			wantHeight:  0,
			wantMode:    HeaderFloating,
		},
		"default height constant": {
			opts:        []ConfigOption{WithHeader(DefaultHeaderHeight)},
			wantEnabled: true,
			wantHeight:  DefaultHeaderHeight,
			wantMode:    HeaderFloating,
		},
		"fixed header alone stays disabled": {
			opts:       []ConfigOption{WithFixedHeader(3)},
			wantHeight: DefaultHeaderHeight,
			wantMode:   HeaderFixedAtOffset,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig(100, 100, tt.opts...)
			if cfg.Header.Enabled != tt.wantEnabled {
				t.Errorf("Header.Enabled = %v, want %v", cfg.Header.Enabled, tt.wantEnabled)
			}
			if cfg.Header.Height != tt.wantHeight {
				t.Errorf("Header.Height = %v, want %v", cfg.Header.Height, tt.wantHeight)
			}
			if cfg.Header.Mode != tt.wantMode {
				t.Errorf("Header.Mode = %v, want %v", cfg.Header.Mode, tt.wantMode)
			}
		})
	}
}
