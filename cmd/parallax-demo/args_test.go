package main

import (
	"testing"

	parallax "github.com/grindlemire/go-parallax"
)

func TestParseArgs(t *testing.T) {
	type tc struct {
		args    []string
		want    func(demoOptions) demoOptions
		wantErr bool
	}

	tests := map[string]tc{
		"no args": {
			args: nil,
			want: func(o demoOptions) demoOptions { return o },
		},
		"switches": {
			args: []string{"-fixed", "--fade", "-no-scale", "-step-color", "-children", "-flat"},
			want: func(o demoOptions) demoOptions {
				o.fixed, o.fade, o.noScale, o.stepColor = true, true, true, true
				o.children, o.flat = true, true
				return o
			},
		},
		"transform implies fixed": {
			args: []string{"-transform", "2"},
			want: func(o demoOptions) demoOptions {
				o.fixed, o.transform = true, 2
				return o
			},
		},
		"numbers": {
			args: []string{"-parallax", "12", "--header", "4", "-speed", "2.5", "-rows", "10"},
			want: func(o demoOptions) demoOptions {
				o.parallax, o.header, o.speed, o.rows = 12, 4, 2.5, 10
				return o
			},
		},
		"debug path": {
			args: []string{"-debug", "/tmp/parallax.log"},
			want: func(o demoOptions) demoOptions {
				o.debugPath = "/tmp/parallax.log"
				return o
			},
		},
		"help": {
			args: []string{"--help"},
			want: func(o demoOptions) demoOptions {
				o.help = true
				return o
			},
		},
		"missing value": {
			args:    []string{"-speed"},
			wantErr: true,
		},
		"bad number": {
			args:    []string{"-header", "tall"},
			wantErr: true,
		},
		"fractional rows": {
			args:    []string{"-rows", "1.5"},
			wantErr: true,
		},
		"negative rows": {
			args:    []string{"-rows", "-1"},
			wantErr: true,
		},
		"unknown option": {
			args:    []string{"-wobble"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseArgs(%q) expected error, got %+v", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%q) unexpected error: %v", tt.args, err)
			}
			want := tt.want(defaultOptions())
			if got != want {
				t.Errorf("parseArgs(%q) = %+v, want %+v", tt.args, got, want)
			}
		})
	}
}

func TestDemoOptions_Config(t *testing.T) {
	type tc struct {
		opts           demoOptions
		wantParallax   float64
		wantMode       parallax.HeaderMode
		wantColorBlend bool
		wantScalable   bool
		wantFade       bool
	}

	tests := map[string]tc{
		"defaults use half the screen": {
			opts:           defaultOptions(),
			wantParallax:   12,
			wantMode:       parallax.HeaderFloating,
			wantColorBlend: true,
			wantScalable:   true,
		},
		"explicit parallax height": {
			opts: func() demoOptions {
				o := defaultOptions()
				o.parallax = 8
				return o
			}(),
			wantParallax:   8,
			wantMode:       parallax.HeaderFloating,
			wantColorBlend: true,
			wantScalable:   true,
		},
		"fixed with transform": {
			opts: func() demoOptions {
				o := defaultOptions()
				o.fixed, o.transform = true, 2
				return o
			}(),
			wantParallax:   12,
			wantMode:       parallax.HeaderFixedAtOffset,
			wantColorBlend: true,
			wantScalable:   true,
		},
		"fixed at top": {
			opts: func() demoOptions {
				o := defaultOptions()
				o.fixed = true
				return o
			}(),
			wantParallax:   12,
			wantMode:       parallax.HeaderFixedAtTop,
			wantColorBlend: true,
			wantScalable:   true,
		},
		"fade no scale step color": {
			opts: func() demoOptions {
				o := defaultOptions()
				o.fade, o.noScale, o.stepColor = true, true, true
				return o
			}(),
			wantParallax: 12,
			wantMode:     parallax.HeaderFloating,
			wantFade:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := tt.opts.config(80, 24)

			if cfg.Width != 80 || cfg.Height != 24 {
				t.Errorf("size = %vx%v, want 80x24", cfg.Width, cfg.Height)
			}
			if cfg.ParallaxHeight != tt.wantParallax {
				t.Errorf("ParallaxHeight = %v, want %v", cfg.ParallaxHeight, tt.wantParallax)
			}
			if !cfg.Background.Enabled || !cfg.Foreground.Enabled || !cfg.Header.Enabled {
				t.Errorf("all layers should be enabled, got %+v", cfg)
			}
			if cfg.Header.Height != 3 {
				t.Errorf("Header.Height = %v, want 3", cfg.Header.Height)
			}
			if cfg.Header.Mode != tt.wantMode {
				t.Errorf("Header.Mode = %v, want %v", cfg.Header.Mode, tt.wantMode)
			}
			if cfg.ColorInterpolation != tt.wantColorBlend {
				t.Errorf("ColorInterpolation = %v, want %v", cfg.ColorInterpolation, tt.wantColorBlend)
			}
			if cfg.Background.Scalable != tt.wantScalable {
				t.Errorf("Background.Scalable = %v, want %v", cfg.Background.Scalable, tt.wantScalable)
			}
			if cfg.Background.FadeOut != tt.wantFade || cfg.Foreground.FadeOut != tt.wantFade {
				t.Errorf("FadeOut = %v/%v, want %v", cfg.Background.FadeOut, cfg.Foreground.FadeOut, tt.wantFade)
			}
			if !cfg.Header.FixedBackgroundColor.Equal(headerFixedColor) {
				t.Errorf("FixedBackgroundColor = %v, want %v", cfg.Header.FixedBackgroundColor, headerFixedColor)
			}
		})
	}
}
