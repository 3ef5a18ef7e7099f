package main

import (
	"fmt"
	"strconv"

	parallax "github.com/grindlemire/go-parallax"
)

// demoOptions holds the parsed command line.
type demoOptions struct {
	fixed     bool
	transform float64
	parallax  float64 // 0 means half the screen
	header    float64
	speed     float64
	fade      bool
	noScale   bool
	stepColor bool
	children  bool
	flat      bool
	rows      int
	debugPath string
	help      bool
}

func defaultOptions() demoOptions {
	return demoOptions{
		header: 3,
		speed:  parallax.DefaultScrollSpeed,
		rows:   60,
	}
}

// parseArgs parses flags by hand the same way for every option: a bare flag
// is a switch, a flag with a value takes the next argument.
func parseArgs(args []string) (demoOptions, error) {
	opts := defaultOptions()

	for i := 0; i < len(args); i++ {
		arg := args[i]

		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", arg)
			}
			i++
			return args[i], nil
		}
		number := func() (float64, error) {
			v, err := value()
			if err != nil {
				return 0, err
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", arg, err)
			}
			return f, nil
		}

		var err error
		switch arg {
		case "-h", "--help", "help":
			opts.help = true
		case "-fixed", "--fixed":
			opts.fixed = true
		case "-fade", "--fade":
			opts.fade = true
		case "-no-scale", "--no-scale":
			opts.noScale = true
		case "-step-color", "--step-color":
			opts.stepColor = true
		case "-children", "--children":
			opts.children = true
		case "-flat", "--flat":
			opts.flat = true
		case "-transform", "--transform":
			opts.transform, err = number()
			opts.fixed = true
		case "-parallax", "--parallax":
			opts.parallax, err = number()
		case "-header", "--header":
			opts.header, err = number()
		case "-speed", "--speed":
			opts.speed, err = number()
		case "-rows", "--rows":
			var n float64
			n, err = number()
			if err == nil && (n < 0 || n != float64(int(n))) {
				err = fmt.Errorf("%s must be a non-negative integer", arg)
			}
			opts.rows = int(n)
		case "-debug", "--debug":
			opts.debugPath, err = value()
		default:
			err = fmt.Errorf("unknown option %q", arg)
		}
		if err != nil {
			return demoOptions{}, err
		}
	}
	return opts, nil
}

// config builds the view configuration for a screen of w x h cells.
func (o demoOptions) config(w, h int) parallax.Config {
	ph := o.parallax
	if ph == 0 {
		ph = float64(h / 2)
	}

	cfg := []parallax.ConfigOption{
		parallax.WithParallaxHeight(ph),
		parallax.WithBackground(),
		parallax.WithBackgroundScrollSpeed(o.speed),
		parallax.WithForeground(),
		parallax.WithForegroundScrollSpeed(o.speed),
		parallax.WithHeader(o.header),
		parallax.WithHeaderColors(headerColor, headerFixedColor),
	}
	if o.fixed {
		cfg = append(cfg, parallax.WithFixedHeader(o.transform))
	}
	if o.fade {
		cfg = append(cfg, parallax.WithBackgroundFadeOut(), parallax.WithForegroundFadeOut())
	}
	if o.noScale {
		cfg = append(cfg, parallax.WithoutBackgroundScale())
	}
	if o.stepColor {
		cfg = append(cfg, parallax.WithoutColorInterpolation())
	}
	return parallax.NewConfig(float64(w), float64(h), cfg...)
}
