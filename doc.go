// Package parallax drives a scroll view with a parallax background, a
// parallax foreground and an optional header from a single scroll offset.
//
// Users import this single package for the complete public API:
// configuration, the per-layer interpolation engine, the header threshold
// machine, and the Scroll coordinator that ties them to a stream of
// scroll events.
//
//	cfg := parallax.NewConfig(80, 24,
//	    parallax.WithParallaxHeight(12),
//	    parallax.WithBackground(),
//	    parallax.WithHeader(3),
//	    parallax.WithFixedHeader(0),
//	)
//	view := parallax.New(cfg, parallax.OnHeaderFixedChanged(func(fixed bool) {
//	    // swap the header title
//	}))
//	view.HandleScroll(parallax.ScrollEvent{OffsetY: 10})
//	for _, layer := range view.Layers() {
//	    // apply layer.Params to the layer's view
//	}
package parallax
