package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	parallax "github.com/grindlemire/go-parallax"
)

var (
	backdrop         = parallax.RGBColor(14, 16, 22)
	contentColor     = parallax.RGBColor(30, 33, 42)
	contentTextColor = parallax.RGBColor(210, 210, 215)
	titleColor       = parallax.RGBColor(255, 226, 150)
	skyTop           = parallax.RGBColor(20, 30, 70)
	skyBottom        = parallax.RGBColor(230, 120, 70)
	ridgeColor       = parallax.RGBColor(35, 28, 45)
	starColor        = parallax.RGBColor(240, 240, 255)
	statusColor      = parallax.RGBColor(120, 125, 140)

	headerColor      = parallax.Transparent
	headerFixedColor = parallax.RGBColor(40, 90, 160)
)

const headerLabel = "go-parallax"

// painter draws a Scroll's layers and content rows onto a tcell screen.
type painter struct {
	screen   tcell.Screen
	mode     parallax.ContentMode
	sections []parallax.Section[string]
	title    string
}

// contentLine is one laid out line of content. The placeholder is a line
// without text.
type contentLine struct {
	text    string
	height  float64
	heading bool
}

// newPainter lays out sections as list data, with the placeholder injected
// into the data, or as child views, with the placeholder as a leading child.
// A single section without a key is a flat list.
func newPainter(screen tcell.Screen, mode parallax.ContentMode, sections []parallax.Section[string], title string) *painter {
	if mode == parallax.ContentData {
		if len(sections) == 1 && sections[0].Key == "" {
			flat := sections[0]
			flat.Items = parallax.WithPlaceholder(flat.Items)
			sections = []parallax.Section[string]{flat}
		} else {
			sections = parallax.WithPlaceholderSection(sections)
		}
	}
	return &painter{screen: screen, mode: mode, sections: sections, title: title}
}

// Paint draws one frame. The caller shows it.
func (p *painter) Paint(view *parallax.Scroll, status string) {
	w, h := p.screen.Size()
	p.screen.Fill(' ', style(contentTextColor, backdrop))

	layers := view.Layers()
	plan := parallax.PlanContent(p.mode, hasLayer(layers, parallax.LayerForeground))

	var sticky *parallax.Layer
	contentDrawn := false
	for _, layer := range layers {
		layer := layer
		if layer.Kind == parallax.LayerForeground && plan.ForegroundInContent {
			sticky = &layer
			continue
		}
		if layer.Z > 0 && !contentDrawn {
			p.drawContent(view, plan, sticky, w, h)
			contentDrawn = true
		}
		switch layer.Kind {
		case parallax.LayerBackground:
			p.drawBackground(layer, w, h)
		case parallax.LayerForeground:
			p.drawForeground(layer, w, h)
		case parallax.LayerHeader:
			p.drawHeader(layer, w, h)
		}
	}
	if !contentDrawn {
		p.drawContent(view, plan, sticky, w, h)
	}

	p.drawStatus(status, w, h)
}

func hasLayer(layers []parallax.Layer, kind parallax.LayerKind) bool {
	for _, layer := range layers {
		if layer.Kind == kind {
			return true
		}
	}
	return false
}

// lines lays the sections out top to bottom.
func (p *painter) lines(placeholder float64) []contentLine {
	row := parallax.PlaceholderRows(
		func(it parallax.Item[string]) contentLine {
			return contentLine{text: it.Data, height: 1}
		},
		func() contentLine {
			return contentLine{height: placeholder}
		},
	)

	var out []contentLine
	for _, section := range p.sections {
		if section.Key != "" && !section.IsPlaceholder() {
			out = append(out, contentLine{text: section.Key, height: 1, heading: true})
		}
		for _, it := range section.Items {
			out = append(out, row(it))
		}
	}
	return out
}

// rowCount is the number of drawn content rows, placeholder excluded.
func (p *painter) rowCount() int {
	n := 0
	for _, line := range p.lines(0) {
		if line.text != "" {
			n++
		}
	}
	return n
}

func (p *painter) drawBackground(layer parallax.Layer, w, h int) {
	if layer.Height <= 0 || layer.Params.Opacity <= 0 {
		return
	}
	scale := layer.Params.Scale
	if scale <= 0 {
		scale = 1
	}
	// Scale about the layer's center, like a view transform.
	cy := layer.Params.TranslateY + layer.Height/2
	cx := layer.Width / 2

	for y := 0; y < h; y++ {
		sy := (float64(y)+0.5-cy)/scale + layer.Height/2
		if sy < 0 || sy >= layer.Height {
			continue
		}
		for x := 0; x < w; x++ {
			sx := (float64(x)+0.5-cx)/scale + cx
			if sx < 0 || sx >= layer.Width {
				continue
			}
			r, fg, bg := skyCell(int(sx), int(sy), int(layer.Width), int(math.Ceil(layer.Height)))
			fg = backdrop.Blend(fg, layer.Params.Opacity)
			bg = backdrop.Blend(bg, layer.Params.Opacity)
			p.screen.SetContent(x, y, r, nil, style(fg, bg))
		}
	}
}

// skyCell is the background picture: a dusk gradient, a few stars and a ridge.
func skyCell(x, y, w, h int) (rune, parallax.Color, parallax.Color) {
	t := 0.0
	if h > 1 {
		t = float64(y) / float64(h-1)
	}
	sky := skyTop.Blend(skyBottom, t)

	ridge := float64(h) * (0.7 + 0.15*math.Sin(float64(x)/7) + 0.08*math.Sin(float64(x)/2.3))
	if float64(y) >= ridge {
		return ' ', ridgeColor, ridgeColor
	}
	if t < 0.5 && (x*7+y*13+w)%29 == 0 {
		return '.', starColor, sky
	}
	return ' ', sky, sky
}

func (p *painter) drawContent(view *parallax.Scroll, plan parallax.ContentPlan, sticky *parallax.Layer, w, h int) {
	placeholder := view.PlaceholderHeight()
	top := -view.Offset()
	if plan.PlaceholderChild {
		top += placeholder
	}

	for _, line := range p.lines(placeholder) {
		y := int(math.Floor(top))
		top += line.height
		if line.text == "" || y < 0 {
			continue
		}
		if y >= h {
			break
		}
		st := style(contentTextColor, contentColor)
		for x := 0; x < w; x++ {
			p.screen.SetContent(x, y, ' ', nil, st)
		}
		if line.heading {
			p.text(1, y, w-1, line.text, style(titleColor, contentColor).Bold(true))
			continue
		}
		p.text(2, y, w-2, line.text, st)
	}

	// A foreground inside the content is its first child, stuck to the top.
	if sticky != nil {
		p.drawForeground(*sticky, w, h)
	}
}

func (p *painter) drawForeground(layer parallax.Layer, w, h int) {
	if layer.Params.Opacity <= 0 || layer.Height <= 0 {
		return
	}
	y := int(math.Round(layer.Height/2 + layer.Params.TranslateY))
	if y < 0 || y >= h {
		return
	}
	x := (w - len([]rune(p.title))) / 2
	for i, r := range []rune(p.title) {
		cx := x + i
		if cx < 0 || cx >= w {
			continue
		}
		under := p.background(cx, y)
		fg := under.Blend(titleColor, layer.Params.Opacity)
		p.screen.SetContent(cx, y, r, nil, style(fg, under).Bold(true))
	}
}

func (p *painter) drawHeader(layer parallax.Layer, w, h int) {
	top := int(math.Round(layer.Params.TranslateY))
	height := int(math.Round(layer.Height))

	for y := top; y < top+height; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := 0; x < w; x++ {
			bg := p.background(x, y)
			if layer.Params.HasBackgroundColor {
				bg = layer.Params.BackgroundColor.Over(bg)
			}
			r, _, _, _ := p.screen.GetContent(x, y)
			fg := contentTextColor
			if bg.IsLight() {
				fg = backdrop
			}
			p.screen.SetContent(x, y, r, nil, style(fg, bg))
		}
	}

	labelY := top + height/2
	if labelY < 0 || labelY >= h {
		return
	}
	bg := p.background(1, labelY)
	fg := parallax.RGBColor(255, 255, 255)
	if bg.IsLight() {
		fg = backdrop
	}
	p.text(1, labelY, w-1, headerLabel, style(fg, bg).Bold(true))
}

func (p *painter) drawStatus(status string, w, h int) {
	if h == 0 {
		return
	}
	st := style(statusColor, backdrop)
	for x := 0; x < w; x++ {
		p.screen.SetContent(x, h-1, ' ', nil, st)
	}
	p.text(0, h-1, w, status, st)
}

// text writes s from column x, clipped to width columns.
func (p *painter) text(x, y, width int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		if i >= width {
			return
		}
		p.screen.SetContent(x+i, y, r, nil, st)
	}
}

// background returns the background color already drawn at x, y.
func (p *painter) background(x, y int) parallax.Color {
	_, _, st, _ := p.screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return fromTcell(bg)
}

func style(fg, bg parallax.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
}

func toTcell(c parallax.Color) tcell.Color {
	switch c.Type() {
	case parallax.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case parallax.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func fromTcell(c tcell.Color) parallax.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return backdrop
	}
	return parallax.RGBColor(uint8(r), uint8(g), uint8(b))
}
