package profile

import (
	"bytes"
	"fmt"
)

// SVGOption configures the SVG chart renderer.
type SVGOption func(*svgRenderer)

// WithSize overrides the default 800×400 chart dimensions (pixels).
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithTitle sets the chart title.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

type svgRenderer struct {
	width  float64
	height float64
	title  string
}

const chartMargin = 55.0

// RenderSVG renders the drawdown curve as a self-contained SVG chart:
// radius from the pit wall on the x axis, drawdown on the y axis with
// zero at the top (drawdown is a lowering, so the curve descends away
// from the axis the way a depression cone does in cross-section).
func RenderSVG(s Series, opts ...SVGOption) []byte {
	r := svgRenderer{width: 800, height: 400, title: "Drawdown profile"}
	for _, opt := range opts {
		opt(&r)
	}

	maxRadius, maxDrawdown := 1.0, 1.0
	for _, p := range s.Points {
		maxRadius = max(maxRadius, p.Radius)
		maxDrawdown = max(maxDrawdown, p.Drawdown)
	}

	plotW := r.width - 2*chartMargin
	plotH := r.height - 2*chartMargin
	x := func(radius float64) float64 { return chartMargin + radius/maxRadius*plotW }
	y := func(drawdown float64) float64 { return chartMargin + drawdown/maxDrawdown*plotH }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="white"/>`+"\n", r.width, r.height)
	fmt.Fprintf(&buf, `<text x="%.1f" y="25" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>`+"\n",
		r.width/2, r.title)

	// Axes: x along the undisturbed water table (drawdown 0), y at the pit wall.
	fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"/>`+"\n",
		chartMargin, y(0), chartMargin+plotW, y(0))
	fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"/>`+"\n",
		chartMargin, y(0), chartMargin, y(maxDrawdown))
	fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle">radius from pit wall (m)</text>`+"\n",
		chartMargin+plotW/2, r.height-12)
	fmt.Fprintf(&buf, `<text x="15" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle" transform="rotate(-90 15 %.1f)">drawdown (m)</text>`+"\n",
		chartMargin+plotH/2, chartMargin+plotH/2)

	// Axis extents.
	fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" text-anchor="end">%.1f</text>`+"\n",
		chartMargin+plotW, y(0)-6, maxRadius)
	fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" text-anchor="end">%.1f</text>`+"\n",
		chartMargin-6, y(maxDrawdown), maxDrawdown)

	if len(s.Points) > 0 {
		buf.WriteString(`<polyline fill="none" stroke="#1f77b4" stroke-width="2" points="`)
		for i, p := range s.Points {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.2f,%.2f", x(p.Radius), y(p.Drawdown))
		}
		buf.WriteString(`"/>` + "\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
