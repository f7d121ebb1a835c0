package waveguide

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for the SVG writers.
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Merge draws the union of each layer's polygons instead of the
	// individual polygons. Only used by [Cell.WriteSVG].
	Merge bool
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// svgWriter accumulates the first write error.
type svgWriter struct {
	w    io.Writer
	opts SVGOptions
	err  error
}

func (sw *svgWriter) printf(s string, v ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, s, v...)
}

func (sw *svgWriter) point(cmd string, pt Point) {
	sw.printf("%s%s,%s", cmd, sw.opts.format(pt.X), sw.opts.format(pt.Y))
}

func (sw *svgWriter) polygon(p Polygon) {
	for i, pt := range p {
		if i == 0 {
			sw.point("M", pt)
		} else {
			sw.point(" L", pt)
		}
	}
	if len(p) > 0 {
		sw.printf(" Z")
	}
}

// SVG converts p to a string of SVG path commands.
func (p Polygon) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts p to a string of SVG path commands and writes it to w.
func (p Polygon) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := &svgWriter{w: w, opts: opts}
	sw.polygon(p)
	return sw.err
}

// PathSVG converts a rounded path to a string of SVG path commands, using
// elliptical arc commands for arcs.
func PathSVG(path []PathElement, opts SVGOptions) string {
	sb := &strings.Builder{}
	WritePathSVG(sb, path, opts)
	return sb.String()
}

// WritePathSVG is like [PathSVG] but writes to w.
//
// The arc sweep flags assume a y-up coordinate system, as produced by
// [Cell.WriteSVG].
func WritePathSVG(w io.Writer, path []PathElement, opts SVGOptions) error {
	sw := &svgWriter{w: w, opts: opts}
	var last Point
	for i, el := range path {
		if i == 0 || el.P0 != last {
			if i > 0 {
				sw.printf(" ")
			}
			sw.point("M", el.P0)
		}
		switch el.Kind {
		case LineKind:
			sw.point(" L", el.P1)
		case ArcKind:
			a := el.Arc()
			r := opts.format(a.Radius())
			sweep := a.Sweep()
			large := 0
			if math.Abs(sweep) > math.Pi {
				large = 1
			}
			dir := 0
			if a.CCW {
				dir = 1
			}
			sw.printf(" A%s,%s 0 %d,%d ", r, r, large, dir)
			sw.point("", a.P1)
		default:
			panic("unreachable")
		}
		last = el.P1
	}
	return sw.err
}

var layerColors = [...]string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// WriteSVG writes the cell as a standalone SVG document. Each layer becomes
// a group with its own fill colour. The document flips the y axis so that
// the layout appears y-up.
func (c *Cell) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := &svgWriter{w: w, opts: opts}
	bbox := c.BoundingBox()
	margin := 0.05 * max(bbox.Width(), bbox.Height(), 1)
	f := opts.format
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		f(bbox.X0-margin), f(-bbox.Y1-margin),
		f(bbox.Width()+2*margin), f(bbox.Height()+2*margin))
	sw.printf(`<g transform="scale(1,-1)">` + "\n")
	for i, layer := range c.Layers() {
		sw.printf(`<g id="layer-%d-%d" fill="%s" fill-opacity="0.6">`+"\n",
			layer.Number, layer.Datatype, layerColors[i%len(layerColors)])
		if opts.Merge {
			// Holes are separate contours, so the merged outline has to be
			// a single even-odd path.
			sw.printf(`<path fill-rule="evenodd" d="`)
			for j, p := range c.Merged(layer) {
				if j > 0 {
					sw.printf(" ")
				}
				sw.polygon(p)
			}
			sw.printf(`"/>` + "\n")
		} else {
			for _, p := range c.Shapes(layer) {
				sw.printf(`<path d="`)
				sw.polygon(p)
				sw.printf(`"/>` + "\n")
			}
		}
		sw.printf("</g>\n")
	}
	sw.printf("</g>\n</svg>\n")
	return sw.err
}
