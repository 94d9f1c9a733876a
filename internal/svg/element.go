package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a coordinate pair in the SVG canvas's coordinate space.
type Point struct {
	X, Y float64
}

// LineCap is the SVG stroke-linecap attribute value.
type LineCap string

const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin is the SVG stroke-linejoin attribute value.
type LineJoin string

const (
	LineJoinArcs      LineJoin = "arcs"
	LineJoinBevel     LineJoin = "bevel"
	LineJoinMiter     LineJoin = "miter"
	LineJoinMiterClip LineJoin = "miter-clip"
	LineJoinRound     LineJoin = "round"
)

// Style holds the shared stroke/fill attributes every path-like
// element exposes, mirroring original_source/transport-catalogue/
// svg.h's PathProps<Owner> mixin. Unset fields are omitted from
// rendering, as an unset std::optional is.
type Style struct {
	Fill           Color
	HasFill        bool
	Stroke         Color
	HasStroke      bool
	StrokeWidth    float64
	HasStrokeWidth bool
	LineCap        LineCap
	HasLineCap     bool
	LineJoin       LineJoin
	HasLineJoin    bool
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s Style) writeAttrs(w *strings.Builder) {
	if s.HasFill {
		fmt.Fprintf(w, ` fill="%s"`, s.Fill.String())
	}
	if s.HasStroke {
		fmt.Fprintf(w, ` stroke="%s"`, s.Stroke.String())
	}
	if s.HasStrokeWidth {
		fmt.Fprintf(w, ` stroke-width="%s"`, formatFloat(s.StrokeWidth))
	}
	if s.HasLineCap {
		fmt.Fprintf(w, ` stroke-linecap="%s"`, s.LineCap)
	}
	if s.HasLineJoin {
		fmt.Fprintf(w, ` stroke-linejoin="%s"`, s.LineJoin)
	}
}

// Element is anything a Document can hold: Circle, Polyline, or Text.
type Element interface {
	writeTo(w *strings.Builder, indent int)
}

func writeIndent(w *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		w.WriteByte(' ')
	}
}

// Circle is the <circle> element.
type Circle struct {
	Center Point
	Radius float64
	Style  Style
}

func (c Circle) writeTo(w *strings.Builder, indent int) {
	writeIndent(w, indent)
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"`, formatFloat(c.Center.X), formatFloat(c.Center.Y), formatFloat(c.Radius))
	c.Style.writeAttrs(w)
	w.WriteString("/>\n")
}

// Polyline is the <polyline> element.
type Polyline struct {
	Points []Point
	Style  Style
}

func (p Polyline) writeTo(w *strings.Builder, indent int) {
	writeIndent(w, indent)
	w.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%s,%s", formatFloat(pt.X), formatFloat(pt.Y))
	}
	w.WriteByte('"')
	p.Style.writeAttrs(w)
	w.WriteString("/>\n")
}

// Text is the <text> element.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
	Style      Style
}

func (t Text) writeTo(w *strings.Builder, indent int) {
	writeIndent(w, indent)
	w.WriteString("<text")
	fmt.Fprintf(w, ` x="%s"`, formatFloat(t.Position.X))
	fmt.Fprintf(w, ` y="%s"`, formatFloat(t.Position.Y))
	fmt.Fprintf(w, ` dx="%s"`, formatFloat(t.Offset.X))
	fmt.Fprintf(w, ` dy="%s"`, formatFloat(t.Offset.Y))
	fmt.Fprintf(w, ` font-size="%d"`, t.FontSize)
	if t.FontFamily != "" {
		fmt.Fprintf(w, ` font-family="%s"`, t.FontFamily)
	}
	if t.FontWeight != "" {
		fmt.Fprintf(w, ` font-weight="%s"`, t.FontWeight)
	}
	t.Style.writeAttrs(w)
	w.WriteByte('>')
	w.WriteString(escapeText(t.Data))
	w.WriteString("</text>\n")
}
