package svg

import "strings"

// documentIndent is the fixed per-element indent spec.md §6 requires:
// two spaces, matching original_source/transport-catalogue/svg.cpp's
// RenderContext(out, 2, 2).
const documentIndent = 2

// Document is the SVG envelope: the XML prologue, the root <svg>
// element, and an ordered sequence of child elements. Elements are
// rendered in Add order, which is what gives the map renderer its
// deterministic layering.
type Document struct {
	elements []Element
}

// Add appends an element to the document.
func (d *Document) Add(e Element) {
	d.elements = append(d.elements, e)
}

// String renders the full SVG document as text, per spec.md §6's
// envelope: the XML prologue, then a root <svg> element, each child on
// its own two-space-indented line.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, e := range d.elements {
		e.writeTo(&b, documentIndent)
	}
	b.WriteString("</svg>")
	return b.String()
}
