package doc

import "strings"

// mode is the ambient layout decision inherited from the nearest enclosing
// Group: Flat renders Line as a space and Softline as nothing; Break
// renders both as a newline.
type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// Renderer implements the best-fit algorithm of spec.md §4.3/§4.5: stateless
// apart from the output buffer, current column, current indent, and the
// ambient break-mode inherited through recursion (which stands in for
// spec.md's "stack of group-break decisions", collapsed here into the call
// stack since Go's stack already gives us that bookkeeping for free).
type Renderer struct {
	Width      int
	IndentUnit string
	Terminator string
}

// Render lays out d against r.Width and returns the formatted string.
func (r *Renderer) Render(d Doc) string {
	var b strings.Builder
	rc := &renderCtx{r: r, out: &b}
	rc.render(d, "", modeBreak)
	return b.String()
}

type renderCtx struct {
	r   *Renderer
	out *strings.Builder
	col int
}

func (c *renderCtx) newline(indent string) {
	c.out.WriteString(c.r.Terminator)
	c.out.WriteString(indent)
	c.col = StringWidth(indent)
}

func (c *renderCtx) write(s string) {
	c.out.WriteString(s)
	c.col += StringWidth(s)
}

// fits reports whether d's flat rendering occupies no more than the
// remaining columns on the current line, per spec.md §4.3's Group contract.
// A negative flatWidth (a Hardline/Literalline anywhere inside, not
// absorbed by a nested Group) never fits.
func (c *renderCtx) fits(d Doc, col int) bool {
	w := flatWidth(d)
	if w < 0 {
		return false
	}
	return col+w <= c.r.Width
}

// render lays out d starting at the given indent prefix and mode.
func (c *renderCtx) render(d Doc, indent string, m mode) {
	switch v := d.(type) {
	case nil:
		return
	case *Text:
		c.write(v.S)
	case *Concat:
		for _, p := range v.Parts {
			c.render(p, indent, m)
		}
	case Line:
		if m == modeFlat {
			c.write(" ")
		} else {
			c.newline(indent)
		}
	case Softline:
		if m == modeBreak {
			c.newline(indent)
		}
	case Hardline:
		c.newline(indent)
	case Literalline:
		c.out.WriteString(c.r.Terminator)
		c.col = 0
	case *Indent:
		c.render(v.D, indent+c.r.IndentUnit, m)
	case *Align:
		newIndent := indent
		if v.N >= 0 {
			newIndent = indent + repeat(" ", v.N)
		}
		c.render(v.D, newIndent, m)
	case *Group:
		gm := modeFlat
		if v.ShouldBreak || !c.fits(v.D, c.col) {
			gm = modeBreak
		}
		c.render(v.D, indent, gm)
	case *Fill:
		c.renderFill(v.Parts, indent, m)
	case *IfBreak:
		if m == modeBreak {
			c.render(v.Broken, indent, m)
		} else {
			c.render(v.Flat, indent, m)
		}
	}
}

// renderFill implements spec.md §4.3's fill semantics: repeatedly take the
// longest prefix that fits on the current line. Parts alternates content
// and separator docs, content first.
func (c *renderCtx) renderFill(parts []Doc, indent string, m mode) {
	if len(parts) == 0 {
		return
	}
	content := parts[0]
	contentFits := c.fits(content, c.col)
	c.render(content, indent, m)
	if len(parts) == 1 {
		return
	}
	sep := parts[1]
	if len(parts) == 2 {
		c.render(sep, indent, m)
		return
	}
	next := parts[2]
	nextFits := c.fits(next, c.col+separatorFlatWidth(sep, contentFits))
	if contentFits && nextFits {
		c.render(sep, indent, modeFlat)
	} else {
		c.render(sep, indent, modeBreak)
	}
	c.renderFill(parts[2:], indent, m)
}

func separatorFlatWidth(sep Doc, ok bool) int {
	if !ok {
		return 0
	}
	w := flatWidth(sep)
	if w < 0 {
		return 0
	}
	return w
}
