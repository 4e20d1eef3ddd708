package doc

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dpotapov/markupfmt/internal/scan"
)

// StringWidth measures the display width of s in columns, grapheme-cluster
// aware. Entity references are decoded first since "&amp;" occupies one
// rendered column, not five (spec.md §4.3: "measured in grapheme columns");
// ASCII-only strings then take a fast byte-counting path, and anything with
// a non-ASCII byte is measured with github.com/rivo/uniseg, which correctly
// collapses combining marks and widens East Asian characters.
func StringWidth(s string) int {
	if strings.IndexByte(s, '&') >= 0 {
		s = scan.UnescapeEntities(s)
	}
	if isASCII(s) {
		return len(s)
	}
	return uniseg.StringWidth(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// width_ returns t's cached display width, computing it on first use.
func (t *Text) width_() int {
	if !t.measured {
		t.width = StringWidth(t.S)
		t.measured = true
	}
	return t.width
}

// flatWidth returns the width d would occupy if every soft break inside it
// rendered flat, or -1 if d contains a Hardline/Literalline (which can
// never render flat). The result is memoized on Group nodes per spec.md §9.
func flatWidth(d Doc) int {
	switch v := d.(type) {
	case *Text:
		return v.width_()
	case *Concat:
		total := 0
		for _, p := range v.Parts {
			w := flatWidth(p)
			if w < 0 {
				return -1
			}
			total += w
		}
		return total
	case Line:
		return 1
	case Softline:
		return 0
	case Hardline:
		return -1
	case Literalline:
		return -1
	case *Indent:
		return flatWidth(v.D)
	case *Align:
		return flatWidth(v.D)
	case *Group:
		if !v.measured {
			v.flatWidth = flatWidth(v.D)
			v.measured = true
		}
		if v.ShouldBreak {
			return -1
		}
		return v.flatWidth
	case *Fill:
		total := 0
		for _, p := range v.Parts {
			w := flatWidth(p)
			if w < 0 {
				return -1
			}
			total += w
		}
		return total
	case *IfBreak:
		return flatWidth(v.Flat)
	default:
		return 0
	}
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
