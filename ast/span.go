package ast

// Span is a byte-range into the original source text. Spans are attached to
// every AST node for diagnostics and ignore-directive targeting; they are
// referenced by the nodes that carry them, never duplicated into a separate
// position table (per spec.md §3, invariant 1).
type Span struct {
	Start int // byte offset of the first byte in the span
	End   int // byte offset one past the last byte in the span
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Slice returns the substring of src covered by the span.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// Join returns the smallest span covering both s and other. It is used when
// building the span of a composite node (e.g. a template Block) from the
// spans of its first and last constituent tokens.
func (s Span) Join(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}
