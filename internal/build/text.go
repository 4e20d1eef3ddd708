package build

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

// buildText renders a text run. Under strict/preserved whitespace
// sensitivity the text is reprinted verbatim; otherwise it is split into
// words and rejoined with a Fill so the renderer can wrap it at the print
// width like a paragraph (spec.md §4.4 "text runs use Fill so long runs of
// prose wrap at the print width").
func (b *Builder) buildText(t *ast.TextChunk, ws config.WhitespaceSensitivity) idoc.Doc {
	if ws == config.WhitespaceStrict {
		return literalLines(t.Data)
	}
	words := strings.Fields(t.Data)
	if len(words) == 0 {
		return idoc.Nil()
	}
	parts := make([]idoc.Doc, 0, len(words)*2-1)
	for i, w := range words {
		if i > 0 {
			parts = append(parts, idoc.LineDoc)
		}
		parts = append(parts, idoc.Str(w))
	}
	return idoc.FillDoc(parts...)
}
