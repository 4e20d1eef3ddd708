// Command example is a minimal demonstration of markupfmt as a library:
// read a file, map its extension to a LanguageTag, format it, and print the
// result. It mirrors the shape of the teacher's example/main.go (a small
// main wired directly against the library's public surface, logging with
// log/slog) without attempting to be a real CLI (flag parsing, config
// files, and directory walking are left to a real host per spec.md §1's
// Non-goals around auto-detection and host embedding).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dpotapov/markupfmt"
)

var extLangs = map[string]markupfmt.LanguageTag{
	".html": markupfmt.Html,
	".htm":  markupfmt.Html,
	".xml":  markupfmt.Xml,
	".svg":  markupfmt.Xml,
	".vue":  markupfmt.Vue,
	".svelte": markupfmt.Svelte,
	".astro":  markupfmt.Astro,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(os.Args) != 2 {
		logger.Error("usage: example <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	lang, ok := extLangs[strings.ToLower(filepath.Ext(path))]
	if !ok {
		logger.Error("unrecognized extension, pass a LanguageTag explicitly in a real host", "path", path)
		os.Exit(2)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(1)
	}

	opts := markupfmt.DefaultOptions()
	opts.Logger = logger

	out, err := markupfmt.Format(string(src), lang, opts, nil)
	if err != nil {
		var syn *markupfmt.SyntaxError
		var ext *markupfmt.ExternalError
		switch {
		case errors.As(err, &syn):
			logger.Error("syntax error", "error", syn, "context", syn.Context())
		case errors.As(err, &ext):
			logger.Error("external formatter error", "error", ext)
		default:
			logger.Error("format failed", "error", err)
		}
		os.Exit(1)
	}

	fmt.Print(out)
}
