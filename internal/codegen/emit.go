// Package codegen serializes final coin records into a generated Go source
// file, sorted by primary id.
package codegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"coingen/internal/pipeline"
)

// Emit writes the generated source for the given records to w and returns
// the number of coins written.
//
// Tickers are globally unique in the output: the first record holding a
// ticker owns its exported constant and references it bare in the Symbol
// field; later records with the same ticker carry it only as a quoted
// SymbolAlias string, so the constant is never redefined.
func Emit(w io.Writer, pkg string, records []pipeline.Record) (int, error) {
	sorted := make([]pipeline.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var consts strings.Builder
	var entries strings.Builder
	seen := make(map[string]bool)

	for i, rec := range sorted {
		if i > 0 {
			entries.WriteByte('\n')
		}
		for _, line := range rec.DocLines {
			fmt.Fprintf(&entries, "\t// %s\n", line)
		}

		ids := make([]string, len(rec.IDs))
		for j, id := range rec.IDs {
			ids[j] = strconv.FormatUint(uint64(id), 10)
		}

		fmt.Fprintf(&entries, "\tCoin{IDs: []uint32{%s}, Name: %q, Display: %q",
			strings.Join(ids, ", "), rec.Name, EscapeDisplay(rec.OriginalName))
		if rec.Symbol != "" {
			if seen[rec.Symbol] {
				fmt.Fprintf(&entries, ", SymbolAlias: %q", rec.Symbol)
			} else {
				seen[rec.Symbol] = true
				fmt.Fprintf(&consts, "\t%s Symbol = %q\n", rec.Symbol, rec.Symbol)
				fmt.Fprintf(&entries, ", Symbol: %s", rec.Symbol)
			}
		}
		entries.WriteString("},\n")
	}

	var out strings.Builder
	out.WriteString("// Code generated by coingen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if consts.Len() > 0 {
		out.WriteString("// Ticker constants. The first coin declaring a ticker owns its\n")
		out.WriteString("// constant; later coins sharing it carry it only as an alias string.\n")
		out.WriteString("const (\n")
		out.WriteString(consts.String())
		out.WriteString(")\n\n")
	}
	out.WriteString("var coins = register(\n")
	out.WriteString(entries.String())
	out.WriteString(")\n")

	if _, err := io.WriteString(w, out.String()); err != nil {
		return 0, err
	}
	return len(sorted), nil
}

// WriteFile creates (or overwrites) the output file and emits the table
// into it, creating parent directories as needed.
func WriteFile(path, pkg string, records []pipeline.Record) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}

	count, err := Emit(f, pkg, records)
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	return count, nil
}

// EscapeDisplay sanitizes a display name for embedding in a string literal.
// A fixed set of unsafe or redundant characters is stripped outright, then
// anything outside the allow-list is dropped rather than escaped.
func EscapeDisplay(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '@', '^', '\'', '"', '\\', '$':
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == ' ', r == '-', r == '+', r == '.', r == '(', r == ')':
		default:
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
