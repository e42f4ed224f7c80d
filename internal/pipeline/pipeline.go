// Package pipeline turns the raw SLIP-0044 markdown document into merged,
// documented coin records ready for code generation.
//
// The stages run strictly in order: row extraction, name normalization,
// record building, identity merge, collision disambiguation, annotation.
// Malformed input only ever shrinks the output; no row is fatal.
package pipeline

import "log/slog"

// Options tunes a pipeline run.
type Options struct {
	// ExtraOverrides are maintainer-supplied irregular-name overrides
	// consulted after the built-in table.
	ExtraOverrides map[string]string
}

// Run executes the full transformation and returns the final records along
// with per-run statistics. Output order is unspecified; the emitter sorts
// by primary id.
func Run(markdown string, opts Options) ([]Record, Stats) {
	var stats Stats

	rows := ExtractRows(markdown, &stats)

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		name, err := NormalizeName(row.Name, opts.ExtraOverrides)
		if err != nil {
			stats.RowsSkipped++
			stats.SkippedName++
			slog.Warn("skipping coin", "error", err, "id", row.ID)
			continue
		}

		symbol := NormalizeSymbol(row.Symbol)
		if symbol == "" && row.Symbol != "" {
			slog.Warn("dropping unusable symbol", "symbol", row.Symbol, "coin", row.Name)
		}

		records = append(records, BuildRecord(row, name, symbol))
		stats.RowsAccepted++
	}

	records = MergeIdentical(records, &stats)
	records = Disambiguate(records, &stats)
	Annotate(records)
	return records, stats
}
