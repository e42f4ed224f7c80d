package pipeline

import (
	"strconv"
	"strings"
)

// Annotate attaches the documentation lines to each final record, in fixed
// order: the merged id list, the symbol when present, and the original
// display name.
func Annotate(records []Record) {
	for i := range records {
		rec := &records[i]

		ids := make([]string, len(rec.IDs))
		for j, id := range rec.IDs {
			ids[j] = strconv.FormatUint(uint64(id), 10)
		}

		lines := []string{"Coin type: " + strings.Join(ids, ", ")}
		if rec.Symbol != "" {
			lines = append(lines, "Symbol: "+rec.Symbol)
		}
		lines = append(lines, "Coin: "+rec.OriginalName)
		rec.DocLines = lines
	}
}
