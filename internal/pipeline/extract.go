package pipeline

import (
	"log/slog"
	"strconv"
	"strings"
)

// tableHeader marks the start of the coin-type table in the SLIP-0044
// markdown document. Everything up to and including it is skipped, plus the
// markdown separator row that follows it.
const tableHeader = "| Coin type  | Path component (`coin_type'`) | Symbol  | Coin                              |"

// rowCells is the expected cell count when a data row is split on '|': the
// table's outer pipes produce one empty leading and one empty trailing cell
// around the four real columns.
const rowCells = 6

// Row is one accepted line of the registry table, trimmed but not yet
// normalized.
type Row struct {
	ID            uint32
	PathComponent string
	Symbol        string
	Name          string
}

// ExtractRows splits the raw markdown into candidate rows and keeps the
// well-formed ones. Malformed rows are skipped with a warning; nothing at
// row level is ever fatal.
func ExtractRows(markdown string, stats *Stats) []Row {
	lines := strings.Split(markdown, "\n")

	start := -1
	for i, line := range lines {
		if line == tableHeader {
			slog.Debug("found table header", "line", i)
			start = i + 2
			break
		}
	}
	if start < 0 || start > len(lines) {
		slog.Warn("coin table header not found in document")
		return nil
	}

	var rows []Row
	for _, line := range lines[start:] {
		stats.LinesSeen++

		cells := strings.Split(line, "|")
		if len(cells) != rowCells {
			stats.RowsSkipped++
			stats.SkippedShape++
			slog.Warn("skipping line with wrong cell count", "line", line)
			continue
		}

		name := unwrapLink(strings.TrimSpace(cells[4]))
		if name == "" || name == "reserved" {
			stats.RowsSkipped++
			stats.SkippedName++
			slog.Warn("skipping row with empty or reserved coin name", "line", line)
			continue
		}

		id, err := strconv.ParseUint(strings.TrimSpace(cells[1]), 10, 32)
		if err != nil {
			stats.RowsSkipped++
			stats.SkippedID++
			slog.Warn("skipping row with invalid coin type id", "id", strings.TrimSpace(cells[1]), "coin", name)
			continue
		}

		rows = append(rows, Row{
			ID:            uint32(id),
			PathComponent: strings.TrimSpace(cells[2]),
			Symbol:        unwrapLink(strings.TrimSpace(cells[3])),
			Name:          name,
		})
	}
	return rows
}

// unwrapLink reduces a markdown link cell "[text](url)" to its text. Cells
// that are not links pass through unchanged.
func unwrapLink(cell string) string {
	if !strings.HasPrefix(cell, "[") || !strings.HasSuffix(cell, ")") {
		return cell
	}
	closing := strings.Index(cell, "](")
	if closing < 0 {
		return cell
	}
	return cell[1:closing]
}
