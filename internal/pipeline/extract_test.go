package pipeline

import (
	"strings"
	"testing"
)

// registryDoc builds a minimal SLIP-0044 document around the given table rows.
func registryDoc(rows ...string) string {
	lines := []string{
		"# SLIP-0044 : Registered coin types for BIP-0044",
		"",
		"Preamble text | with | stray pipes",
		"",
		tableHeader,
		"|------------|-------------------------------|---------|-----------------------------------|",
	}
	lines = append(lines, rows...)
	return strings.Join(lines, "\n")
}

func TestExtractRows_Basic(t *testing.T) {
	doc := registryDoc(
		"| 0          | 0x80000000                    | BTC     | Bitcoin                           |",
		"| 2          | 0x80000002                    | LTC     | Litecoin                          |",
	)

	var stats Stats
	rows := ExtractRows(doc, &stats)

	if len(rows) != 2 {
		t.Fatalf("ExtractRows() returned %d rows, want 2", len(rows))
	}

	want := Row{ID: 0, PathComponent: "0x80000000", Symbol: "BTC", Name: "Bitcoin"}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}

	if rows[1].ID != 2 || rows[1].Name != "Litecoin" {
		t.Errorf("rows[1] = %+v, want id 2 name Litecoin", rows[1])
	}

	if stats.RowsSkipped != 0 {
		t.Errorf("RowsSkipped = %d, want 0", stats.RowsSkipped)
	}
}

func TestExtractRows_SkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"wrong cell count", "| 5 | 0x80000005 | Broken |"},
		{"empty name", "| 6          | 0x80000006                    | XX      |                                   |"},
		{"reserved name", "| 7          | 0x80000007                    |         | reserved                          |"},
		{"non-numeric id", "| seven      | 0x80000007                    | XX      | SomeCoin                          |"},
		{"negative id", "| -7         | 0x80000007                    | XX      | SomeCoin                          |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stats Stats
			rows := ExtractRows(registryDoc(tt.row), &stats)

			if len(rows) != 0 {
				t.Errorf("ExtractRows() returned %d rows, want 0", len(rows))
			}
			if stats.RowsSkipped != 1 {
				t.Errorf("RowsSkipped = %d, want 1", stats.RowsSkipped)
			}
		})
	}
}

func TestExtractRows_SkipReasons(t *testing.T) {
	doc := registryDoc(
		"| 0          | 0x80000000                    | BTC     | Bitcoin                           |",
		"| bad shape |",
		"| 7          | 0x80000007                    |         | reserved                          |",
		"| oops       | 0x80000008                    | XX      | SomeCoin                          |",
	)

	var stats Stats
	rows := ExtractRows(doc, &stats)

	if len(rows) != 1 {
		t.Fatalf("ExtractRows() returned %d rows, want 1", len(rows))
	}
	if stats.SkippedShape != 1 || stats.SkippedName != 1 || stats.SkippedID != 1 {
		t.Errorf("skip reasons = shape %d name %d id %d, want 1 each",
			stats.SkippedShape, stats.SkippedName, stats.SkippedID)
	}
}

func TestExtractRows_UnwrapsMarkdownLinks(t *testing.T) {
	doc := registryDoc(
		"| 60         | 0x8000003c                    | [ETH](https://ethereum.org) | [Ether](https://ethereum.org) |",
	)

	var stats Stats
	rows := ExtractRows(doc, &stats)

	if len(rows) != 1 {
		t.Fatalf("ExtractRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Name != "Ether" {
		t.Errorf("Name = %q, want %q", rows[0].Name, "Ether")
	}
	if rows[0].Symbol != "ETH" {
		t.Errorf("Symbol = %q, want %q", rows[0].Symbol, "ETH")
	}
}

func TestExtractRows_HeaderMissing(t *testing.T) {
	var stats Stats
	rows := ExtractRows("# A document\n\nwith no coin table at all\n", &stats)

	if len(rows) != 0 {
		t.Errorf("ExtractRows() returned %d rows, want 0", len(rows))
	}
}

func TestUnwrapLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bitcoin", "Bitcoin"},
		{"[Ether](https://ethereum.org)", "Ether"},
		{"[text only", "[text only"},
		{"[weird](unclosed", "[weird](unclosed"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := unwrapLink(tt.in); got != tt.want {
			t.Errorf("unwrapLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
