package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coingen/internal/pipeline"
)

func testRecords() []pipeline.Record {
	records := []pipeline.Record{
		{ID: 60, IDs: []uint32{60, 61}, Name: "Ethereum", Symbol: "ETH", OriginalName: "Ether"},
		{ID: 0, IDs: []uint32{0}, Name: "Bitcoin", Symbol: "BTC", OriginalName: "Bitcoin"},
		{ID: 1, IDs: []uint32{1}, Name: "Testnet", OriginalName: "Testnet (all coins)"},
		{ID: 99, IDs: []uint32{99}, Name: "OtherBit", Symbol: "BTC", OriginalName: "Other Bit"},
	}
	pipeline.Annotate(records)
	return records
}

func TestEmit_Layout(t *testing.T) {
	var b strings.Builder
	count, err := Emit(&b, "slip0044", testRecords())
	if err != nil {
		t.Fatalf("Emit() returned unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("Emit() count = %d, want 4", count)
	}

	out := b.String()

	if !strings.HasPrefix(out, "// Code generated by coingen; DO NOT EDIT.\n") {
		t.Errorf("output missing generated-code header:\n%s", out)
	}
	if !strings.Contains(out, "package slip0044\n") {
		t.Error("output missing package clause")
	}
	if !strings.Contains(out, "var coins = register(\n") {
		t.Error("output missing register invocation")
	}
	if !strings.HasSuffix(out, ")\n") {
		t.Error("output not terminated")
	}
}

func TestEmit_SortedByPrimaryID(t *testing.T) {
	var b strings.Builder
	if _, err := Emit(&b, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	bitcoin := strings.Index(out, `Name: "Bitcoin"`)
	testnet := strings.Index(out, `Name: "Testnet"`)
	ethereum := strings.Index(out, `Name: "Ethereum"`)
	otherbit := strings.Index(out, `Name: "OtherBit"`)

	if bitcoin < 0 || testnet < 0 || ethereum < 0 || otherbit < 0 {
		t.Fatalf("missing entries in output:\n%s", out)
	}
	if !(bitcoin < testnet && testnet < ethereum && ethereum < otherbit) {
		t.Errorf("entries out of order: Bitcoin %d, Testnet %d, Ethereum %d, OtherBit %d",
			bitcoin, testnet, ethereum, otherbit)
	}
}

func TestEmit_MergedIDList(t *testing.T) {
	var b strings.Builder
	if _, err := Emit(&b, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(b.String(), "IDs: []uint32{60, 61}") {
		t.Errorf("merged id list missing:\n%s", b.String())
	}
}

func TestEmit_DocLines(t *testing.T) {
	var b strings.Builder
	if _, err := Emit(&b, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, line := range []string{
		"\t// Coin type: 60, 61\n",
		"\t// Symbol: ETH\n",
		"\t// Coin: Ether\n",
		"\t// Coin: Testnet (all coins)\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing doc line %q", line)
		}
	}
}

// The first coin holding a ticker owns the constant; later ones only get
// the alias string.
func TestEmit_SymbolUniqueness(t *testing.T) {
	var b strings.Builder
	if _, err := Emit(&b, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if got := strings.Count(out, "\tBTC Symbol = \"BTC\"\n"); got != 1 {
		t.Errorf("BTC constant declared %d times, want 1", got)
	}
	if !strings.Contains(out, `Name: "Bitcoin", Display: "Bitcoin", Symbol: BTC},`) {
		t.Errorf("first BTC holder should reference the bare constant:\n%s", out)
	}
	if !strings.Contains(out, `Name: "OtherBit", Display: "Other Bit", SymbolAlias: "BTC"},`) {
		t.Errorf("second BTC holder should carry only the alias string:\n%s", out)
	}
	if !strings.Contains(out, `Name: "Testnet", Display: "Testnet (all coins)"},`) {
		t.Errorf("symbol-less coin should have no symbol field:\n%s", out)
	}
}

func TestEmit_Deterministic(t *testing.T) {
	var a, b strings.Builder
	if _, err := Emit(&a, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}
	if _, err := Emit(&b, "slip0044", testRecords()); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("two emissions of the same records differ")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "coins_gen.go")

	count, err := WriteFile(path, "slip0044", testRecords())
	if err != nil {
		t.Fatalf("WriteFile() returned unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("WriteFile() count = %d, want 4", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "DO NOT EDIT") {
		t.Error("output file missing generated-code marker")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins_gen.go")
	if err := os.WriteFile(path, []byte("stale contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteFile(path, "slip0044", testRecords()); err != nil {
		t.Fatalf("WriteFile() returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale contents") {
		t.Error("existing file was not overwritten")
	}
}

func TestEscapeDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bitcoin", "Bitcoin"},
		{"Testnet (all coins)", "Testnet (all coins)"},
		{"Bitcoin Matteo's Vision", "Bitcoin Matteos Vision"},
		{"$DAG", "DAG"},
		{`Back\slash "quoted" @at`, "Backslash quoted at"},
		{"Pl^g", "Plg"},
		{"θ", ""},
		{"Unit-e", "Unit-e"},
		{"Capricoin+", "Capricoin+"},
	}

	for _, tt := range tests {
		if got := EscapeDisplay(tt.in); got != tt.want {
			t.Errorf("EscapeDisplay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
