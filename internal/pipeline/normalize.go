package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// nameAliases are direct renames applied before the irregular-character
// check, for registry names that are well-formed but not the name anyone
// uses for the coin.
var nameAliases = map[string]string{
	"Ether":        "Ethereum",
	"EtherClassic": "EthereumClassic",
}

// irregularNames maps registry names containing characters outside the
// identifier grammar to hand-picked clean identifiers. The table is closed
// on purpose: an irregular name with no entry fails normalization so the
// new coin is surfaced for curation instead of being silently mangled.
var irregularNames = map[string]string{
	"Pl^g":                  "Plug",
	"BitcoinMatteo'sVision": "BitcoinMatteosVision",
	"Crypto.orgChain":       "CryptoOrgChain",
	"Cocos-BCX":             "CocosBCX",
	"Capricoin+":            "CapricoinPlus",
	"Seele-N":               "SeeleN",
	"IQ-Cash":               "IQCash",
	"XinFin.Network":        "XinFinNetwork",
	"Unit-e":                "UnitE",
	"HARMONY-ONE":           "HarmonyOne",
	"ThePower.io":           "ThePower",
	"evan.network":          "EvanNetwork",
	"Ether-1":               "EtherOne",
	"æternity":              "aeternity",
	"θ":                     "Theta",
}

// irregularSymbols is the symbol counterpart of irregularNames. The single
// $DAG entry is deliberately a literal substitution, not a general
// "strip leading $" rule; no other $-prefixed ticker exists in the registry.
var irregularSymbols = map[string]string{
	"$DAG": "DAG",
}

// NameError reports a display name the normalizer refused to guess at.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("unknown original coin name %q", e.Name)
}

// NormalizeName maps a display name to a clean identifier candidate, or
// fails with a NameError when the name is irregular and has no override.
// extra holds maintainer-supplied overrides consulted after the built-in
// table, so built-in entries win on conflict.
func NormalizeName(original string, extra map[string]string) (string, error) {
	name := strings.ReplaceAll(original, " ", "")
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	name = prefixDigit(name)
	if alias, ok := nameAliases[name]; ok {
		name = alias
	}
	if isIdentifier(name) {
		return name, nil
	}
	if clean, ok := irregularNames[name]; ok {
		return clean, nil
	}
	if clean, ok := extra[name]; ok {
		return clean, nil
	}
	return "", &NameError{Name: name}
}

// NormalizeSymbol cleans a ticker cell. An empty result means the coin has
// no usable symbol: either the cell was empty, or the ticker is irregular
// with no override. Unlike names, a bad ticker drops the ticker, not the row.
func NormalizeSymbol(raw string) string {
	sym := prefixDigit(raw)
	if clean, ok := irregularSymbols[sym]; ok {
		sym = clean
	}
	if !isIdentifier(sym) {
		return ""
	}
	return sym
}

// LoadOverrides reads extra irregular-name overrides from a YAML file of
// "registry name: CleanIdentifier" pairs, letting a maintainer handle a
// newly registered irregular name without rebuilding the generator.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides file: %w", err)
	}
	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides file: %w", err)
	}
	for name, clean := range overrides {
		if !isIdentifier(clean) {
			return nil, fmt.Errorf("override for %q is not a valid identifier: %q", name, clean)
		}
	}
	return overrides, nil
}

// prefixDigit prepends an underscore to names starting with a digit, since
// identifiers may not.
func prefixDigit(name string) string {
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}

// isIdentifier reports whether s is a valid identifier: a letter or
// underscore first, ASCII alphanumerics and underscores after.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
