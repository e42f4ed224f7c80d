package pipeline

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// mergeKey is the identity of a coin for the purpose of the first merge
// pass. Two rows with the same key are the same coin registered under
// multiple ids.
type mergeKey struct {
	symbol   string
	name     string
	original string
}

// MergeIdentical collapses records that share symbol, normalized name, and
// original display name into one record carrying all of their ids. The
// first-seen record of each key is the representative. Each surviving
// record's id list is sorted ascending and its primary id set to the
// minimum before the records move on.
func MergeIdentical(records []Record, stats *Stats) []Record {
	index := make(map[mergeKey]int, len(records))
	merged := make([]Record, 0, len(records))

	for _, rec := range records {
		key := mergeKey{symbol: rec.Symbol, name: rec.Name, original: rec.OriginalName}
		if i, ok := index[key]; ok {
			merged[i].IDs = append(merged[i].IDs, rec.ID)
			if stats != nil {
				stats.IdentityMerge++
			}
			slog.Debug("merged duplicate registration", "name", rec.Name, "id", rec.ID)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, rec)
	}

	for i := range merged {
		ids := merged[i].IDs
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		merged[i].ID = ids[0]
	}
	return merged
}

// Disambiguate renames records whose normalized names collided after the
// identity merge. Every member of a colliding group gets a suffix built
// from its symbol, or from its ids when the symbol is absent; names held by
// a single record stay untouched.
//
// This pass must run strictly after MergeIdentical: run first, it would
// treat genuinely duplicate rows as colliding distinct coins.
func Disambiguate(records []Record, stats *Stats) []Record {
	byName := make(map[string][]int, len(records))
	for i, rec := range records {
		byName[rec.Name] = append(byName[rec.Name], i)
	}

	for name, group := range byName {
		if len(group) < 2 {
			continue
		}
		slog.Warn("normalized name collision", "name", name, "coins", len(group))
		for _, i := range group {
			records[i].Name += "_" + nameSuffix(records[i])
			if stats != nil {
				stats.Collisions++
			}
		}
	}
	return records
}

// nameSuffix picks the disambiguation suffix for a colliding record: the
// symbol when present, otherwise the underscore-joined ids. Ids are unique
// per accepted row, so the suffixed names cannot themselves collide.
func nameSuffix(rec Record) string {
	if rec.Symbol != "" {
		return rec.Symbol
	}
	parts := make([]string, len(rec.IDs))
	for i, id := range rec.IDs {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, "_")
}
