package pipeline

// Record is the structured form of one coin in the SLIP-0044 registry.
// A Record is created by the builder with a single registration id, absorbs
// further ids during the identity merge, and is frozen once merging is done.
type Record struct {
	// ID is the primary registration id, used as the final sort key.
	// The merger sets it to the minimum of IDs.
	ID uint32

	// IDs holds every registration id merged into this record.
	// Insertion order is preserved during merging; the merger sorts the
	// slice ascending before handing records on. Never empty.
	IDs []uint32

	// PathComponent is the derivation-path token, copied verbatim from the
	// source row. It plays no part in merge or dedup decisions.
	PathComponent string

	// Symbol is the cleaned ticker. Empty string means the coin has no
	// usable symbol; cleaned symbols are never legitimately empty, so the
	// sentinel is unambiguous.
	Symbol string

	// Name is the normalized identifier candidate. It always matches the
	// identifier grammar (letter or underscore first, alphanumerics and
	// underscores after) and is unique across the final set once the
	// merger's disambiguation pass has run.
	Name string

	// OriginalName is the display name exactly as it appeared in the
	// registry, kept for documentation and for merge-key identity.
	OriginalName string

	// DocLines are the documentation comment lines attached before
	// emission. Inert otherwise.
	DocLines []string
}

// Stats summarizes one pipeline run for the summary line and preview output.
type Stats struct {
	LinesSeen     int
	RowsAccepted  int
	RowsSkipped   int
	SkippedShape  int // wrong cell count
	SkippedName   int // empty, reserved, or unnormalizable name
	SkippedID     int // unparseable registration id
	IdentityMerge int // rows absorbed into an existing record
	Collisions    int // records renamed by disambiguation
}
