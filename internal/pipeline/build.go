package pipeline

// BuildRecord converts one accepted row plus its normalized name and symbol
// into a Record with a singleton id list. No merge logic happens here; doc
// lines stay empty until annotation.
func BuildRecord(row Row, name, symbol string) Record {
	return Record{
		ID:            row.ID,
		IDs:           []uint32{row.ID},
		PathComponent: row.PathComponent,
		Symbol:        symbol,
		Name:          name,
		OriginalName:  row.Name,
	}
}
