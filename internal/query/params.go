// internal/query/params.go
package query

// Params carries the roll-call search parameters. Every field is optional,
// but at least one must be set.
type Params struct {
	// Query is the free-text clause, passed through to the server's
	// boolean grammar (quoted phrases, field:value terms, AND/OR).
	Query string

	// StartDate and EndDate accept partial precision: YYYY, YYYY-MM or
	// YYYY-MM-DD.
	StartDate string
	EndDate   string

	// Congress lists congress numbers, OR-combined within one clause.
	Congress []int

	// Chamber is "house" or "senate", case-insensitive.
	Chamber string

	// MinSupport and MaxSupport bound the Yea percentage, each in
	// [0,100]. When only one bound is set the other defaults to the end
	// of the scale.
	MinSupport *float64
	MaxSupport *float64
}

func (p Params) isEmpty() bool {
	return p.Query == "" &&
		p.StartDate == "" &&
		p.EndDate == "" &&
		len(p.Congress) == 0 &&
		p.Chamber == "" &&
		p.MinSupport == nil &&
		p.MaxSupport == nil
}
