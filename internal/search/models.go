// internal/search/models.go
package search

import "voteview-client/internal/table"

// rollCallResponse mirrors the search endpoint payload.
type rollCallResponse struct {
	RecordCount  int            `json:"recordcount"`
	ErrorMessage string         `json:"errormessage"`
	RollCalls    []table.Record `json:"rollcalls"`
}

// memberResponse mirrors the members endpoint payload.
type memberResponse struct {
	Results []table.Record `json:"results"`
}

// MemberQuery carries the member-search form fields. Every field is
// optional; the server decides which combinations make sense, so nothing
// is validated client-side.
type MemberQuery struct {
	Name     string
	ICPSR    string
	State    string
	Congress string
	CQLabel  string
	Chamber  string
}

// Result is a flattened search response. Query is the exact string sent
// to the server, retrievable without re-deriving it. Warning carries a
// non-fatal server message delivered alongside usable results.
type Result struct {
	Table   *table.Table
	Query   string
	Count   int
	Warning string
}
