// internal/query/builder.go
// Package query builds boolean query strings for the voteview search API.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clause is one field-qualified constraint of the query string. The value
// function returns false when its parameter category is unpopulated.
type clause struct {
	field string
	value func(p Params) (string, bool)
}

// clauses run in this exact order; the resulting clause sequence
// (startdate, enddate, congress, support, chamber) is part of the query
// contract.
var clauses = []clause{
	{"startdate", func(p Params) (string, bool) {
		return p.StartDate, p.StartDate != ""
	}},
	{"enddate", func(p Params) (string, bool) {
		return p.EndDate, p.EndDate != ""
	}},
	{"congress", func(p Params) (string, bool) {
		if len(p.Congress) == 0 {
			return "", false
		}
		nums := make([]string, len(p.Congress))
		for i, c := range p.Congress {
			nums[i] = strconv.Itoa(c)
		}
		// space-joined numbers have OR semantics within the clause
		return strings.Join(nums, " "), true
	}},
	{"support", func(p Params) (string, bool) {
		if p.MinSupport == nil && p.MaxSupport == nil {
			return "", false
		}
		min, max := 0.0, 100.0
		if p.MinSupport != nil {
			min = *p.MinSupport
		}
		if p.MaxSupport != nil {
			max = *p.MaxSupport
		}
		return fmt.Sprintf("[%s to %s]", formatNumber(min), formatNumber(max)), true
	}},
	{"chamber", func(p Params) (string, bool) {
		return strings.ToLower(p.Chamber), p.Chamber != ""
	}},
}

// Build validates p and assembles the conjunctive query string. It is a
// pure function of its input.
func Build(p Params) (string, error) {
	if err := validate(p); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if v, ok := c.value(p); ok {
			parts = append(parts, fmt.Sprintf("(%s:%s)", c.field, v))
		}
	}

	out := baseClause(p.Query, len(parts) > 0)
	for _, part := range parts {
		out += " AND " + part
	}
	return out, nil
}

// baseClause returns the leading text clause. With no free text it is an
// empty parenthesis pair, so the string never starts with a bare boolean
// operator once constraint clauses are appended. Free text standing alone
// is passed through unwrapped.
func baseClause(q string, hasConstraints bool) string {
	if q == "" {
		return "()"
	}
	q = normalizeQuotes(q)
	if hasConstraints {
		return "(" + q + ")"
	}
	return q
}

var (
	quoteAfterText = regexp.MustCompile(`([^:\s])'`)
	quoteBeforeGap = regexp.MustCompile(`'(\s|$)`)
)

// normalizeQuotes converts single quotes used as exact-phrase delimiters
// into double quotes. Two passes: first a quote directly following a
// non-colon, non-whitespace character, then a quote directly preceding
// whitespace or end-of-string. The heuristic mis-converts apostrophes
// at clause boundaries; the server grammar tolerates that.
func normalizeQuotes(q string) string {
	q = quoteAfterText.ReplaceAllString(q, `$1"`)
	q = quoteBeforeGap.ReplaceAllString(q, `"$1`)
	return q
}

// formatNumber renders a support bound without a trailing ".0" for whole
// percentages.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
