package query

import (
	"fmt"
	"strings"

	"eventbackend/internal/domain"
)

// NullSentinel is the filter value meaning SQL NULL rather than a string.
const NullSentinel = "[null]"

type Operator string

const (
	OpEq   Operator = "eq"
	OpNe   Operator = "ne"
	OpGt   Operator = "gt"
	OpLt   Operator = "lt"
	OpGte  Operator = "gte"
	OpLte  Operator = "lte"
	OpLike Operator = "like"
)

func ParseOperator(s string) (Operator, bool) {
	switch op := Operator(strings.ToLower(strings.TrimSpace(s))); op {
	case OpEq, OpNe, OpGt, OpLt, OpGte, OpLte, OpLike:
		return op, true
	}
	return "", false
}

// Clause is one field:operator:value unit. Null is set when the value was the
// [null] sentinel on an eq/ne clause; Value is empty in that case.
type Clause struct {
	Field string
	Op    Operator
	Value string
	Null  bool
}

// FilterExpression is the ordered list of clauses. Clauses are combined with
// AND, including repeated clauses on the same field.
type FilterExpression []Clause

type ParseOptions struct {
	// Strict rejects unknown operators instead of skipping the clause.
	Strict bool
}

// ParseFilters parses "field:op:value,field:op:value". Only the first two
// colons split a clause, so values may contain colons. A clause without three
// parts is a validation error; a clause with an unknown operator is skipped
// unless opts.Strict is set.
func ParseFilters(raw string, opts ParseOptions) (FilterExpression, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var out FilterExpression
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		pieces := strings.SplitN(part, ":", 3)
		if len(pieces) != 3 {
			return nil, domain.ValidationError{
				Field: "filters",
				Msg:   fmt.Sprintf("clause %q must have the form field:operator:value", part),
			}
		}

		field := strings.TrimSpace(pieces[0])
		if field == "" {
			return nil, domain.ValidationError{Field: "filters", Msg: fmt.Sprintf("clause %q has an empty field", part)}
		}

		op, ok := ParseOperator(pieces[1])
		if !ok {
			if opts.Strict {
				return nil, domain.ValidationError{
					Field: "filters",
					Msg:   fmt.Sprintf("unknown operator %q on field %s", pieces[1], field),
				}
			}
			continue
		}

		clause := Clause{Field: field, Op: op, Value: pieces[2]}
		if pieces[2] == NullSentinel && (op == OpEq || op == OpNe) {
			clause.Null = true
			clause.Value = ""
		}
		out = append(out, clause)
	}
	return out, nil
}
