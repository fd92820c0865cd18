package query

import (
	"fmt"
	"strings"

	"eventbackend/internal/domain"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection defaults to Asc for anything other than "desc".
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

type SortExpression struct {
	Field     string
	Direction Direction
}

// ParseSort parses "field" or "field:direction". An empty input means no
// explicit ordering and returns nil.
func ParseSort(raw string) (*SortExpression, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	field, dir, _ := strings.Cut(raw, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, domain.ValidationError{Field: "sort", Msg: fmt.Sprintf("sort %q has an empty field", raw)}
	}
	return &SortExpression{Field: field, Direction: ParseDirection(dir)}, nil
}
