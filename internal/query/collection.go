package query

import (
	"strings"
)

// Kind is the storage type of a column. Filter values are converted to it
// before they reach the driver.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindTime:
		return "timestamp"
	default:
		return "text"
	}
}

type Column struct {
	Name      string
	Kind      Kind
	Nullable  bool
	Updatable bool
	// Hidden columns are never selected, filtered or sorted on.
	Hidden bool
}

// Collection describes a table and the static allow-list of its columns.
type Collection struct {
	Name       string
	Table      string
	PrimaryKey string
	Columns    []Column
}

// Column resolves name against the allow-list, case-insensitively, and returns
// the canonical column. Hidden columns are treated as unknown.
func (c Collection) Column(name string) (Column, bool) {
	name = strings.TrimSpace(name)
	for _, col := range c.Columns {
		if col.Hidden {
			continue
		}
		if col.Name == name || strings.EqualFold(col.Name, name) {
			return col, true
		}
	}
	return Column{}, false
}

// Selectable lists the visible column names in declaration order.
func (c Collection) Selectable() []string {
	out := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		if !col.Hidden {
			out = append(out, col.Name)
		}
	}
	return out
}

// Updatable returns the column if it may be written by a partial update.
func (c Collection) Updatable(name string) (Column, bool) {
	col, ok := c.Column(name)
	if !ok || !col.Updatable {
		return Column{}, false
	}
	return col, true
}
