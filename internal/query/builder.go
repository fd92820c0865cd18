package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
)

// Statement holds the two queries behind one page: the filtered count and
// the filtered, ordered, limited row query.
type Statement struct {
	CountSQL  string
	CountArgs []any
	PageSQL   string
	PageArgs  []any
}

// Build validates f and s against the collection allow-list and renders the
// count and page queries for dialect d.
func Build(c Collection, d intdb.Dialect, f FilterExpression, s *SortExpression, p PageRequest) (Statement, error) {
	preds, err := Predicates(c, d, f)
	if err != nil {
		return Statement{}, err
	}
	order, err := OrderBy(c, d, s)
	if err != nil {
		return Statement{}, err
	}

	cols := c.Selectable()
	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = d.Quote(col)
	}

	count := d.Builder().Select("COUNT(*)").From(d.Table(c.Table))
	page := d.Builder().Select(quoted...).From(d.Table(c.Table))
	for _, pred := range preds {
		count = count.Where(pred)
		page = page.Where(pred)
	}
	page = page.OrderBy(order...).
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset()))

	var st Statement
	if st.CountSQL, st.CountArgs, err = count.ToSql(); err != nil {
		return Statement{}, domain.InternalError{Msg: "build count query", Err: err}
	}
	if st.PageSQL, st.PageArgs, err = page.ToSql(); err != nil {
		return Statement{}, domain.InternalError{Msg: "build page query", Err: err}
	}
	return st, nil
}

// Predicates turns every clause into a squirrel predicate. Unknown fields and
// values that do not fit the column type are validation errors.
func Predicates(c Collection, d intdb.Dialect, f FilterExpression) ([]sq.Sqlizer, error) {
	out := make([]sq.Sqlizer, 0, len(f))
	for _, clause := range f {
		col, ok := c.Column(clause.Field)
		if !ok {
			return nil, domain.ValidationError{
				Field: clause.Field,
				Msg:   fmt.Sprintf("unknown field %q for %s", clause.Field, c.Name),
			}
		}
		pred, err := predicate(d, col, clause)
		if err != nil {
			return nil, err
		}
		out = append(out, pred)
	}
	return out, nil
}

func predicate(d intdb.Dialect, col Column, clause Clause) (sq.Sqlizer, error) {
	name := d.Quote(col.Name)

	if clause.Op == OpLike {
		pattern := "%" + clause.Value + "%"
		if col.Kind == KindText {
			return sq.Like{name: pattern}, nil
		}
		return sq.Expr(d.TextCast(name)+" LIKE ?", pattern), nil
	}

	if clause.Null {
		if clause.Op == OpNe {
			return sq.NotEq{name: nil}, nil
		}
		return sq.Eq{name: nil}, nil
	}

	v, err := Convert(col, clause.Value)
	if err != nil {
		return nil, err
	}

	switch clause.Op {
	case OpEq:
		return sq.Eq{name: v}, nil
	case OpNe:
		return sq.NotEq{name: v}, nil
	case OpGt:
		return sq.Gt{name: v}, nil
	case OpLt:
		return sq.Lt{name: v}, nil
	case OpGte:
		return sq.GtOrEq{name: v}, nil
	case OpLte:
		return sq.LtOrEq{name: v}, nil
	}
	return nil, domain.ValidationError{Field: col.Name, Msg: fmt.Sprintf("unsupported operator %q", clause.Op)}
}

// OrderBy renders the sort expression followed by the primary key so that
// pages stay stable when the sort column has duplicates.
func OrderBy(c Collection, d intdb.Dialect, s *SortExpression) ([]string, error) {
	pk := d.Quote(c.PrimaryKey) + " " + string(Asc)
	if s == nil {
		return []string{pk}, nil
	}

	col, ok := c.Column(s.Field)
	if !ok {
		return nil, domain.ValidationError{
			Field: "sort",
			Msg:   fmt.Sprintf("unknown sort field %q for %s", s.Field, c.Name),
		}
	}
	dir := s.Direction
	if dir != Desc {
		dir = Asc
	}
	first := d.Quote(col.Name) + " " + string(dir)
	if col.Name == c.PrimaryKey {
		return []string{first}, nil
	}
	return []string{first, pk}, nil
}
