package query

import (
	"context"

	"github.com/jmoiron/sqlx"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
)

// Request is the raw, untrusted query-string input of a list endpoint.
type Request struct {
	Filters string
	Sort    string
	Page    string
	Limit   string
}

// Execute counts the rows matching f and loads the requested page. The page
// query is skipped when the offset is past the last row.
func Execute[T any](ctx context.Context, q sqlx.QueryerContext, c Collection, d intdb.Dialect, f FilterExpression, s *SortExpression, p PageRequest) (domain.PagedResult[T], error) {
	st, err := Build(c, d, f, s, p)
	if err != nil {
		return domain.PagedResult[T]{}, err
	}

	var total int
	if err := sqlx.GetContext(ctx, q, &total, st.CountSQL, st.CountArgs...); err != nil {
		return domain.PagedResult[T]{}, domain.InternalError{Msg: "failed to count " + c.Name, Err: err}
	}

	offset, pages := Paginate(p.Page, p.Limit, total)
	items := []T{}
	if offset < total {
		if err := sqlx.SelectContext(ctx, q, &items, st.PageSQL, st.PageArgs...); err != nil {
			return domain.PagedResult[T]{}, domain.InternalError{Msg: "failed to list " + c.Name, Err: err}
		}
	}

	return domain.PagedResult[T]{
		Items:       items,
		TotalCount:  total,
		TotalPages:  pages,
		CurrentPage: p.Page,
	}, nil
}

// HandlePagedQuery parses the raw request and runs it against c.
func HandlePagedQuery[T any](ctx context.Context, q sqlx.QueryerContext, c Collection, d intdb.Dialect, req Request, opts ParseOptions) (domain.PagedResult[T], error) {
	f, err := ParseFilters(req.Filters, opts)
	if err != nil {
		return domain.PagedResult[T]{}, err
	}
	s, err := ParseSort(req.Sort)
	if err != nil {
		return domain.PagedResult[T]{}, err
	}
	return Execute[T](ctx, q, c, d, f, s, ParsePage(req.Page, req.Limit))
}
