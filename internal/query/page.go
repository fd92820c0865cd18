package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit representable for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	offset, _ := Paginate(p.Page, p.Limit, 0)
	return offset
}

// ParsePage reads page and limit from untrusted query values. Missing,
// non-numeric and zero values fall back to the defaults; negative values are
// clamped to 1, page is capped at MaxPage and limit at MaxLimit.
func ParsePage(rawPage, rawLimit string) PageRequest {
	return PageRequest{
		Page:  parsePositive(rawPage, DefaultPage, MaxPage),
		Limit: parsePositive(rawLimit, DefaultLimit, MaxLimit),
	}
}

func parsePositive(raw string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil || n == 0:
		n = def
	case n < 0:
		n = 1
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// Paginate returns the row offset of page and the number of pages needed for
// total rows. page and limit below 1 are treated as 1. An offset that does
// not fit in an int saturates at math.MaxInt, which is past any real table.
func Paginate(page, limit, total int) (offset, totalPages int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if total < 0 {
		total = 0
	}
	if page-1 > math.MaxInt/limit {
		offset = math.MaxInt
	} else {
		offset = (page - 1) * limit
	}
	totalPages = (total + limit - 1) / limit
	return offset, totalPages
}
