package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Arithmetic(t *testing.T) {
	for page := 1; page <= 6; page++ {
		for limit := 1; limit <= 12; limit++ {
			for total := 0; total <= 40; total++ {
				offset, pages := Paginate(page, limit, total)
				assert.Equal(t, (page-1)*limit, offset)
				assert.Equal(t, int(math.Ceil(float64(total)/float64(limit))), pages)
			}
		}
	}
}

func TestPaginate_ClampsNonPositive(t *testing.T) {
	offset, pages := Paginate(0, 0, 5)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 5, pages)

	offset, pages = Paginate(-3, 10, -1)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, pages)
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, limit string
		want        PageRequest
	}{
		{"", "", PageRequest{Page: 1, Limit: 10}},
		{"abc", "xyz", PageRequest{Page: 1, Limit: 10}},
		{"3", "25", PageRequest{Page: 3, Limit: 25}},
		{"0", "0", PageRequest{Page: 1, Limit: 10}},
		{"-2", "-5", PageRequest{Page: 1, Limit: 1}},
		{" 2 ", "1000", PageRequest{Page: 2, Limit: MaxLimit}},
		{"1000000000000000000", "10", PageRequest{Page: MaxPage, Limit: 10}},
		{"99999999999999999999999", "10", PageRequest{Page: 1, Limit: 10}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePage(tc.page, tc.limit), "page=%q limit=%q", tc.page, tc.limit)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
}

func TestPaginate_LargePagesNeverGoNegative(t *testing.T) {
	p := ParsePage("1000000000000000000", "100")
	offset, _ := Paginate(p.Page, p.Limit, 25)
	assert.Equal(t, (p.Page-1)*p.Limit, offset)
	assert.Greater(t, offset, 0)

	offset, pages := Paginate(math.MaxInt, 10, 25)
	assert.Equal(t, math.MaxInt, offset)
	assert.Equal(t, 3, pages)
}
