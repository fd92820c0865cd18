package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
	"eventbackend/internal/query"
	"eventbackend/internal/services"
)

// Handler carries the services the HTTP endpoints delegate to.
type Handler struct {
	Users  services.UserService
	Events services.UserEventService
	Gifts  services.UserGiftService
	Auth   services.AuthService

	DB      *sqlx.DB
	Dialect intdb.Dialect
	Log     *logrus.Entry
}

// listRequest reads the raw list parameters from the query string.
func listRequest(c *gin.Context, withFilters bool) query.Request {
	req := query.Request{
		Sort:  c.Query("sort"),
		Page:  c.Query("page"),
		Limit: c.Query("limit"),
	}
	if withFilters {
		req.Filters = c.Query("filters")
	}
	return req
}

// bindFields decodes a partial-update body. Anything but a JSON object is
// rejected.
func bindFields(c *gin.Context) (map[string]any, error) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, domain.ValidationError{Field: "body", Msg: "update body must be a JSON object", Err: err}
	}
	return fields, nil
}
