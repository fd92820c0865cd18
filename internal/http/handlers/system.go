package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/repositories"
)

func (h Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the pool and reports whether the Users table is reachable.
func (h Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not connected")
		return
	}
	ctx := c.Request.Context()

	if err := h.DB.PingContext(ctx); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed")
		return
	}

	ok, err := intdb.HasTable(ctx, h.DB, h.Dialect, repositories.UsersCollection.Table)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ok {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "table "+repositories.UsersCollection.Table+" not found")
		return
	}

	count, err := h.Users.Count(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "driver": h.Dialect.Driver, "usersInDb": count.TotalCount})
}
