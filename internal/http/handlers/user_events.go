package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbackend/internal/http/middleware"
	"eventbackend/internal/utils"
)

// GET /api/userEvents/getAllUserEvents
func (h Handler) GetAllUserEvents(c *gin.Context) {
	res, err := h.Events.List(c.Request.Context(), c.Query("page"), c.Query("limit"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/userEvents/totalUserEvents
func (h Handler) TotalUserEvents(c *gin.Context) {
	res, err := h.Events.Count(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /api/userEvents/:id
func (h Handler) UpdateUserEvent(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	ev, err := h.Events.Update(c.Request.Context(), c.Param("id"), fields, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if h.Log != nil {
		utils.LogEvent(h.Log, middleware.GetRequestID(c), "user_events", "update", "user event "+c.Param("id")+" updated")
	}
	c.JSON(http.StatusOK, ev)
}
