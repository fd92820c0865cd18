package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbackend/internal/http/middleware"
	"eventbackend/internal/utils"
)

// GET /api/users/getAllUsers
func (h Handler) GetAllUsers(c *gin.Context) {
	res, err := h.Users.List(c.Request.Context(), listRequest(c, false))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/users/filterUsers
func (h Handler) FilterUsers(c *gin.Context) {
	res, err := h.Users.List(c.Request.Context(), listRequest(c, true))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/users/totalUsers
func (h Handler) TotalUsers(c *gin.Context) {
	res, err := h.Users.Count(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/users/:id
func (h Handler) GetUser(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/:id
func (h Handler) UpdateUser(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	user, err := h.Users.Update(c.Request.Context(), c.Param("id"), fields, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if h.Log != nil {
		utils.LogEvent(h.Log, middleware.GetRequestID(c), "users", "update", "user "+user.ID+" updated")
	}
	c.JSON(http.StatusOK, user)
}
