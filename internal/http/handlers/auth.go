package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbackend/internal/domain"
	"eventbackend/internal/http/middleware"
	"eventbackend/internal/utils"
)

type signInRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// POST /api/auth/signin
func (h Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "body", Msg: "invalid sign-in payload", Err: err})
		return
	}

	pair, err := h.Auth.SignIn(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if h.Log != nil {
		utils.LogEvent(h.Log, middleware.GetRequestID(c), "auth", "signin", "user signed in")
	}
	c.JSON(http.StatusOK, pair)
}

// POST /api/auth/refresh
func (h Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		RespondDomainError(c, domain.ValidationError{Field: "refreshToken", Msg: "refreshToken is required", Err: err})
		return
	}

	pair, err := h.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
