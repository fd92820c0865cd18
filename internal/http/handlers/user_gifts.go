package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/userGifts/getAllUserGifts
func (h Handler) GetAllUserGifts(c *gin.Context) {
	res, err := h.Gifts.List(c.Request.Context(), listRequest(c, false))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/userGifts/filterUserGifts
func (h Handler) FilterUserGifts(c *gin.Context) {
	res, err := h.Gifts.List(c.Request.Context(), listRequest(c, true))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/userGifts/getTotalUserGifts
func (h Handler) TotalUserGifts(c *gin.Context) {
	res, err := h.Gifts.Count(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
