package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct{}

func (h *PublicHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *PublicHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
