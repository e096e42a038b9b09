package handler

import (
	"net/http"

	"store-app/internal/auth"
	"store-app/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Base
}

func NewAuthHandler(base Base) *AuthHandler {
	return &AuthHandler{Base: base}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.render(c, "login.html", "Login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	role, ok := auth.Authenticate(username, password)
	if !ok {
		h.Logger.Info("Login rejected", zap.String("username", username), zap.String("client_ip", c.ClientIP()))
		h.flash(c, "danger", "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := session.SetRole(c, role); err != nil {
		h.internalError(c, err)
		return
	}
	h.Logger.Info("Login succeeded", zap.String("role", string(role)))
	c.Redirect(http.StatusFound, role.Home())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		h.internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
