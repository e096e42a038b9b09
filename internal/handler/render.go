package handler

import (
	"errors"
	"net/http"

	"store-app/internal/models"
	"store-app/internal/session"
	"store-app/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Base carries what every page handler needs besides the service.
type Base struct {
	Site   models.SiteInfo
	Logger *zap.Logger
}

// render fills the layout fields (site, role, pending flashes) and writes the
// named template.
func (b *Base) render(c *gin.Context, name, title string, data gin.H) {
	flashes, err := session.Flashes(c)
	if err != nil {
		b.Logger.Warn("Failed to save session after reading flashes", zap.Error(err))
	}
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = b.Site
	data["Title"] = title
	data["Role"] = string(session.Load(c).Role)
	data["Flashes"] = flashes
	c.HTML(http.StatusOK, name, data)
}

// badInput fails the request on malformed form input.
func (b *Base) badInput(c *gin.Context, err error) {
	var pe *utils.ParseError
	if errors.As(err, &pe) {
		c.Error(err)
		c.String(http.StatusBadRequest, "Bad Request: %s", pe.Error())
		c.Abort()
		return
	}
	b.internalError(c, err)
}

func (b *Base) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
	c.Abort()
}

func (b *Base) internalError(c *gin.Context, err error) {
	c.Error(err)
	b.Logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}

// flash queues a notice; a failed session save is logged, not fatal.
func (b *Base) flash(c *gin.Context, category, message string) {
	if err := session.AddFlash(c, category, message); err != nil {
		b.Logger.Warn("Failed to store flash message", zap.Error(err))
	}
}
