package api

import (
	"net/http"

	"github.com/Domenick1991/airdesk/internal/theme"
	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	state *theme.State
}

func NewThemeHandler(state *theme.State) *ThemeHandler {
	return &ThemeHandler{state: state}
}

func (h *ThemeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.get)
	router.POST("/toggle", h.toggle)
}

func (h *ThemeHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.state.Mode()})
}

func (h *ThemeHandler) toggle(c *gin.Context) {
	mode, err := h.state.Toggle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "theme": mode})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": mode})
}
