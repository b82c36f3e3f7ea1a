package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PublicMenu serves the read-only menu tree for a restaurant slug.
func (s *Server) PublicMenu(c *gin.Context) {
	view, err := s.menuSvc.BySlug(c.Request.Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}
