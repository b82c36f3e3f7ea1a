package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/carta/internal/auth/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"user_id":    result.UserID.String(),
		"expires_at": result.ExpiresAt,
	}})
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.sessions.ReadToken(c); ok {
		if err := s.authsvc.Logout(c.Request.Context(), token); err != nil {
			AbortWithError(c, err)
			return
		}
	}
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"logged_out": true}})
}

func (s *Server) Me(c *gin.Context) {
	userID, err := snowflake.ParseString(c.GetString(contextUserIDKey))
	if err != nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.authsvc.Owner(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}})
}
