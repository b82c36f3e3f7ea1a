package server

import (
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/carta/internal/ownerctx"
)

const contextUserIDKey = "user_id"

// WebAuthRequired resolves the session cookie and injects the owner ID
// into the request context. No valid session means no store access.
func (s *Server) WebAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, session.UserID.String())
		c.Request = c.Request.WithContext(ownerctx.WithOwner(c.Request.Context(), session.UserID))
		c.Next()
	}
}
