package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const usernameContextKey = "username"

// bearerAuth verifies the Authorization header and stores the token
// subject in the request context. Verification trusts only the HS256
// signature; the token cached on the user row plays no part here.
func (s *Server) bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "missing bearer token"})
		}

		username, err := auth.UsernameFromToken(token, s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid token"})
		}

		c.Set(usernameContextKey, username)
		return next(c)
	}
}

// requestLogger logs one line per request through the project logger.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info(c.Request().Context(), "request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start).String(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return nil
	}
}
