package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
	"github.com/lakshanchamidu/Blog-Platform/pkg/response"
)

// CtxUserIDKey is the gin context key the guard sets on success.
const CtxUserIDKey = "userID"

// Auth is the authorization guard: it extracts the bearer token from the
// Authorization header, verifies it, and injects the user id into the
// context. It is a pure gate — no storage access. The client-visible
// response is a uniform 401; the failure reason (missing, malformed,
// expired, invalid) is only logged.
func Auth(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, logger, "missing")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			reject(c, logger, "malformed")
			return
		}

		claims, err := jwt.Parse(parts[1])
		if err != nil {
			reason := "invalid"
			if helpers.IsExpired(err) {
				reason = "expired"
			}
			reject(c, logger, reason)
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func reject(c *gin.Context, logger *logrus.Logger, reason string) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"reason": reason,
			"path":   c.Request.URL.Path,
		}).Debug("bearer token rejected")
	}
	response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
}
