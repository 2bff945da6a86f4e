package middleware

import (
	"errors"
	"net/http"
	"strings"

	"seat-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller's free-text identifier. It is not verified.
const UserIDHeader = "X-User-ID"

const (
	ctxUserIDKey = "user_id"

	MinUserIDLength = 3
)

var (
	errUserIDRequired = errors.New("user id header missing")
	errUserIDTooShort = errors.New("user id too short")
)

// RequireUser rejects requests without a usable X-User-ID and stores the
// trimmed id in the context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))

		if userID == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, "USER_ID_REQUIRED", errUserIDRequired, "User ID is required", nil)
			return
		}
		if len(userID) < MinUserIDLength {
			httperr.AbortWithCode(c, http.StatusBadRequest, "USER_ID_TOO_SHORT", errUserIDTooShort, "User ID must be at least 3 characters long", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}
