package handlers

import (
	"net/http"

	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHandler issues anonymous guest session tokens. The storefront has
// no accounts; carts, wishlists, and subscriptions hang off these sessions.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// CreateSession mints a new guest session and returns its signed token.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	logger := getLogger(c)

	sessionID := uuid.New().String()
	token, err := utils.GenerateSessionToken(sessionID, utils.SessionTokenTTL)
	if err != nil {
		logger.Error("Failed to generate session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"token":     token,
	})
}

// sessionFromRequest resolves the guest session ID from the X-Session-Token
// header. It writes the error response itself when the token is absent or
// invalid.
func sessionFromRequest(c *gin.Context) (string, bool) {
	token := c.GetHeader("X-Session-Token")
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Missing session token", "set the X-Session-Token header")
		return "", false
	}
	sessionID, err := utils.SessionIDFromToken(token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid session token", err.Error())
		return "", false
	}
	return sessionID, true
}
