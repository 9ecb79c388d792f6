package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"task-reminder/pkg/response"
)

const (
	APIKeyHeader         = "X-API-Key"
	TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"
)

// Auth requires the X-API-Key header to match the configured key.
// With no key configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}
		if !secretEqual(c.GetHeader(APIKeyHeader), m.apiKey) {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// TelegramSecret checks the secret token Telegram echoes on every webhook call.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}
		if !secretEqual(c.GetHeader(TelegramSecretHeader), m.telegramSecret) {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

func secretEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
