package handlers

import (
	"net/http"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var env intconfig.Env

// Configure hands the loaded environment to the handlers package. Called
// once from the router before any route is mounted.
func Configure(e intconfig.Env) {
	env = e
}

// JWTSecret exposes the signing key to the auth middleware wiring.
func JWTSecret() []byte {
	return []byte(env.JWTSecret)
}

// RespondOK wraps data in the standard success envelope.
func RespondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondMessage is for actions whose result is just a confirmation.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
