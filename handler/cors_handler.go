package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CorsHandler allows every origin, method and header, with credentials.
// The open posture is deliberate for the browser client and should be
// narrowed before exposing the service beyond it.
type CorsHandler struct{}

func NewCorsHandler() *CorsHandler {
	return &CorsHandler{}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	header := c.Writer.Header()

	// A wildcard origin is not honoured by browsers for credentialed
	// requests, so the caller's origin is echoed instead.
	if origin := c.Request.Header.Get("Origin"); origin != "" {
		header.Set("Access-Control-Allow-Origin", origin)
		header.Add("Vary", "Origin")
	} else {
		header.Set("Access-Control-Allow-Origin", "*")
	}
	header.Set("Access-Control-Allow-Credentials", "true")

	if c.Request.Method == http.MethodOptions && c.Request.Header.Get("Access-Control-Request-Method") != "" {
		header.Set("Access-Control-Allow-Methods", "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT")
		if reqHeaders := c.Request.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
			header.Set("Access-Control-Allow-Headers", reqHeaders)
		}
		header.Set("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Next()
}
