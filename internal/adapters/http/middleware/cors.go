package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig selects who may call the API from a browser.
type CORSConfig struct {
	// AllowAll permits any origin, method and header.
	AllowAll bool

	// AllowedOrigins applies when AllowAll is false. Empty disables CORS
	// headers entirely.
	AllowedOrigins []string
}

// CORS answers preflight requests and adds the CORS response headers.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", HeaderRequestID, HeaderCorrelationID},
		ExposeHeaders: []string{
			"Location", HeaderRequestID, HeaderCorrelationID,
		},
		MaxAge: 12 * time.Hour,
	}

	switch {
	case cfg.AllowAll:
		c.AllowAllOrigins = true
		c.AllowHeaders = []string{"*"}
	case len(cfg.AllowedOrigins) > 0:
		c.AllowOrigins = cfg.AllowedOrigins
	default:
		return func(c *gin.Context) { c.Next() }
	}

	return cors.New(c)
}
