package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Chain returns the global middleware in installation order. Recovery sits inside
// the access log and metrics so a recovered panic is still logged and counted as a 500.
// metrics may be nil.
func Chain(lgr zerolog.Logger, corsOrigins []string, metrics *Metrics) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{RequestID(), RequestLogger(lgr)}
	if metrics != nil {
		chain = append(chain, metrics.Middleware())
	}
	return append(chain, Recovery(), CORS(corsOrigins))
}
