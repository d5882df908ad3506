package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/o11y"
)

func metricsHandler(obs *o11y.Observability) gin.HandlerFunc {
	h := promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
