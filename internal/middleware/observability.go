package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietRoutes are logged at debug level only
var quietRoutes = map[string]bool{
	"/api/healthcheck": true,
	"/api/metrics":     true,
}

// sensitiveFormFields never appear in request logs
var sensitiveFormFields = map[string]bool{
	"formtoken": true, "g-recaptcha-response": true, "token": true,
}

// ObservabilityMiddleware records request metrics and writes one log line per request
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Route is unknown until after routing, so the gauge is by method only
		metrics.ActiveRequests.WithLabelValues(method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method).Dec()

		c.Next()

		route := routeLabel(c)
		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, statusStr).Inc()

		if quietRoutes[route] && status < 400 {
			logger.Debug("HTTP request",
				zap.String("method", method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", status))
			return
		}

		fields := []zap.Field{
			zap.String("route", route),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if status >= 400 {
			if query := redactedQuery(c); len(query) > 0 {
				fields = append(fields, zap.Any("query_params", query))
			}
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("error", c.Errors.String()))
			}
		}

		logger.LogHTTPRequest(method, c.Request.URL.Path, status, duration, fields...)
	}
}

// routeLabel is the matched route template, which keeps metric cardinality bounded
func routeLabel(c *gin.Context) string {
	route := c.FullPath()
	switch {
	case strings.HasPrefix(route, "/static"):
		return "/static"
	case route == "":
		return "unmatched"
	default:
		return route
	}
}

func redactedQuery(c *gin.Context) map[string]string {
	query := c.Request.URL.Query()
	out := make(map[string]string, len(query))
	for k, v := range query {
		if !sensitiveFormFields[strings.ToLower(k)] && len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
