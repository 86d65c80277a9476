package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/socialgraph/metrics"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "request_id"

// requestID reuses an incoming X-Request-ID or mints a UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// accessLog writes one structured line per request and records HTTP metrics.
func accessLog(log *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		took := time.Since(start)
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(took.Seconds())

		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("took", took),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// limiter is a token bucket whose limits can be changed while serving.
type limiter struct {
	mu sync.RWMutex
	rl *rate.Limiter
}

// newLimiter builds a bucket; perSecond ≤ 0 disables limiting.
func newLimiter(perSecond float64, burst int) *limiter {
	l := &limiter{}
	l.set(perSecond, burst)

	return l
}

func (l *limiter) set(perSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if perSecond <= 0 {
		l.rl = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	if l.rl == nil {
		l.rl = rate.NewLimiter(rate.Limit(perSecond), burst)
		return
	}
	l.rl.SetLimit(rate.Limit(perSecond))
	l.rl.SetBurst(burst)
}

func (l *limiter) allow() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.rl == nil || l.rl.Allow()
}

// rateLimit answers 429 once the bucket is empty.
func rateLimit(l *limiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow() {
			m.RateLimited.Inc()
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error:     "rate limit exceeded",
				Code:      "RATE_LIMITED",
				RequestID: getRequestID(c),
			})
			return
		}
		c.Next()
	}
}
