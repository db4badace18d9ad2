package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// RequestLogger echoes or assigns X-Request-ID, stores a request-scoped
// logger on the context and writes one access log line per request.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		rid := ctx.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		ctx.Header(RequestIDHeader, rid)

		fields := []zap.Field{zap.String("request_id", rid)}
		if sc := trace.SpanContextFromContext(ctx.Request.Context()); sc.IsValid() {
			fields = append(fields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
		reqLogger := base.With(fields...)
		ctx.Set(loggerKey, reqLogger)

		ctx.Next()

		status := ctx.Writer.Status()
		entry := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("route", routeLabel(ctx)),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", ctx.ClientIP()),
		}
		if user := CurrentUser(ctx); user != nil {
			entry = append(entry, zap.Uint("user_id", user.ID))
		}

		switch {
		case status >= 500:
			reqLogger.Error("request completed", entry...)
		case status >= 400:
			reqLogger.Warn("request completed", entry...)
		default:
			reqLogger.Info("request completed", entry...)
		}
	}
}

// Logger returns the request-scoped logger, or a no-op logger outside
// RequestLogger.
func Logger(ctx *gin.Context) *zap.Logger {
	if v, ok := ctx.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

func routeLabel(ctx *gin.Context) string {
	if route := ctx.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
