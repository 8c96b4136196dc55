package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/awakentax/crypto-tax-go/pkg/log"
	"github.com/awakentax/crypto-tax-go/pkg/uuid"
)

const requestIDHeader = "X-Request-Id"

func ZapLogger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewUUID()
		w.Header().Set(requestIDHeader, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor) // save a response status
		logCtx := log.ToContext(r.Context(), log.Default().With("request", requestID))

		next.ServeHTTP(ww, r.WithContext(logCtx))

		logger := log.ExtractLogger(logCtx) // fields added by the handlers
		logger.Infow(
			r.Method+" "+r.Host+r.RequestURI,
			"status", ww.Status(),
			"ip", r.RemoteAddr,
			"latency", time.Since(start),
		)
	}
	return http.HandlerFunc(fn)
}
