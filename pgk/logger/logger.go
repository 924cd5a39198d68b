package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

func New() (*zap.SugaredLogger, error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return lg.Sugar(), nil
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// LoggingMiddleware logs every request with its status, size and duration.
func LoggingMiddleware(lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rd := &responseData{status: http.StatusOK}
			lw := &loggingResponseWriter{
				ResponseWriter: w,
				responseData:   rd,
			}

			next.ServeHTTP(lw, r)

			lg.Infof("request-> uri: %s, method: %s, status: %d, size: %d, duration: %s",
				r.RequestURI,
				r.Method,
				rd.status,
				rd.size,
				time.Since(start),
			)
		})
	}
}
