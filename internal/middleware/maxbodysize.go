package middleware

import "net/http"

// tooLargeBody matches the error envelope the handlers write.
const tooLargeBody = `{"error":{"code":"request_too_large","message":"request body is too large"}}` + "\n"

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes. Requests advertising a larger Content-Length are
// rejected with 413 before reaching the next handler; bodies of unknown length
// are wrapped in http.MaxBytesReader so the read fails once the limit is passed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				//nolint:errcheck
				w.Write([]byte(tooLargeBody))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
