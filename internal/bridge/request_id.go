package bridge

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"vcshell/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags each request with an identifier, honouring one
// supplied by the caller.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}
