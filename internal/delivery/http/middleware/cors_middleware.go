package middleware

import (
	"net/http"
	"strings"
)

type CORSMiddleware struct {
	allowedOrigins []string
}

// NewCORSMiddleware allows the given comma separated origins. "*" allows any.
func NewCORSMiddleware(origins string) *CORSMiddleware {
	var allowed []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			allowed = append(allowed, origin)
		}
	}
	return &CORSMiddleware{allowedOrigins: allowed}
}

// match reports whether origin is allowed and whether it matched only through "*".
func (m *CORSMiddleware) match(origin string) (allowed, wildcard bool) {
	for _, candidate := range m.allowedOrigins {
		if candidate == origin {
			return true, false
		}
		if candidate == "*" {
			wildcard = true
		}
	}
	return wildcard, wildcard
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if allowed, wildcard := m.match(origin); origin != "" && allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if !wildcard {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
