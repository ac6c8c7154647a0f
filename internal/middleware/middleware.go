package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"golang.org/x/time/rate"
)

// SessionResolver authenticates a request from its cookies. Implemented
// by auth.TokenManager; declared here so the middleware stays free of a
// dependency on the auth package.
type SessionResolver interface {
	Resolve(w http.ResponseWriter, r *http.Request) (utils.Identity, bool)
}

// RequireAuth is the gatekeeping filter in front of every protected
// route. Resolution may silently renew the cookie pair as a side effect;
// an unauthenticated request never reaches the inner handler.
func RequireAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := resolver.Resolve(w, r)
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextIdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var allowed = map[string]struct{}{
	"http://localhost:3000":  {},
	"http://localhost:5173":  {},
	"https://dwzizi.com":     {},
	"https://www.dwzizi.com": {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it's on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginRateLimit caps login attempts per client IP: 1 request/sec
// sustained with a burst of 5. Buckets live for the process lifetime;
// the key space is bounded by the number of distinct client IPs hitting
// a single login endpoint.
func LoginRateLimit() func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(1), 5)
			limiters[ip] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiterFor(ip).Allow() {
				w.Header().Set("Retry-After", "1")
				utils.WriteError(w, http.StatusTooManyRequests, "Too many login attempts")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
