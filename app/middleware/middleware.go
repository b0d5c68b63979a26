package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"snapfeed/app/models"
	"snapfeed/app/token"
)

type ctxKey int

const authKey ctxKey = iota

// Authenticate resolves the bearer credential into an AuthContext on the
// request context. It never rejects: a missing, malformed or expired token
// only yields an unauthenticated context, and each operation decides for
// itself whether that is an error.
func Authenticate(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := models.AuthContext{}

			header := r.Header.Get("Authorization")
			if header != "" {
				raw := strings.TrimPrefix(header, "Bearer ")
				if identity, ok := tokens.Verify(raw); ok {
					auth.IsAuthenticated = true
					auth.UserID = identity.UserID
				}
			}

			ctx := context.WithValue(r.Context(), authKey, auth)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthFrom returns the AuthContext resolved by Authenticate, or an
// unauthenticated context if the middleware never ran.
func AuthFrom(ctx context.Context) models.AuthContext {
	if auth, ok := ctx.Value(authKey).(models.AuthContext); ok {
		return auth
	}
	return models.AuthContext{}
}

// WithAuth stores an AuthContext on ctx. Used by tests and by the GraphQL
// boundary when it forwards the request context.
func WithAuth(ctx context.Context, auth models.AuthContext) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// Logger logs information about each request
func Logger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request handled")
		})
	}
}

// Recoverer recovers from panics and logs the error
func Recoverer(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithField("panic", err).Error("request panicked")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORS allows cross-origin requests from any domain and short-circuits
// preflight requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET, POST, PUT, PATCH, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
