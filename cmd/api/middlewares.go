package main

import (
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				w.Header().Set("Connection", "close")
				app.Http.Panic(w, r, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) RateLimiter(next http.Handler) http.Handler {
	if !app.cfg.Limiter.Enabled {
		return next
	}
	const op = "middlewares.RateLimiter"
	log := app.log.With("op", op)
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	clients := make(map[string]*client)
	var mu sync.Mutex
	app.background.Add(1)
	go func() {
		defer app.background.Done()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-app.done:
				return
			case <-ticker.C:
			}
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		mu.Lock()
		c, ok := clients[ip]
		if !ok {
			c = &client{limiter: rate.NewLimiter(rate.Limit(app.cfg.Limiter.Rps), app.cfg.Limiter.Burst)}
			clients[ip] = c
		}
		c.lastSeen = time.Now()
		allowed := c.limiter.Allow()
		mu.Unlock()
		if !allowed {
			log.Warn("rate limit exceeded", "ip", ip)
			app.Http.Response(
				w, r,
				envelop{"error": "rate limit exceeded"},
				"Can't process request see an error below.",
				http.StatusTooManyRequests,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowedOrigin reports whether a browser at origin may call the API. Requests
// without an Origin header come from non-browser or same-origin clients and
// are always allowed. An empty allow-list admits every origin.
func (app *Application) allowedOrigin(origin string) bool {
	if origin == "" || len(app.cfg.CORS.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(app.cfg.CORS.AllowedOrigins, origin)
}

// CORS rejects cross-origin requests from origins outside the allow-list and
// sets the CORS headers for the rest.
func (app *Application) CORS(next http.Handler) http.Handler {
	headers := cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return app.allowedOrigin(origin)
		},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if !app.allowedOrigin(origin) {
			app.log.Warn("origin rejected by CORS policy", "origin", origin)
			app.Http.Forbidden(w, r, "The CORS policy for this application doesn't allow access from origin "+origin)
			return
		}
		headers.ServeHTTP(w, r)
	})
}

// authenticate admits only requests carrying a valid bearer token and
// attaches the token's username to the request context.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.Http.Unauthorized(w, r, "Unauthorized")
			return
		}
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			app.log.Warn("Invalid auth header", "header", authHeader)
			app.Http.Unauthorized(w, r, "Invalid Authorization header, should be 'Bearer <token>'")
			return
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)
		username, err := app.Services.Auth.VerifyToken(token)
		if err != nil {
			app.Http.Unauthorized(w, r, "Invalid or expired token")
			return
		}
		next.ServeHTTP(w, contextSetUsername(r, username))
	})
}

// optionalAuth applies authenticate unless the route was configured public.
func (app *Application) optionalAuth(public bool) func(http.Handler) http.Handler {
	if public {
		return func(next http.Handler) http.Handler { return next }
	}
	return app.authenticate
}
