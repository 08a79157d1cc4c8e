package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/service"
	"jeopardy-server/internal/transport/rest/handler"
	"jeopardy-server/internal/transport/rest/middleware"
	"jeopardy-server/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService *service.AuthService
	GameService *service.GameService
	Leaderboard cache.LeaderboardCache
	WSHub       *ws.Hub
	Logger      zerolog.Logger
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	gameHandler := handler.NewGameHandler(c.GameService, c.Leaderboard)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)
	r.Use(requestLogger(c.Logger))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/leaderboard", gameHandler.Leaderboard).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/game", wsHandler.GameWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Game routes (require session auth)
	gameRoutes := v1.NewRoute().Subrouter()
	gameRoutes.Use(authMW.RequireSession)

	gameRoutes.HandleFunc("/game", gameHandler.Current).Methods("GET", "OPTIONS")
	gameRoutes.HandleFunc("/game/new", gameHandler.New).Methods("POST", "OPTIONS")
	gameRoutes.HandleFunc("/game/question", gameHandler.Choose).Methods("POST", "OPTIONS")
	gameRoutes.HandleFunc("/game/answers", gameHandler.Submit).Methods("POST", "OPTIONS")
	gameRoutes.HandleFunc("/game/result", gameHandler.Result).Methods("GET", "OPTIONS")

	return r
}

func requestLogger(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
