package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"vanachitra/config"
	"vanachitra/dss"
	"vanachitra/fra"
	"vanachitra/handlers"
	"vanachitra/metrics"
	"vanachitra/middleware"
	"vanachitra/store"
)

type HealthResponse struct {
	Status      string `json:"status"`
	ClaimsCount int    `json:"claims_count"`
	DBStatus    string `json:"db_status"`
	Error       string `json:"error,omitempty"`
}

func healthHandler(manager *fra.Manager, st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:      "ok",
			ClaimsCount: manager.Count(),
		}
		if st == nil {
			response.DBStatus = "not_configured"
		} else if err := st.Ping(); err != nil {
			response.Status = "degraded"
			response.DBStatus = "connection_error"
			response.Error = err.Error()
		} else {
			response.DBStatus = "connected"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// spaHandler serves the react build with index.html fallback for
// client-side routes.
func spaHandler(buildDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(buildDir))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(buildDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		index := filepath.Join(buildDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.Port()

	config.InitCache()
	metrics.Register()

	// Postgres is optional; without it attribute lookups fall back to
	// the JSON cache and deterministic synthesis.
	var st *store.Store
	if dsn := config.DatabaseURL(); dsn != "" {
		log.Println("Initializing PostgreSQL attribute store...")
		var err error
		st, err = store.OpenWithRetry(dsn, config.DBConnectAttempts())
		if err != nil {
			log.Printf("Warning: attribute store unavailable, continuing without it: %v", err)
			st = nil
		} else {
			log.Println("PostgreSQL attribute store initialized successfully")
			defer st.Close()
			if err := st.EnsureSchema(context.Background()); err != nil {
				log.Printf("Warning: failed to ensure schema: %v", err)
			}
		}
	} else {
		log.Println("No DATABASE_URL set, attribute store disabled")
	}

	manager := fra.NewManager(config.ClaimsFile(), config.AnalyticsFile())
	log.Printf("Loaded %d FRA claims", manager.Count())

	resolver := &dss.Resolver{
		Store:     st,
		CachePath: config.PolygonAttributesFile(),
	}

	api := &handlers.API{
		Manager:     manager,
		Resolver:    resolver,
		DataDir:     config.DataDir(),
		SchemesPath: config.SchemesFile(),
		ClaimsPath:  config.ClaimsFile(),
	}

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	if config.CORSDebug() {
		r.Use(middleware.CORSDebugMiddleware)
	}
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)

	registerRoutes(r, api, manager, st)
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/health", port)
	log.Printf("DSS endpoint: http://localhost:%s/dss/{polygon_id}", port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(r *mux.Router, api *handlers.API, manager *fra.Manager, st *store.Store) {
	a := r.PathPrefix("/api").Subrouter()

	// FRA claim routes
	a.HandleFunc("/fra-claims", api.GetFRAClaims).Methods("GET", "OPTIONS")
	a.HandleFunc("/claims", api.GetFRAClaims).Methods("GET", "OPTIONS")
	a.HandleFunc("/claim/{claim_id}", api.GetClaimDetails).Methods("GET", "OPTIONS")
	a.HandleFunc("/export", api.ExportClaims).Methods("GET", "OPTIONS")
	a.HandleFunc("/filter-options", api.GetFilterOptions).Methods("GET", "OPTIONS")

	// Analytics routes
	a.HandleFunc("/analytics", api.GetAnalytics).Methods("GET", "OPTIONS")
	a.HandleFunc("/state-summary", api.GetStateSummary).Methods("GET", "OPTIONS")
	a.HandleFunc("/tribal-analysis", api.GetTribalAnalysis).Methods("GET", "OPTIONS")
	a.HandleFunc("/timeline", api.GetTimeline).Methods("GET", "OPTIONS")
	a.HandleFunc("/performance", api.GetPerformanceMetrics).Methods("GET", "OPTIONS")

	// Geodata routes
	a.HandleFunc("/assets", api.GetAssets).Methods("GET", "OPTIONS")
	a.HandleFunc("/landuse_data/{state}", api.GetStateLanduse).Methods("GET", "OPTIONS")
	a.HandleFunc("/landuse-categories", api.GetLanduseCategories).Methods("GET", "OPTIONS")
	a.HandleFunc("/forest", api.GetForest).Methods("GET", "OPTIONS")
	a.HandleFunc("/boundaries/{state}", api.GetStateBoundaries).Methods("GET", "OPTIONS")
	a.HandleFunc("/districts/{state}", api.GetStateDistricts).Methods("GET", "OPTIONS")
	a.HandleFunc("/vanachitra_fra_data", api.GetVanachitraFRAData).Methods("GET", "OPTIONS")
	a.HandleFunc("/telangana_fra_constrained", api.GetTelanganaFRAConstrained).Methods("GET", "OPTIONS")

	// Health check
	a.HandleFunc("/health", healthHandler(manager, st)).Methods("GET")

	// DSS dashboard
	r.HandleFunc("/dss/{polygon_id}", api.GetDSSDetails).Methods("GET", "OPTIONS")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// React build with SPA fallback
	r.PathPrefix("/").Handler(spaHandler(config.ReactBuildDir())).Methods("GET")
}
