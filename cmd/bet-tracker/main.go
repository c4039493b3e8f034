package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/internal/catalog"
	"github.com/Bet-Zero/BetTracker-sub001/internal/classify"
	"github.com/Bet-Zero/BetTracker-sub001/internal/config"
	"github.com/Bet-Zero/BetTracker-sub001/internal/consumer"
	"github.com/Bet-Zero/BetTracker-sub001/internal/db"
	"github.com/Bet-Zero/BetTracker-sub001/internal/flatten"
	"github.com/Bet-Zero/BetTracker-sub001/internal/handlers"
	"github.com/Bet-Zero/BetTracker-sub001/internal/hub"
	"github.com/Bet-Zero/BetTracker-sub001/internal/processor"
	"github.com/Bet-Zero/BetTracker-sub001/internal/publisher"
	"github.com/Bet-Zero/BetTracker-sub001/internal/registry"
	"github.com/Bet-Zero/BetTracker-sub001/internal/resolve"
	"github.com/Bet-Zero/BetTracker-sub001/sports/baseball_mlb"
	"github.com/Bet-Zero/BetTracker-sub001/sports/basketball_nba"
	"github.com/Bet-Zero/BetTracker-sub001/sports/football_nfl"
	"github.com/Bet-Zero/BetTracker-sub001/sports/hockey_nhl"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	fmt.Println("=== Bet Tracker v0 ===")

	// Load configuration
	cfg := config.LoadConfig()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to Holocron DB
	store, err := db.NewPostgres(cfg.Database.HolocronDSN)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Holocron: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		pingCancel()
		fmt.Printf("❌ Failed to ping Holocron: %v\n", err)
		os.Exit(1)
	}
	pingCancel()
	fmt.Println("✓ Connected to Holocron DB")

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Redis")

	// Register sport vocabularies
	vocabRegistry := registry.NewVocabRegistry()
	registerVocabs(vocabRegistry)
	fmt.Printf("✓ Registered %d sport vocabularies\n", vocabRegistry.Count())

	// Load the entity catalog from storage
	cat := catalog.New()
	catStore := catalog.NewStore(store.DB())

	loadCtx, loadCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := catStore.LoadAll(loadCtx, cat); err != nil {
		loadCancel()
		fmt.Printf("❌ Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	loadCancel()
	fmt.Printf("✓ Catalog loaded (version %d)\n", cat.Version())

	// Build the import pipeline
	classifier := classify.NewClassifier(vocabRegistry)
	flattener := flatten.NewFlattener(classifier)
	resolver := resolve.NewResolver(resolve.AcceptedLists{
		Teams:     cfg.Accepted.Teams,
		Players:   cfg.Accepted.Players,
		StatTypes: cfg.Accepted.StatTypes,
	})

	// Create hub for live row updates
	h := hub.NewHub()
	go h.Run(ctx)

	// Create processor and stream consumer
	rejectedPublisher := publisher.NewStreamPublisher(redisClient, cfg.Stream.RejectedStream)
	proc := processor.NewProcessor(flattener, store, h, rejectedPublisher)

	streamConsumer := consumer.NewStreamConsumer(redisClient, proc, cfg.Stream)
	go streamConsumer.Start(ctx)

	// Initialize handlers
	handler := handlers.NewHandler(store, cat, catStore, resolver, proc, h, ctx)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Get("/metrics", handler.GetServiceMetrics)
	r.Get("/ws", handler.HandleWebSocket)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Bets
		r.Post("/bets/import", handler.ImportBet)
		r.Post("/bets/validate", handler.ValidateBet)

		// Rows
		r.Get("/rows", handler.GetRows)
		r.Get("/rows/summary", handler.GetSummary)
		r.Get("/rows/{betID}", handler.GetRowsByBet)

		// Catalog
		r.Get("/catalog/version", handler.GetCatalogVersion)
		r.Post("/catalog/resolve", handler.ResolveEntity)
		r.Route("/catalog/{kind}", func(r chi.Router) {
			r.Get("/", handler.ListCatalog)
			r.Post("/", handler.AddCatalogEntity)
			r.Put("/{canonical}", handler.UpdateCatalogEntity)
			r.Delete("/{canonical}", handler.DeleteCatalogEntity)
			r.Post("/{canonical}/aliases", handler.AddCatalogAliases)
			r.Put("/{canonical}/disabled", handler.SetCatalogDisabled)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Bet Tracker listening on %s\n", cfg.Server.Addr)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET  /health")
		fmt.Println("    GET  /metrics")
		fmt.Println("    GET  /ws")
		fmt.Println("    POST /api/v1/bets/import")
		fmt.Println("    POST /api/v1/bets/validate")
		fmt.Println("    GET  /api/v1/rows")
		fmt.Println("    GET  /api/v1/rows/summary")
		fmt.Println("    GET  /api/v1/rows/{betID}")
		fmt.Println("    GET  /api/v1/catalog/version")
		fmt.Println("    POST /api/v1/catalog/resolve")
		fmt.Println("    GET  /api/v1/catalog/{kind}")
		fmt.Println("    POST /api/v1/catalog/{kind}")
		fmt.Println("    PUT  /api/v1/catalog/{kind}/{canonical}")
		fmt.Println("    DEL  /api/v1/catalog/{kind}/{canonical}")
		fmt.Println("    POST /api/v1/catalog/{kind}/{canonical}/aliases")
		fmt.Println("    PUT  /api/v1/catalog/{kind}/{canonical}/disabled")

		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)

		// Cancel context to stop consumer, hub, and client pumps
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠️  Server shutdown error: %v\n", err)
			srv.Close()
		}

		fmt.Println("✓ Shutdown complete")
	}
}

// registerVocabs registers every supported sport vocabulary
func registerVocabs(r *registry.VocabRegistry) {
	if err := r.Register(basketball_nba.NewVocab()); err != nil {
		fmt.Printf("⚠️  Failed to register NBA vocabulary: %v\n", err)
	}
	if err := r.Register(football_nfl.NewVocab()); err != nil {
		fmt.Printf("⚠️  Failed to register NFL vocabulary: %v\n", err)
	}
	if err := r.Register(baseball_mlb.NewVocab()); err != nil {
		fmt.Printf("⚠️  Failed to register MLB vocabulary: %v\n", err)
	}
	if err := r.Register(hockey_nhl.NewVocab()); err != nil {
		fmt.Printf("⚠️  Failed to register NHL vocabulary: %v\n", err)
	}
}
