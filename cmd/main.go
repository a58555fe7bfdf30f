package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"stream-portal/proxy"
	"stream-portal/scheduler"
	"stream-portal/session"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Initialize logger with timestamp
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Stream Portal gateway...")

	upstreamBase := os.Getenv("UPSTREAM_API_URL")
	if upstreamBase == "" {
		log.Println("Warning: UPSTREAM_API_URL is not set; proxied requests will return a configuration error")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize session store
	sessionStore := session.NewSQLiteStore(dataPath)
	if err := sessionStore.Initialize(); err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer sessionStore.Close()

	cleanupJob := scheduler.NewSessionCleanupJob(sessionStore, getSessionMaxAge())
	runMode := os.Getenv("RUN_MODE")

	if runMode == "server" || runMode == "" {
		// Schedule the nightly stale-credential purge
		sched := scheduler.NewScheduler()
		if err := sched.AddNightlyJob(cleanupJob); err != nil {
			log.Fatalf("Failed to schedule session cleanup job: %v", err)
		}
		sched.Start()

		// Run the cleanup once at startup if specified
		if os.Getenv("RUN_AT_STARTUP") == "true" {
			log.Println("Running initial session cleanup at startup")
			if err := sched.RunJobNow(cleanupJob.Name()); err != nil {
				log.Printf("Error running initial cleanup: %v", err)
			}
		}

		mux := http.NewServeMux()
		mux.Handle("/api/proxy/", proxy.NewHandler(upstreamBase, "/api/proxy"))
		mux.Handle("/health", proxy.HealthHandler())

		server := &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		}

		go func() {
			log.Printf("Gateway listening on :%s", port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Server error: %v", err)
			}
		}()

		// Set up signal handling for graceful shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		log.Println("Gateway running. Press Ctrl+C to exit")

		// Wait for termination signal
		sig := <-quit
		log.Printf("Received signal %s, shutting down...", sig)

		// Gracefully stop the scheduler and drain in-flight requests
		sched.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}

	} else if runMode == "once" {
		log.Println("Running in single execution mode")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cleanupJob.Run(ctx); err != nil {
			log.Fatalf("Error running session cleanup: %v", err)
		}
	}

	log.Println("Gateway exiting")
}

// getSessionMaxAge returns the stale-session cutoff from environment
// variables, defaulting to 30 days.
func getSessionMaxAge() time.Duration {
	days := 30
	if value := os.Getenv("SESSION_MAX_AGE_DAYS"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("Error parsing SESSION_MAX_AGE_DAYS: %v", err)
		} else {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
