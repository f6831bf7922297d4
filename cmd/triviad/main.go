// Package main implements the trivia daemon: a telnet-style multi-session
// server over one shared quiz database, with an optional REST API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trivia/cmd/triviad/cli"
	"trivia/internal/config"
	"trivia/internal/engine"
	httpapi "trivia/internal/server/http"
	"trivia/internal/storage"
	"trivia/internal/transport/telnet"
)

func main() {
	// Check for CLI database commands
	if len(os.Args) > 1 && os.Args[1] == "db" {
		if err := cli.Run(os.Args[2:]); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the environment
	var (
		listen     = flag.String("listen", cfg.Listen, "Telnet listen address")
		httpListen = flag.String("http", cfg.HTTPListen, "REST API listen address (disabled if empty)")
		dbPath     = flag.String("db", cfg.DBPath, "Path to SQLite database file")
		dev        = flag.Bool("dev", cfg.Dev, "Development mode (WAL journal)")
		silent     = flag.Bool("silent-unknown", cfg.SilentUnknown, "Silently ignore unknown commands")
		seed       = flag.Bool("seed", true, "Seed starter quizzes into an empty database")
		pidPath    = flag.String("pid", "", "Optional path to write PID file")
		pidLock    = flag.Bool("pid-lock", false, "Lock PID file to allow only one instance (requires -pid)")
	)
	flag.Parse()

	if *pidLock && *pidPath == "" {
		log.Fatal("Error: -pid-lock flag requires the -pid flag to be set")
	}
	if *pidPath != "" {
		cleanup, err := managePIDFile(*pidPath, *pidLock)
		if err != nil {
			log.Fatalf("Failed to manage PID file: %v", err)
		}
		defer cleanup()
		log.Printf("PID file created at: %s (lock: %v)", *pidPath, *pidLock)
	}

	log.Printf("Initializing storage at: %s", *dbPath)
	store, err := storage.NewStore(*dbPath, *dev)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close storage cleanly: %v", err)
		}
	}()

	if err := store.InitDB(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	if *seed {
		if err := store.Seed(); err != nil {
			log.Fatalf("Failed to seed quizzes: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional REST API alongside the session server
	if *httpListen != "" {
		app := httpapi.NewFiberApp(store)
		go func() {
			log.Printf("REST API listening on %s", *httpListen)
			if err := app.Listen(*httpListen); err != nil {
				log.Printf("REST API stopped: %v", err)
			}
		}()
		defer app.Shutdown()
	}

	// Shut down on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Printf("Shutting down")
		cancel()
	}()

	srv := telnet.NewServer(*listen, store, engine.Options{SilentUnknown: *silent})
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("Telnet server failed: %v", err)
	}
}
