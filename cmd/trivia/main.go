// Package main implements the local interactive trivia console.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"trivia/internal/display"
	"trivia/internal/engine"
	"trivia/internal/storage"
	"trivia/internal/transport/console"
)

func main() {
	var (
		dbPath = flag.String("db", "quizzes.db", "Path to SQLite database file")
		dev    = flag.Bool("dev", false, "Development mode (WAL journal)")
		silent = flag.Bool("silent-unknown", false, "Silently ignore unknown commands")
		seed   = flag.Bool("seed", true, "Seed starter quizzes into an empty database")
	)
	flag.Parse()

	store, err := storage.NewStore(*dbPath, *dev)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	if *seed {
		if err := store.Seed(); err != nil {
			log.Fatalf("Failed to seed quizzes: %v", err)
		}
	}

	c, err := console.New("trivia")
	if err != nil {
		log.Fatalf("Failed to initialize console: %v", err)
	}
	defer c.Close()

	fmt.Println(display.Colorize("Trivia engine", display.Cyan))
	fmt.Println("Type 'help' for commands")

	sess := engine.New(c, store, engine.Options{SilentUnknown: *silent})

	for {
		line, err := c.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if !sess.Dispatch(line) {
			break
		}
	}

	fmt.Println(display.Colorize("Goodbye!", display.Cyan))
	os.Exit(0)
}
