// Package cli implements the `triviad db` admin mini-app for initializing,
// deleting, and querying the quiz database without starting the daemon.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"trivia/internal/storage"
)

// Run is the entry point for the CLI mini-app
func Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, or query")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "delete":
		return runDelete(args[1:])
	case "query":
		return runQuery(args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func openStore(fs *flag.FlagSet, args []string) (*storage.Store, error) {
	path := fs.String("path", "", "Database file path (required)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return nil, fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

func runInit(args []string) error {
	store, err := openStore(flag.NewFlagSet("init", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Println("Database initialized")
	return nil
}

func runDelete(args []string) error {
	store, err := openStore(flag.NewFlagSet("delete", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Println("Database deleted")
	return nil
}

func runQuery(args []string) error {
	store, err := openStore(flag.NewFlagSet("query", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.List()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No quizzes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQuestion\tAnswer")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Question, item.Answer)
	}
	return w.Flush()
}
